package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WithdrawalService struct {
	DB       *gorm.DB
	Repo     *repository.WithdrawRepository
	RestRepo *repository.RestaurantRepository
	Log      *zap.SugaredLogger
}

func NewWithdrawalService(db *gorm.DB, repo *repository.WithdrawRepository, restRepo *repository.RestaurantRepository, log *zap.SugaredLogger) *WithdrawalService {
	return &WithdrawalService{DB: db, Repo: repo, RestRepo: restRepo, Log: log}
}

// Request opens a withdrawal for the restaurant. The check-and-insert runs in
// one transaction; the restaurant-id primary key is the authoritative guard,
// the pre-check only shapes the error.
func (s *WithdrawalService) Request(restaurantID, description string) (*entity.Withdraw, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}

	w := entity.Withdraw{
		RestaurantID: restaurantID,
		Description:  description,
		Status:       entity.WithdrawPending,
		RequestedAt:  time.Now(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.Withdraw
		err := tx.Where("restaurant_id = ?", restaurantID).First(&existing).Error
		if err == nil {
			if existing.Status == entity.WithdrawPending {
				return fmt.Errorf("%w: a withdrawal request is already pending for restaurant %s", apperr.ErrConflict, restaurantID)
			}
			return fmt.Errorf("%w: restaurant %s already has a decided withdrawal record", apperr.ErrConflict, restaurantID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.Repo.Create(tx, &w); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: a withdrawal request is already pending for restaurant %s", apperr.ErrConflict, restaurantID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Infow("withdrawal requested", "restaurantId", restaurantID)
	return &w, nil
}

// Cancel removes a pending request entirely and returns the pre-deletion
// snapshot, taking the restaurant back to "no record".
func (s *WithdrawalService) Cancel(restaurantID string) (*entity.Withdraw, error) {
	w, err := s.find(restaurantID)
	if err != nil {
		return nil, err
	}
	if w.Status != entity.WithdrawPending {
		return nil, fmt.Errorf("%w: cannot cancel a request that is not pending", apperr.ErrInvalidState)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.Delete(tx, restaurantID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: withdrawal for restaurant %s", apperr.ErrNotFound, restaurantID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Infow("withdrawal cancelled", "restaurantId", restaurantID)
	return w, nil
}

func (s *WithdrawalService) Approve(restaurantID string) (*entity.Withdraw, error) {
	return s.decide(restaurantID, entity.WithdrawApproved, nil)
}

func (s *WithdrawalService) Deny(restaurantID, reason string) (*entity.Withdraw, error) {
	return s.decide(restaurantID, entity.WithdrawDenied, &reason)
}

func (s *WithdrawalService) decide(restaurantID string, to entity.WithdrawStatus, denyReason *string) (*entity.Withdraw, error) {
	if _, err := s.find(restaurantID); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DecideGuard(tx, restaurantID, to, denyReason, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: can only %s pending requests", apperr.ErrInvalidState, verb(to))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Infow("withdrawal decided", "restaurantId", restaurantID, "status", to)
	return s.find(restaurantID)
}

func verb(s entity.WithdrawStatus) string {
	if s == entity.WithdrawApproved {
		return "approve"
	}
	return "deny"
}

// Status reports pending/approved/denied, or "none" when no record exists.
func (s *WithdrawalService) Status(restaurantID string) (string, error) {
	w, err := s.Repo.Find(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "none", nil
	}
	if err != nil {
		return "", err
	}
	return string(w.Status), nil
}

func (s *WithdrawalService) Find(restaurantID string) (*entity.Withdraw, error) {
	return s.find(restaurantID)
}

func (s *WithdrawalService) ListByStatus(status entity.WithdrawStatus) ([]entity.Withdraw, error) {
	return s.Repo.ListByStatus(status)
}

func (s *WithdrawalService) PendingCount() (int64, error) {
	return s.Repo.CountByStatus(entity.WithdrawPending)
}

func (s *WithdrawalService) find(restaurantID string) (*entity.Withdraw, error) {
	w, err := s.Repo.Find(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: withdrawal for restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	return w, err
}
