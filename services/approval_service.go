package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"go.uber.org/zap"
)

// ApprovalService owns the registration workflow; the actual transition runs
// in the persistence collaborator (ApprovalRepository), this service holds the
// contract: resolve the restaurant, validate the input, map the outcome.
type ApprovalService struct {
	Repo     *repository.ApprovalRepository
	RestRepo *repository.RestaurantRepository
	Log      *zap.SugaredLogger
}

func NewApprovalService(repo *repository.ApprovalRepository, restRepo *repository.RestaurantRepository, log *zap.SugaredLogger) *ApprovalService {
	return &ApprovalService{Repo: repo, RestRepo: restRepo, Log: log}
}

func (s *ApprovalService) Request(restaurantID string) (*entity.Approval, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}

	a, err := s.Repo.RequestRegistration(restaurantID, time.Now())
	if errors.Is(err, repository.ErrApprovalSettled) {
		return nil, fmt.Errorf("%w: registration for %s is already decided", apperr.ErrInvalidState, restaurantID)
	}
	if err != nil {
		return nil, err
	}
	s.Log.Infow("registration requested", "restaurantId", restaurantID)
	return a, nil
}

// Decide records the deciding admin and, on rejection, the reason. The
// decision value is validated here instead of being forwarded blindly to the
// collaborator.
func (s *ApprovalService) Decide(restaurantID, decision, adminID string, reason *string) (*entity.Approval, error) {
	status := entity.ApprovalStatus(decision)
	if status != entity.ApprovalApproved && status != entity.ApprovalRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected, got %q", apperr.ErrValidation, decision)
	}
	if status == entity.ApprovalApproved {
		reason = nil // reason only applies to rejections
	}

	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}

	a, err := s.Repo.DecideRegistration(restaurantID, status, adminID, reason, time.Now())
	if errors.Is(err, repository.ErrApprovalSettled) {
		return nil, fmt.Errorf("%w: registration for %s is not pending", apperr.ErrInvalidState, restaurantID)
	}
	if err != nil {
		return nil, err
	}
	s.Log.Infow("registration decided", "restaurantId", restaurantID, "decision", status, "adminId", adminID)
	return a, nil
}

func (s *ApprovalService) Pending() ([]entity.Approval, error) {
	return s.Repo.FindPending()
}
