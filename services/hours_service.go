package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HoursService reconciles a restaurant's stored weekday rows against the
// desired weekly schedule: update in place, insert what is missing, delete
// what was dropped. Reapplying the same week is a no-op.
type HoursService struct {
	DB       *gorm.DB
	Repo     *repository.HoursRepository
	RestRepo *repository.RestaurantRepository
	Log      *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per-restaurant single writer
}

func NewHoursService(db *gorm.DB, repo *repository.HoursRepository, restRepo *repository.RestaurantRepository, log *zap.SugaredLogger) *HoursService {
	return &HoursService{DB: db, Repo: repo, RestRepo: restRepo, Log: log, locks: make(map[string]*sync.Mutex)}
}

type WeekdayHoursIn struct {
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opensAt"`
	ClosesAt string `json:"closesAt"`
	IsClosed bool   `json:"isClosed"`
}

type ReconcileResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

func (s *HoursService) lockFor(restaurantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[restaurantID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[restaurantID] = l
	}
	return l
}

func (s *HoursService) Reconcile(restaurantID string, week []WeekdayHoursIn) (*ReconcileResult, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}

	desired := make(map[int]entity.RestaurantHours, len(week))
	for _, in := range week {
		if in.Weekday < 0 || in.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range", apperr.ErrValidation, in.Weekday)
		}
		if _, dup := desired[in.Weekday]; dup {
			return nil, fmt.Errorf("%w: duplicate weekday %d", apperr.ErrValidation, in.Weekday)
		}
		row, err := normalizeHours(restaurantID, in)
		if err != nil {
			return nil, err
		}
		desired[in.Weekday] = row
	}

	lock := s.lockFor(restaurantID)
	lock.Lock()
	defer lock.Unlock()

	var result ReconcileResult
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		current, err := s.Repo.ListForRestaurant(restaurantID)
		if err != nil {
			return err
		}
		byWeekday := make(map[int]entity.RestaurantHours, len(current))
		for _, h := range current {
			byWeekday[h.Weekday] = h
		}

		for weekday, want := range desired {
			existing, ok := byWeekday[weekday]
			if !ok {
				h := want
				if err := s.Repo.Create(tx, &h); err != nil {
					return err
				}
				result.Created++
				continue
			}
			if sameHours(existing, want) {
				continue
			}
			existing.OpensAt = want.OpensAt
			existing.ClosesAt = want.ClosesAt
			existing.IsClosed = want.IsClosed
			if err := s.Repo.Save(tx, &existing); err != nil {
				return err
			}
			result.Updated++
		}

		for weekday, existing := range byWeekday {
			if _, keep := desired[weekday]; keep {
				continue
			}
			if err := s.Repo.Delete(tx, existing.HoursID); err != nil {
				return err
			}
			result.Deleted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Infow("hours reconciled", "restaurantId", restaurantID,
		"created", result.Created, "updated", result.Updated, "deleted", result.Deleted)
	return &result, nil
}

func (s *HoursService) List(restaurantID string) ([]entity.RestaurantHours, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	return s.Repo.ListForRestaurant(restaurantID)
}

func normalizeHours(restaurantID string, in WeekdayHoursIn) (entity.RestaurantHours, error) {
	h := entity.RestaurantHours{RestaurantID: restaurantID, Weekday: in.Weekday}

	closed := in.IsClosed ||
		strings.EqualFold(strings.TrimSpace(in.OpensAt), "CLOSED") ||
		strings.EqualFold(strings.TrimSpace(in.ClosesAt), "CLOSED")
	if closed {
		h.IsClosed = true
		return h, nil
	}

	opens, err := parseClock(in.OpensAt)
	if err != nil {
		return h, err
	}
	closes, err := parseClock(in.ClosesAt)
	if err != nil {
		return h, err
	}
	h.OpensAt = &opens
	h.ClosesAt = &closes
	return h, nil
}

// parseClock accepts "H:mm" or "H:mm:ss" and returns a normalized "HH:MM".
// A literal "24:00" stands in for end-of-day and becomes "23:59", since an
// exclusive midnight is not representable as a time of day.
func parseClock(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "24:00" || s == "24:00:00" {
		return "23:59", nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: bad time %q", apperr.ErrValidation, raw)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return "", fmt.Errorf("%w: bad time %q", apperr.ErrValidation, raw)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return "", fmt.Errorf("%w: bad time %q", apperr.ErrValidation, raw)
	}
	if len(parts) == 3 {
		ss, err := strconv.Atoi(parts[2])
		if err != nil || ss < 0 || ss > 59 {
			return "", fmt.Errorf("%w: bad time %q", apperr.ErrValidation, raw)
		}
	}
	return fmt.Sprintf("%02d:%02d", hh, mm), nil
}

func sameHours(a, b entity.RestaurantHours) bool {
	if a.IsClosed != b.IsClosed {
		return false
	}
	return sameClock(a.OpensAt, b.OpensAt) && sameClock(a.ClosesAt, b.ClosesAt)
}

func sameClock(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
