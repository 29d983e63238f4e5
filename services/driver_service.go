package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DriverService struct {
	Repo *repository.DriverRepository
	Log  *zap.SugaredLogger
}

func NewDriverService(repo *repository.DriverRepository, log *zap.SugaredLogger) *DriverService {
	return &DriverService{Repo: repo, Log: log}
}

// Create is the driver-create collaborator operation: a fresh active,
// unassigned driver with a generated id.
func (s *DriverService) Create(firstName, lastName string) (*entity.Driver, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, fmt.Errorf("%w: driver name is required", apperr.ErrValidation)
	}

	d := &entity.Driver{
		DriverID:  "drv-" + uuid.NewString()[:8],
		FirstName: firstName,
		LastName:  lastName,
		Active:    true,
		CreatedAt: time.Now(),
	}
	d, err := s.Repo.CreateDriver(d)
	if err != nil {
		return nil, err
	}
	s.Log.Infow("driver created", "driverId", d.DriverID)
	return d, nil
}

// Inactivate takes the driver out of rotation. A driver still holding an
// open order cannot be inactivated.
func (s *DriverService) Inactivate(driverID string) (*entity.Driver, error) {
	d, err := s.Repo.Get(driverID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: driver %s", apperr.ErrNotFound, driverID)
	}
	if err != nil {
		return nil, err
	}
	if d.AssignedToOrder {
		return nil, fmt.Errorf("%w: driver %s still has an open order", apperr.ErrInvalidState, driverID)
	}
	if !d.Active {
		return nil, fmt.Errorf("%w: driver %s is already inactive", apperr.ErrInvalidState, driverID)
	}

	affected, err := s.Repo.InactivateGuard(driverID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// lost a race with an assignment or another inactivation
		return nil, fmt.Errorf("%w: driver %s changed state concurrently", apperr.ErrInvalidState, driverID)
	}

	s.Log.Infow("driver inactivated", "driverId", driverID)
	return s.Repo.Get(driverID)
}

func (s *DriverService) Get(driverID string) (*entity.Driver, error) {
	d, err := s.Repo.Get(driverID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: driver %s", apperr.ErrNotFound, driverID)
	}
	return d, err
}
