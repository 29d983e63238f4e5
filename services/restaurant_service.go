package services

import (
	"errors"
	"fmt"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo      *repository.RestaurantRepository
	HoursRepo *repository.HoursRepository
	Log       *zap.SugaredLogger
}

func NewRestaurantService(repo *repository.RestaurantRepository, hoursRepo *repository.HoursRepository, log *zap.SugaredLogger) *RestaurantService {
	return &RestaurantService{Repo: repo, HoursRepo: hoursRepo, Log: log}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.List()
}

func (s *RestaurantService) Get(restaurantID string) (*entity.Restaurant, error) {
	r, err := s.Repo.Get(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	return r, err
}

type RestaurantDetail struct {
	Restaurant     entity.Restaurant        `json:"restaurant"`
	OperatingHours []entity.RestaurantHours `json:"operatingHours"`
}

func (s *RestaurantService) Detail(restaurantID string) (*RestaurantDetail, error) {
	r, err := s.Get(restaurantID)
	if err != nil {
		return nil, err
	}
	hours, err := s.HoursRepo.ListForRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: *r, OperatingHours: hours}, nil
}

// UpdateContactInfo applies only the supplied fields, legacy-style partial
// update for the account settings page.
func (s *RestaurantService) UpdateContactInfo(restaurantID string, phone, email, contactName *string) (*entity.Restaurant, error) {
	r, err := s.Get(restaurantID)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		r.Phone = *phone
	}
	if email != nil {
		r.Email = *email
	}
	if contactName != nil {
		r.ContactName = *contactName
	}
	if err := s.Repo.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) UpdateAddress(restaurantID string, street, city, state, zip *string) (*entity.Restaurant, error) {
	r, err := s.Get(restaurantID)
	if err != nil {
		return nil, err
	}
	if street != nil {
		r.Street = *street
	}
	if city != nil {
		r.City = *city
	}
	if state != nil {
		r.State = *state
	}
	if zip != nil {
		r.Zip = *zip
	}
	if err := s.Repo.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) UpdateProfilePicture(restaurantID string, pictureRef *string) (*entity.Restaurant, error) {
	r, err := s.Get(restaurantID)
	if err != nil {
		return nil, err
	}
	r.ProfilePictureRef = pictureRef
	if err := s.Repo.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Delete(restaurantID string) error {
	affected, err := s.Repo.Delete(restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	s.Log.Infow("restaurant deleted", "restaurantId", restaurantID)
	return nil
}
