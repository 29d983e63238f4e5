package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	Log      *zap.SugaredLogger
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository, log *zap.SugaredLogger) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo, Log: log}
}

func (s *MenuService) List(restaurantID string, availableOnly bool) ([]entity.MenuItem, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	return s.Repo.ListForRestaurant(restaurantID, availableOnly)
}

type MenuItemIn struct {
	FoodName    string  `json:"foodName" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   *bool   `json:"available"`
}

func (s *MenuService) Create(restaurantID string, in *MenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	if strings.TrimSpace(in.FoodName) == "" {
		return nil, fmt.Errorf("%w: foodName is required", apperr.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}

	m := &entity.MenuItem{
		MenuItemID:   restaurantID + "-ITEM-" + uuid.NewString()[:8],
		RestaurantID: restaurantID,
		FoodName:     strings.TrimSpace(in.FoodName),
		Description:  in.Description,
		Price:        in.Price,
		Available:    true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Update(menuItemID string, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.get(menuItemID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.FoodName) != "" {
		m.FoodName = strings.TrimSpace(in.FoodName)
	}
	if in.Description != "" {
		m.Description = in.Description
	}
	if in.Price >= 0 {
		m.Price = in.Price
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) SetAvailability(menuItemID string, available bool) (*entity.MenuItem, error) {
	m, err := s.get(menuItemID)
	if err != nil {
		return nil, err
	}
	m.Available = available
	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(menuItemID string) error {
	affected, err := s.Repo.Delete(menuItemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: menu item %s", apperr.ErrNotFound, menuItemID)
	}
	return nil
}

func (s *MenuService) get(menuItemID string) (*entity.MenuItem, error) {
	m, err := s.Repo.Get(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: menu item %s", apperr.ErrNotFound, menuItemID)
	}
	return m, err
}
