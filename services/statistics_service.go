package services

import (
	"errors"
	"fmt"

	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"gorm.io/gorm"
)

type StatisticsService struct {
	RestRepo    *repository.RestaurantRepository
	MenuRepo    *repository.MenuRepository
	Withdrawals *WithdrawalService
}

func NewStatisticsService(restRepo *repository.RestaurantRepository, menuRepo *repository.MenuRepository, withdrawals *WithdrawalService) *StatisticsService {
	return &StatisticsService{RestRepo: restRepo, MenuRepo: menuRepo, Withdrawals: withdrawals}
}

// RestaurantStatistics is the owner dashboard summary block.
func (s *StatisticsService) RestaurantStatistics(restaurantID string) (map[string]any, error) {
	r, err := s.RestRepo.Get(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: restaurant %s", apperr.ErrNotFound, restaurantID)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.MenuRepo.CountForRestaurant(restaurantID, false)
	if err != nil {
		return nil, err
	}
	available, err := s.MenuRepo.CountForRestaurant(restaurantID, true)
	if err != nil {
		return nil, err
	}
	withdrawalStatus, err := s.Withdrawals.Status(restaurantID)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"restaurantName":     r.Name,
		"totalMenuItems":     total,
		"availableMenuItems": available,
		"withdrawalStatus":   withdrawalStatus,
		"forceClosed":        r.ForceClosed,
	}, nil
}
