package repository

import (
	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

type HoursRepository struct {
	DB *gorm.DB
}

func NewHoursRepository(db *gorm.DB) *HoursRepository {
	return &HoursRepository{DB: db}
}

func (r *HoursRepository) ListForRestaurant(restaurantID string) ([]entity.RestaurantHours, error) {
	var out []entity.RestaurantHours
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("weekday").Find(&out).Error
	return out, err
}

func (r *HoursRepository) Create(tx *gorm.DB, h *entity.RestaurantHours) error {
	return tx.Create(h).Error
}

func (r *HoursRepository) Save(tx *gorm.DB, h *entity.RestaurantHours) error {
	return tx.Save(h).Error
}

func (r *HoursRepository) Delete(tx *gorm.DB, hoursID uint) error {
	return tx.Delete(&entity.RestaurantHours{}, hoursID).Error
}
