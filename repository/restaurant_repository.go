package repository

import (
	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Get(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("restaurant_id = ?", id).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("restaurant_id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("restaurant_id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id string) (int64, error) {
	res := r.DB.Where("restaurant_id = ?", id).Delete(&entity.Restaurant{})
	return res.RowsAffected, res.Error
}

// SetForceClosed flips the flag without touching the rest of the row.
func (r *RestaurantRepository) SetForceClosed(tx *gorm.DB, id string, closed bool) error {
	return tx.Model(&entity.Restaurant{}).
		Where("restaurant_id = ?", id).
		Update("force_closed", closed).Error
}
