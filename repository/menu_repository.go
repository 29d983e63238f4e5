package repository

import (
	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Get(id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("menu_item_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListForRestaurant(restaurantID string, availableOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var out []entity.MenuItem
	err := q.Order("menu_item_id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CountForRestaurant(restaurantID string, availableOnly bool) (int64, error) {
	q := r.DB.Model(&entity.MenuItem{}).Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id string) (int64, error) {
	res := r.DB.Where("menu_item_id = ?", id).Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}
