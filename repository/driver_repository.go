package repository

import (
	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

type DriverRepository struct {
	DB *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{DB: db}
}

func (r *DriverRepository) Get(id string) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.DB.Where("driver_id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDriver is the driver-create collaborator call: it persists the row
// and returns it reflecting stored state.
func (r *DriverRepository) CreateDriver(d *entity.Driver) (*entity.Driver, error) {
	if err := r.DB.Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// InactivateGuard deactivates a driver only while unassigned. Zero rows
// affected means the driver is missing, already inactive, or still holding
// an order; the caller tells those apart.
func (r *DriverRepository) InactivateGuard(id string) (int64, error) {
	res := r.DB.Model(&entity.Driver{}).
		Where("driver_id = ? AND active = ? AND assigned_to_order = ?", id, true, false).
		Update("active", false)
	return res.RowsAffected, res.Error
}

// ClaimForOrder atomically takes an active, unassigned driver. Zero rows
// affected means somebody else claimed the driver first (or it is inactive).
func (r *DriverRepository) ClaimForOrder(tx *gorm.DB, id string) (int64, error) {
	res := tx.Model(&entity.Driver{}).
		Where("driver_id = ? AND active = ? AND assigned_to_order = ?", id, true, false).
		Update("assigned_to_order", true)
	return res.RowsAffected, res.Error
}

// Release frees the driver once its order leaves the open set.
func (r *DriverRepository) Release(tx *gorm.DB, id string) error {
	return tx.Model(&entity.Driver{}).
		Where("driver_id = ?", id).
		Update("assigned_to_order", false).Error
}
