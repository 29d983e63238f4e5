package repository

import (
	"time"

	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

type WithdrawRepository struct {
	DB *gorm.DB
}

func NewWithdrawRepository(db *gorm.DB) *WithdrawRepository {
	return &WithdrawRepository{DB: db}
}

func (r *WithdrawRepository) Find(restaurantID string) (*entity.Withdraw, error) {
	var w entity.Withdraw
	if err := r.DB.Where("restaurant_id = ?", restaurantID).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WithdrawRepository) Create(tx *gorm.DB, w *entity.Withdraw) error {
	return tx.Create(w).Error
}

func (r *WithdrawRepository) Delete(tx *gorm.DB, restaurantID string) (int64, error) {
	res := tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.Withdraw{})
	return res.RowsAffected, res.Error
}

// DecideGuard settles a pending request. Zero rows affected means the record
// was not pending anymore (or never existed).
func (r *WithdrawRepository) DecideGuard(tx *gorm.DB, restaurantID string, to entity.WithdrawStatus, denyReason *string, at time.Time) (int64, error) {
	updates := map[string]any{"status": to, "decision_at": at}
	if denyReason != nil {
		updates["deny_reason"] = *denyReason
	}
	res := tx.Model(&entity.Withdraw{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, entity.WithdrawPending).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *WithdrawRepository) ListByStatus(status entity.WithdrawStatus) ([]entity.Withdraw, error) {
	var out []entity.Withdraw
	err := r.DB.Where("status = ?", status).Order("requested_at ASC").Find(&out).Error
	return out, err
}

func (r *WithdrawRepository) CountByStatus(status entity.WithdrawStatus) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Withdraw{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}
