package repository

import (
	"errors"
	"time"

	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

// ApprovalRepository carries the registration collaborator calls the legacy
// system ran as opaque stored procedures, rewritten as explicit
// request/response transactions.
type ApprovalRepository struct {
	DB *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{DB: db}
}

var ErrApprovalSettled = errors.New("registration already decided")

// RequestRegistration puts the restaurant's registration into the pending
// state. A request that is already pending is returned as-is; a decided
// registration is terminal and yields ErrApprovalSettled.
func (r *ApprovalRepository) RequestRegistration(restaurantID string, now time.Time) (*entity.Approval, error) {
	var out *entity.Approval
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var a entity.Approval
		err := tx.Where("restaurant_id = ?", restaurantID).First(&a).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			a = entity.Approval{
				RestaurantID: restaurantID,
				Status:       entity.ApprovalPending,
				RequestedAt:  now,
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case a.Status != entity.ApprovalPending:
			return ErrApprovalSettled
		}
		out = &a
		return nil
	})
	return out, err
}

// DecideRegistration settles a registration. Approval may arrive before any
// explicit request (the admin registers and approves in one step), so an
// absent row is created directly in the approved state; rejection requires a
// pending row. A guarded update keeps decided rows terminal. An approved
// restaurant also has its force-closed flag lifted.
func (r *ApprovalRepository) DecideRegistration(restaurantID string, status entity.ApprovalStatus, adminID string, reason *string, now time.Time) (*entity.Approval, error) {
	var out *entity.Approval
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var a entity.Approval
		err := tx.Where("restaurant_id = ?", restaurantID).First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if status != entity.ApprovalApproved {
				return ErrApprovalSettled
			}
			a = entity.Approval{
				RestaurantID: restaurantID,
				Status:       entity.ApprovalApproved,
				AdminID:      &adminID,
				RequestedAt:  now,
				DecidedAt:    &now,
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
			out = &a
			return tx.Model(&entity.Restaurant{}).
				Where("restaurant_id = ?", restaurantID).
				Update("force_closed", false).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]any{
			"status":     status,
			"admin_id":   adminID,
			"decided_at": now,
		}
		if status == entity.ApprovalRejected && reason != nil {
			updates["reason"] = *reason
		}
		res := tx.Model(&entity.Approval{}).
			Where("restaurant_id = ? AND status = ?", restaurantID, entity.ApprovalPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApprovalSettled
		}

		if status == entity.ApprovalApproved {
			if err := tx.Model(&entity.Restaurant{}).
				Where("restaurant_id = ?", restaurantID).
				Update("force_closed", false).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("restaurant_id = ?", restaurantID).First(&a).Error; err != nil {
			return err
		}
		out = &a
		return nil
	})
	return out, err
}

func (r *ApprovalRepository) FindPending() ([]entity.Approval, error) {
	var out []entity.Approval
	err := r.DB.Where("status = ?", entity.ApprovalPending).
		Order("requested_at ASC").Find(&out).Error
	return out, err
}
