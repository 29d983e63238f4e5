package entity

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Approval tracks a restaurant's registration state, 1:1 by restaurant.
type Approval struct {
	RestaurantID string         `gorm:"primaryKey;size:36" json:"restaurantId"`
	Status       ApprovalStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`

	AdminID *string `gorm:"size:36" json:"adminId,omitempty"`
	Reason  *string `json:"reason,omitempty"` // set only on rejection

	RequestedAt time.Time  `json:"requestedAt"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
}
