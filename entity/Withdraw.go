package entity

import "time"

type WithdrawStatus string

const (
	WithdrawPending  WithdrawStatus = "pending"
	WithdrawApproved WithdrawStatus = "approved"
	WithdrawDenied   WithdrawStatus = "denied"
)

// Withdraw is keyed 1:1 by restaurant: the primary key doubles as the
// uniqueness guard against a second concurrent request.
type Withdraw struct {
	RestaurantID string     `gorm:"primaryKey;size:36" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`

	Description string         `json:"description"`
	Status      WithdrawStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	DenyReason  *string        `json:"denyReason,omitempty"`

	RequestedAt time.Time  `json:"requestedAt"`
	DecisionAt  *time.Time `json:"decisionAt,omitempty"`
}
