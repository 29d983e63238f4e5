package entity

// RestaurantHours rows are owned entirely by the hours reconciler:
// created, updated and deleted there, never anywhere else.
type RestaurantHours struct {
	HoursID uint `gorm:"primaryKey" json:"hoursId"`

	RestaurantID string `gorm:"size:36;not null;uniqueIndex:idx_restaurant_weekday" json:"restaurantId"`
	Weekday      int    `gorm:"not null;uniqueIndex:idx_restaurant_weekday" json:"weekday"` // 0=Sunday .. 6=Saturday

	OpensAt  *string `gorm:"size:8" json:"opensAt,omitempty"`  // "HH:MM", nil when closed
	ClosesAt *string `gorm:"size:8" json:"closesAt,omitempty"` // "HH:MM", nil when closed
	IsClosed bool    `gorm:"default:false" json:"isClosed"`
}
