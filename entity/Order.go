package entity

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderAssigned  OrderStatus = "ASSIGNED"
	OrderDelivered OrderStatus = "DELIVERED"
)

type Order struct {
	OrderID         string      `gorm:"primaryKey;size:36" json:"orderId"`
	CustomerName    string      `json:"customerName"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Status          OrderStatus `gorm:"type:varchar(16);index;not null" json:"status"`
	TotalAmount     float64     `json:"total"`

	RestaurantID string     `gorm:"size:36;index;not null" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`

	DriverID *string `gorm:"size:36;index" json:"driverId,omitempty"`
	Driver   *Driver `gorm:"foreignKey:DriverID;references:DriverID" json:"-"`

	PlacedAt    time.Time  `json:"placedAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	// preload only for detail/summary
	Items []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"-"`
}
