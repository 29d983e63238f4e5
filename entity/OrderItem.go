package entity

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FoodName  string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`

	OrderID string `gorm:"size:36;index;not null" json:"orderId"`
	Order   Order  `gorm:"foreignKey:OrderID;references:OrderID" json:"-"`
}
