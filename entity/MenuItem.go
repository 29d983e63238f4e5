package entity

type MenuItem struct {
	MenuItemID  string  `gorm:"primaryKey;size:64" json:"menuItemId"`
	FoodName    string  `gorm:"not null" json:"foodName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`

	RestaurantID string     `gorm:"size:36;index;not null" json:"restaurantId"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`
}
