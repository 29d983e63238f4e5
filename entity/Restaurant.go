package entity

import "time"

type Restaurant struct {
	RestaurantID string `gorm:"primaryKey;size:36" json:"restaurantId"`
	OwnerID      string `gorm:"size:36;index" json:"ownerId"`
	Name         string `gorm:"not null" json:"name"`
	CuisineType  string `json:"cuisineType"`
	Email        string `gorm:"not null" json:"email"`
	Phone        string `gorm:"not null" json:"phone"`
	ContactName  string `json:"contactName"`

	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`

	ForceClosed       bool    `gorm:"default:false" json:"forceClosed"`
	ProfilePictureRef *string `json:"profilePictureRef,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// preload only when needed
	OperatingHours []RestaurantHours `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`
	MenuItems      []MenuItem        `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`
	Orders         []Order           `gorm:"foreignKey:RestaurantID;references:RestaurantID" json:"-"`
}
