package entity

import "time"

type Driver struct {
	DriverID  string `gorm:"primaryKey;size:36" json:"driverId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Active          bool `gorm:"default:true" json:"active"`
	AssignedToOrder bool `gorm:"default:false" json:"assignedToOrder"`

	CreatedAt time.Time `json:"createdAt"`
}
