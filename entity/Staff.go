package entity

import "time"

type Staff struct {
	StaffID   string `gorm:"primaryKey;size:36" json:"staffId"`
	RoleID    int    `gorm:"not null" json:"roleId"` // 1 = admin
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `json:"-"`

	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
