package configs

import (
	"time"

	"github.com/ottchakarov/FrontDash/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin makes sure one admin account exists so the dashboard is reachable
// on a fresh database.
func SeedAdmin() error {
	var cnt int64
	if err := db.Model(&entity.Staff{}).Where("role_id = ?", 1).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin1234")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Staff{
		StaffID:      "staff-admin",
		RoleID:       1,
		FirstName:    "System",
		LastName:     "Admin",
		Username:     "admin",
		PasswordHash: string(hashed),
		Active:       true,
		CreatedAt:    time.Now(),
	}
	return db.Create(&admin).Error
}

// SeedSampleData loads a demo restaurant with a small menu and one driver.
// Idempotent: skipped when the restaurant already exists.
func SeedSampleData() error {
	var cnt int64
	if err := db.Model(&entity.Restaurant{}).Where("restaurant_id = ?", "REST-ACM").Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	rest := entity.Restaurant{
		RestaurantID: "REST-ACM",
		Name:         "Acme Wings",
		CuisineType:  "American",
		Email:        "owner@acmewings.example",
		Phone:        "555-0101",
		ContactName:  "Pat Acme",
		Street:       "12 Main St",
		City:         "Springfield",
		State:        "IL",
		Zip:          "62701",
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{MenuItemID: "REST-ACM-ITEM-1", RestaurantID: rest.RestaurantID, FoodName: "Wings", Price: 10.99, Available: true},
		{MenuItemID: "REST-ACM-ITEM-2", RestaurantID: rest.RestaurantID, FoodName: "Fries", Price: 3.49, Available: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	driver := entity.Driver{
		DriverID:  "drv-sample01",
		FirstName: "Alex",
		LastName:  "Shopper",
		Active:    true,
		CreatedAt: time.Now(),
	}
	return db.Create(&driver).Error
}
