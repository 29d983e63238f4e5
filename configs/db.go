package configs

import (
	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Restaurant{}, &entity.RestaurantHours{}, &entity.Approval{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Driver{},
		&entity.Staff{},
		&entity.Withdraw{},
	)
}
