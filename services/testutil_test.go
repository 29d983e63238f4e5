package services

import (
	"errors"
	"testing"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/logger"
	"github.com/ottchakarov/FrontDash/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A plain ":memory:" DSN gives every pooled connection its own empty
	// database, so queries outside the migrating connection see no tables.
	// A per-test file keeps one shared database across connections.
	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/test.db"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Restaurant{},
		&entity.RestaurantHours{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Driver{},
		&entity.Withdraw{},
		&entity.Approval{},
		&entity.Staff{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	r := entity.Restaurant{
		RestaurantID: id,
		Name:         name,
		Email:        "owner@" + id + ".test",
		Phone:        "555-0100",
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant %s: %v", id, err)
	}
}

func seedDriver(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	d := entity.Driver{DriverID: id, FirstName: "Pat", LastName: "Doe", Active: true}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed driver %s: %v", id, err)
	}
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewDriverRepository(db),
		logger.Nop())
}

func newWithdrawalService(db *gorm.DB) *WithdrawalService {
	return NewWithdrawalService(db,
		repository.NewWithdrawRepository(db),
		repository.NewRestaurantRepository(db),
		logger.Nop())
}

func newApprovalService(db *gorm.DB) *ApprovalService {
	return NewApprovalService(
		repository.NewApprovalRepository(db),
		repository.NewRestaurantRepository(db),
		logger.Nop())
}

func newHoursService(db *gorm.DB) *HoursService {
	return NewHoursService(db,
		repository.NewHoursRepository(db),
		repository.NewRestaurantRepository(db),
		logger.Nop())
}

func wantErrIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got %v", target, err)
	}
}
