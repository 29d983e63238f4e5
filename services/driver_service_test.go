package services

import (
	"strings"
	"testing"

	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/pkg/logger"
	"github.com/ottchakarov/FrontDash/repository"

	"gorm.io/gorm"
)

func newDriverService(db *gorm.DB) *DriverService {
	return NewDriverService(repository.NewDriverRepository(db), logger.Nop())
}

func TestDriverCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newDriverService(db)

	d, err := svc.Create("Pat", "Doe")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(d.DriverID, "drv-") {
		t.Errorf("driver id %q missing drv- prefix", d.DriverID)
	}
	if !d.Active || d.AssignedToOrder {
		t.Errorf("new driver should be active and unassigned: %+v", d)
	}

	_, err = svc.Create("  ", "")
	wantErrIs(t, err, apperr.ErrValidation)
}

func TestDriverInactivate(t *testing.T) {
	db := newTestDB(t)
	svc := newDriverService(db)

	d, err := svc.Create("Pat", "Doe")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	d, err = svc.Inactivate(d.DriverID)
	if err != nil {
		t.Fatalf("inactivate: %v", err)
	}
	if d.Active {
		t.Errorf("driver still active")
	}

	_, err = svc.Inactivate(d.DriverID)
	wantErrIs(t, err, apperr.ErrInvalidState)

	_, err = svc.Inactivate("drv-missing1")
	wantErrIs(t, err, apperr.ErrNotFound)
}

func TestDriverInactivateBlockedByOpenOrder(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	driverSvc := newDriverService(db)
	orderSvc := newOrderService(db)

	d, err := driverSvc.Create("Pat", "Doe")
	if err != nil {
		t.Fatalf("create driver: %v", err)
	}
	o := placeOrder(t, orderSvc, "REST-ACM")
	if _, err := orderSvc.AssignDriver(o.OrderID, d.DriverID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	_, err = driverSvc.Inactivate(d.DriverID)
	wantErrIs(t, err, apperr.ErrInvalidState)

	// delivery releases the driver, after which inactivation succeeds
	if _, err := orderSvc.MarkDelivered(o.OrderID, nil); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	d, err = driverSvc.Inactivate(d.DriverID)
	if err != nil {
		t.Fatalf("inactivate after delivery: %v", err)
	}
	if d.Active {
		t.Errorf("driver still active")
	}

	// an inactive driver cannot take new orders
	o2 := placeOrder(t, orderSvc, "REST-ACM")
	_, err = orderSvc.AssignDriver(o2.OrderID, d.DriverID)
	wantErrIs(t, err, apperr.ErrConflict)
}
