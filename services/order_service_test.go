package services

import (
	"strings"
	"testing"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
)

func placeOrder(t *testing.T, svc *OrderService, restaurantID string) *entity.Order {
	t.Helper()
	o, err := svc.Create(&CreateOrderReq{
		RestaurantID: restaurantID,
		Items: []OrderItemIn{
			{Name: "Hot Wings", Quantity: 2, Price: 7.99},
			{Name: "Lemonade", Quantity: 1, Price: 6.00},
		},
		Contact:  &ContactIn{Name: "Sam Rivera", Phone: "555-0199"},
		Delivery: &DeliveryIn{Building: "12", Street: "Oak Ave", City: "Springfield"},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func TestCreateOrderComputesTotalFromItems(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newOrderService(db)

	o := placeOrder(t, svc, "REST-ACM")

	if !strings.HasPrefix(o.OrderID, "ord-") {
		t.Errorf("order id %q missing ord- prefix", o.OrderID)
	}
	if o.Status != entity.OrderPending {
		t.Errorf("status = %s, want PENDING", o.Status)
	}
	if o.TotalAmount != 21.98 {
		t.Errorf("total = %.2f, want 21.98", o.TotalAmount)
	}
	if o.DeliveryAddress != "12 Oak Ave, Springfield" {
		t.Errorf("address = %q", o.DeliveryAddress)
	}

	var count int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", o.OrderID).Count(&count)
	if count != 2 {
		t.Errorf("persisted %d items, want 2", count)
	}
}

func TestCreateOrderHonorsProvidedTotal(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newOrderService(db)

	o, err := svc.Create(&CreateOrderReq{
		RestaurantID: "REST-ACM",
		Items:        []OrderItemIn{{Name: "Hot Wings", Quantity: 1, Price: 7.99}},
		Financials:   &FinancialsIn{Total: 12.50},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if o.TotalAmount != 12.50 {
		t.Errorf("total = %.2f, want 12.50", o.TotalAmount)
	}
}

func TestCreateOrderUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, err := svc.Create(&CreateOrderReq{
		RestaurantID: "REST-NOPE",
		Items:        []OrderItemIn{{Name: "Hot Wings", Quantity: 1, Price: 7.99}},
	})
	wantErrIs(t, err, apperr.ErrNotFound)
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newOrderService(db)

	_, err := svc.Create(&CreateOrderReq{RestaurantID: "REST-ACM"})
	wantErrIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(&CreateOrderReq{
		RestaurantID: "REST-ACM",
		Items:        []OrderItemIn{{Name: "Hot Wings", Quantity: 0, Price: 7.99}},
	})
	wantErrIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(&CreateOrderReq{
		RestaurantID: "REST-ACM",
		Items:        []OrderItemIn{{Name: "Hot Wings", Quantity: 1, Price: -1}},
	})
	wantErrIs(t, err, apperr.ErrValidation)
}

func TestAssignThenDeliver(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	seedDriver(t, db, "drv-aaaa0001")
	svc := newOrderService(db)

	o := placeOrder(t, svc, "REST-ACM")

	var notified []entity.OrderStatus
	svc.Notify = func(o *entity.Order) { notified = append(notified, o.Status) }

	o, err := svc.AssignDriver(o.OrderID, "drv-aaaa0001")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if o.Status != entity.OrderAssigned {
		t.Errorf("status = %s, want ASSIGNED", o.Status)
	}
	if o.DriverID == nil || *o.DriverID != "drv-aaaa0001" {
		t.Errorf("driver not recorded on order")
	}

	var d entity.Driver
	db.First(&d, "driver_id = ?", "drv-aaaa0001")
	if !d.AssignedToOrder {
		t.Errorf("driver not marked assigned")
	}

	o, err = svc.MarkDelivered(o.OrderID, nil)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if o.Status != entity.OrderDelivered {
		t.Errorf("status = %s, want DELIVERED", o.Status)
	}
	if o.DeliveredAt == nil {
		t.Errorf("deliveredAt not set")
	}

	db.First(&d, "driver_id = ?", "drv-aaaa0001")
	if d.AssignedToOrder {
		t.Errorf("driver not released after delivery")
	}

	if len(notified) != 2 || notified[0] != entity.OrderAssigned || notified[1] != entity.OrderDelivered {
		t.Errorf("notify sequence = %v", notified)
	}
}

func TestAssignRejectsNonPendingOrder(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	seedDriver(t, db, "drv-aaaa0001")
	seedDriver(t, db, "drv-aaaa0002")
	svc := newOrderService(db)

	o := placeOrder(t, svc, "REST-ACM")
	if _, err := svc.AssignDriver(o.OrderID, "drv-aaaa0001"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	_, err := svc.AssignDriver(o.OrderID, "drv-aaaa0002")
	wantErrIs(t, err, apperr.ErrInvalidState)

	// the losing claim must roll back with the transaction
	var d entity.Driver
	db.First(&d, "driver_id = ?", "drv-aaaa0002")
	if d.AssignedToOrder {
		t.Errorf("second driver left claimed after failed assignment")
	}
}

func TestAssignBusyDriverConflicts(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	seedDriver(t, db, "drv-aaaa0001")
	svc := newOrderService(db)

	first := placeOrder(t, svc, "REST-ACM")
	second := placeOrder(t, svc, "REST-ACM")

	if _, err := svc.AssignDriver(first.OrderID, "drv-aaaa0001"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	_, err := svc.AssignDriver(second.OrderID, "drv-aaaa0001")
	wantErrIs(t, err, apperr.ErrConflict)
}

func TestAssignUnknownOrderAndDriver(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	seedDriver(t, db, "drv-aaaa0001")
	svc := newOrderService(db)

	o := placeOrder(t, svc, "REST-ACM")

	_, err := svc.AssignDriver("ord-missing1", "drv-aaaa0001")
	wantErrIs(t, err, apperr.ErrNotFound)

	_, err = svc.AssignDriver(o.OrderID, "drv-missing1")
	wantErrIs(t, err, apperr.ErrNotFound)
}

func TestDeliverRequiresAssignedOrder(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	seedDriver(t, db, "drv-aaaa0001")
	svc := newOrderService(db)

	o := placeOrder(t, svc, "REST-ACM")

	// pending, never assigned
	_, err := svc.MarkDelivered(o.OrderID, nil)
	wantErrIs(t, err, apperr.ErrInvalidState)

	if _, err := svc.AssignDriver(o.OrderID, "drv-aaaa0001"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := svc.MarkDelivered(o.OrderID, nil); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	// already delivered
	_, err = svc.MarkDelivered(o.OrderID, nil)
	wantErrIs(t, err, apperr.ErrInvalidState)
}

func TestBuildSummaryFormat(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newOrderService(db)

	o := placeOrder(t, svc, "REST-ACM")

	placed := time.Date(2025, 3, 14, 18, 5, 0, 0, time.UTC)
	if err := db.Model(&entity.Order{}).Where("order_id = ?", o.OrderID).
		Update("placed_at", placed).Error; err != nil {
		t.Fatalf("fix placed_at: %v", err)
	}

	got, err := svc.BuildSummary(o.OrderID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	want := "Restaurant: Acme Wings\n" +
		"Order date: 03-14-2025\n" +
		"Time of order: 6:05 PM\n" +
		"Estimated delivery time: 6:45 PM\n\n" +
		"Items:\n" +
		"- Hot Wings x2 ($7.99)\n" +
		"- Lemonade x1 ($6.00)\n" +
		"\nTotal: $21.98"
	if got != want {
		t.Errorf("summary mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
