package services

import (
	"testing"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
)

func TestWithdrawalRequestAndStatus(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newWithdrawalService(db)

	status, err := svc.Status("REST-ACM")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != "none" {
		t.Errorf("status = %q, want none before any request", status)
	}

	w, err := svc.Request("REST-ACM", "closing for the season")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if w.Status != entity.WithdrawPending {
		t.Errorf("status = %s, want pending", w.Status)
	}

	status, _ = svc.Status("REST-ACM")
	if status != "pending" {
		t.Errorf("status = %q, want pending", status)
	}
}

func TestWithdrawalSecondRequestConflicts(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newWithdrawalService(db)

	if _, err := svc.Request("REST-ACM", ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	_, err := svc.Request("REST-ACM", "")
	wantErrIs(t, err, apperr.ErrConflict)
}

func TestWithdrawalRequestUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newWithdrawalService(db)

	_, err := svc.Request("REST-NOPE", "")
	wantErrIs(t, err, apperr.ErrNotFound)
}

func TestWithdrawalCancelReturnsToNone(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newWithdrawalService(db)

	if _, err := svc.Request("REST-ACM", ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	w, err := svc.Cancel("REST-ACM")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if w.Status != entity.WithdrawPending {
		t.Errorf("snapshot status = %s, want pending", w.Status)
	}

	status, _ := svc.Status("REST-ACM")
	if status != "none" {
		t.Errorf("status after cancel = %q, want none", status)
	}

	// a fresh request is allowed again
	if _, err := svc.Request("REST-ACM", ""); err != nil {
		t.Fatalf("request after cancel: %v", err)
	}
}

func TestWithdrawalCancelMissing(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newWithdrawalService(db)

	_, err := svc.Cancel("REST-ACM")
	wantErrIs(t, err, apperr.ErrNotFound)
}

func TestWithdrawalApproveIsTerminal(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newWithdrawalService(db)

	if _, err := svc.Request("REST-ACM", ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	w, err := svc.Approve("REST-ACM")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if w.Status != entity.WithdrawApproved {
		t.Errorf("status = %s, want approved", w.Status)
	}
	if w.DecisionAt == nil {
		t.Errorf("decisionAt not set")
	}

	_, err = svc.Approve("REST-ACM")
	wantErrIs(t, err, apperr.ErrInvalidState)
	_, err = svc.Deny("REST-ACM", "changed our mind")
	wantErrIs(t, err, apperr.ErrInvalidState)
	_, err = svc.Cancel("REST-ACM")
	wantErrIs(t, err, apperr.ErrInvalidState)

	// a decided record also blocks a new request
	_, err = svc.Request("REST-ACM", "")
	wantErrIs(t, err, apperr.ErrConflict)
}

func TestWithdrawalDenyRecordsReason(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-ACM", "Acme Wings")
	svc := newWithdrawalService(db)

	if _, err := svc.Request("REST-ACM", ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	w, err := svc.Deny("REST-ACM", "outstanding balance")
	if err != nil {
		t.Fatalf("deny: %v", err)
	}
	if w.Status != entity.WithdrawDenied {
		t.Errorf("status = %s, want denied", w.Status)
	}
	if w.DenyReason == nil || *w.DenyReason != "outstanding balance" {
		t.Errorf("deny reason not recorded")
	}
}

func TestWithdrawalPendingListOrdering(t *testing.T) {
	db := newTestDB(t)
	seedRestaurant(t, db, "REST-AAA", "First In")
	seedRestaurant(t, db, "REST-BBB", "Second In")
	svc := newWithdrawalService(db)

	if _, err := svc.Request("REST-AAA", ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := svc.Request("REST-BBB", ""); err != nil {
		t.Fatalf("request: %v", err)
	}

	items, err := svc.ListByStatus(entity.WithdrawPending)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d pending, want 2", len(items))
	}
	if items[0].RestaurantID != "REST-AAA" {
		t.Errorf("pending list not ordered by request time: %s first", items[0].RestaurantID)
	}

	n, err := svc.PendingCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("pending count = %d, want 2", n)
	}
}
