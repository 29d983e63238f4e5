package services

import (
	"testing"
	"time"

	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/pkg/logger"
	"github.com/ottchakarov/FrontDash/repository"
	"github.com/ottchakarov/FrontDash/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newStaffService(db *gorm.DB) *StaffService {
	return NewStaffService(repository.NewStaffRepository(db), logger.Nop())
}

func TestStaffCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newStaffService(db)

	st, err := svc.Create(&CreateStaffReq{
		RoleID:   2,
		Email:    "Pat.Doe@Example.com",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if st.StaffID == "" {
		t.Errorf("staff id not generated")
	}
	if st.Username != "pat.doe@example.com" {
		t.Errorf("username = %q, want lowercased email", st.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte("s3cret-pw")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if st.PasswordHash == "s3cret-pw" {
		t.Errorf("password stored in the clear")
	}
}

func TestStaffCreateRejectsDuplicatesAndBlankPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newStaffService(db)

	if _, err := svc.Create(&CreateStaffReq{RoleID: 2, Username: "pat", Password: "pw123456"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(&CreateStaffReq{RoleID: 2, Username: "pat", Password: "pw123456"})
	wantErrIs(t, err, apperr.ErrConflict)

	_, err = svc.Create(&CreateStaffReq{RoleID: 2, Username: "kim", Password: "   "})
	wantErrIs(t, err, apperr.ErrValidation)
}

func TestStaffInactivate(t *testing.T) {
	db := newTestDB(t)
	svc := newStaffService(db)

	st, err := svc.Create(&CreateStaffReq{RoleID: 2, Username: "pat", Password: "pw123456"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	st, err = svc.Inactivate(st.StaffID)
	if err != nil {
		t.Fatalf("inactivate: %v", err)
	}
	if st.Active {
		t.Errorf("staff still active")
	}

	_, err = svc.Inactivate(st.StaffID)
	wantErrIs(t, err, apperr.ErrInvalidState)

	_, err = svc.Inactivate("staff-missing")
	wantErrIs(t, err, apperr.ErrNotFound)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	staffSvc := newStaffService(db)
	authSvc := NewAuthService(repository.NewStaffRepository(db), "test-secret", time.Hour)

	if _, err := staffSvc.Create(&CreateStaffReq{RoleID: 1, Username: "admin", Password: "pw123456"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	token, st, err := authSvc.Login("admin", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.StaffID != st.StaffID {
		t.Errorf("token staff id = %q, want %q", claims.StaffID, st.StaffID)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin for role id 1", claims.Role)
	}

	if _, _, err := authSvc.Login("admin", "wrong-pw"); err == nil {
		t.Errorf("wrong password accepted")
	}
	if _, _, err := authSvc.Login("nobody", "pw123456"); err == nil {
		t.Errorf("unknown user accepted")
	}
}

func TestLoginInactiveStaff(t *testing.T) {
	db := newTestDB(t)
	staffSvc := newStaffService(db)
	authSvc := NewAuthService(repository.NewStaffRepository(db), "test-secret", time.Hour)

	st, err := staffSvc.Create(&CreateStaffReq{RoleID: 1, Username: "admin", Password: "pw123456"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := staffSvc.Inactivate(st.StaffID); err != nil {
		t.Fatalf("inactivate: %v", err)
	}

	if _, _, err := authSvc.Login("admin", "pw123456"); err == nil {
		t.Errorf("inactive staff logged in")
	}
}
