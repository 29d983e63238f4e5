package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/repository"
	"github.com/ottchakarov/FrontDash/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService logs staff in against the stored bcrypt hash only; there is no
// other accepted credential.
type AuthService struct {
	StaffRepo *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(staffRepo *repository.StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{StaffRepo: staffRepo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(username, password string) (string, *entity.Staff, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	staff, err := s.StaffRepo.FindByUsername(username)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if !staff.Active {
		return "", nil, errors.New("account inactive")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	role := "staff"
	if staff.RoleID == 1 {
		role = "admin"
	}
	token, err := utils.GenerateToken(staff.StaffID, role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, staff, nil
}
