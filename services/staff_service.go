package services

import (
	"fmt"
	"strings"

	"github.com/ottchakarov/FrontDash/entity"
	"github.com/ottchakarov/FrontDash/pkg/apperr"
	"github.com/ottchakarov/FrontDash/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	Repo *repository.StaffRepository
	Log  *zap.SugaredLogger
}

func NewStaffService(repo *repository.StaffRepository, log *zap.SugaredLogger) *StaffService {
	return &StaffService{Repo: repo, Log: log}
}

type CreateStaffReq struct {
	StaffID   string `json:"staffId"`
	RoleID    int    `json:"roleId" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Password  string `json:"password" binding:"required"`
}

// Create is the staff-create collaborator operation. Blank ids get a fresh
// uuid; a blank username falls back to the lowercased email, then to
// "user_<id>", matching the legacy procedure's defaulting.
func (s *StaffService) Create(req *CreateStaffReq) (*entity.Staff, error) {
	id := strings.TrimSpace(req.StaffID)
	if id == "" {
		id = uuid.NewString()
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		if req.Email != "" {
			username = strings.ToLower(req.Email)
		} else {
			username = "user_" + id
		}
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}

	cnt, err := s.Repo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, fmt.Errorf("%w: username %s already taken", apperr.ErrConflict, username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	st := &entity.Staff{
		StaffID:      id,
		RoleID:       req.RoleID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Username:     username,
		PasswordHash: string(hashed),
		Active:       true,
	}
	st, err = s.Repo.CreateStaff(st)
	if err != nil {
		return nil, err
	}
	s.Log.Infow("staff created", "staffId", st.StaffID, "roleId", st.RoleID)
	return st, nil
}

// Inactivate is the staff-inactivate collaborator operation.
func (s *StaffService) Inactivate(staffID string) (*entity.Staff, error) {
	affected, err := s.Repo.InactivateGuard(staffID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		if _, err := s.Repo.Get(staffID); err != nil {
			return nil, fmt.Errorf("%w: staff %s", apperr.ErrNotFound, staffID)
		}
		return nil, fmt.Errorf("%w: staff %s is already inactive", apperr.ErrInvalidState, staffID)
	}
	s.Log.Infow("staff inactivated", "staffId", staffID)
	return s.Repo.Get(staffID)
}
