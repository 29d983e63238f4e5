package repository

import (
	"github.com/ottchakarov/FrontDash/entity"

	"gorm.io/gorm"
)

// StaffRepository carries the staff-create / staff-inactivate collaborator
// calls plus the lookups the auth path needs.
type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) CreateStaff(s *entity.Staff) (*entity.Staff, error) {
	if err := r.DB.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// InactivateGuard flips active off. Zero rows affected means the staff member
// is missing or already inactive.
func (r *StaffRepository) InactivateGuard(id string) (int64, error) {
	res := r.DB.Model(&entity.Staff{}).
		Where("staff_id = ? AND active = ?", id, true).
		Update("active", false)
	return res.RowsAffected, res.Error
}

func (r *StaffRepository) Get(id string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("staff_id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) FindByUsername(username string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) CountByUsername(username string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Staff{}).Where("username = ?", username).Count(&cnt).Error
	return cnt, err
}
