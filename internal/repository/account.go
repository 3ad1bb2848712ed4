package repository

import (
	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for enterprise and teacher accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateEnterprise creates a new enterprise account
func (r *AccountRepository) CreateEnterprise(enterprise *models.Enterprise) error {
	return r.db.Create(enterprise).Error
}

// CreateTeacher creates a new teacher account
func (r *AccountRepository) CreateTeacher(teacher *models.Teacher) error {
	return r.db.Create(teacher).Error
}

// GetEnterpriseByID retrieves an enterprise by ID
func (r *AccountRepository) GetEnterpriseByID(id uuid.UUID) (*models.Enterprise, error) {
	var enterprise models.Enterprise
	err := r.db.First(&enterprise, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &enterprise, nil
}

// GetTeacherByID retrieves a teacher by ID
func (r *AccountRepository) GetTeacherByID(id uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// GetAccount retrieves the hierarchy view of an organization account of the given kind
func (r *AccountRepository) GetAccount(kind models.OrganizationKind, id uuid.UUID) (*models.OrganizationAccount, error) {
	switch kind {
	case models.OrganizationKindEnterprise:
		enterprise, err := r.GetEnterpriseByID(id)
		if err != nil {
			return nil, err
		}
		account := enterprise.Account()
		return &account, nil
	case models.OrganizationKindTeacher:
		teacher, err := r.GetTeacherByID(id)
		if err != nil {
			return nil, err
		}
		account := teacher.Account()
		return &account, nil
	}
	return nil, apperrors.ErrInvalidOrganizationKind
}

// GetSecondaryIDs returns the ids of all secondary accounts attached to primaryID
func (r *AccountRepository) GetSecondaryIDs(kind models.OrganizationKind, primaryID uuid.UUID) ([]uuid.UUID, error) {
	var model interface{}
	switch kind {
	case models.OrganizationKindEnterprise:
		model = &models.Enterprise{}
	case models.OrganizationKindTeacher:
		model = &models.Teacher{}
	default:
		return nil, apperrors.ErrInvalidOrganizationKind
	}

	var ids []uuid.UUID
	err := r.db.Model(model).
		Where("primary_account_id = ? AND is_primary = ?", primaryID, false).
		Order("created_at").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
