package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/hierarchy"
	"campus-placement-backend/internal/logger"
	"campus-placement-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountService loads organization accounts into the hierarchy variant and provisions new ones
type AccountService struct {
	repo      repository.AccountRepositoryInterface
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(repo repository.AccountRepositoryInterface, validator *validator.Validate) *AccountService {
	return &AccountService{
		repo:      repo,
		validator: validator,
	}
}

// ProvisionAccountRequest represents the request to create an enterprise or teacher account.
// A request carrying PrimaryAccountID creates a secondary of that primary.
type ProvisionAccountRequest struct {
	Name             string     `json:"name" validate:"required,max=100" example:"Acme Recruiting"`
	Email            string     `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ContactName      string     `json:"contact_name,omitempty" validate:"max=100"`
	Industry         string     `json:"industry,omitempty" validate:"max=100"`
	School           string     `json:"school,omitempty" validate:"max=200"`
	Department       string     `json:"department,omitempty" validate:"max=200"`
	PrimaryAccountID *uuid.UUID `json:"primary_account_id,omitempty"`
}

// AccountResponse represents a provisioned organization account
type AccountResponse struct {
	ID               uuid.UUID               `json:"id"`
	Kind             models.OrganizationKind `json:"kind"`
	Name             string                  `json:"name"`
	IsPrimary        bool                    `json:"is_primary"`
	PrimaryAccountID *uuid.UUID              `json:"primary_account_id,omitempty"`
	CreatedAt        string                  `json:"created_at"`
}

// IdentityResponse describes how an account reads and writes shared organization data
type IdentityResponse struct {
	AccountID         uuid.UUID               `json:"account_id"`
	Kind              models.OrganizationKind `json:"kind"`
	Role              string                  `json:"role" example:"secondary"`
	PrimaryAccountID  *uuid.UUID              `json:"primary_account_id,omitempty"`
	Consistent        bool                    `json:"consistent"`
	EffectiveIdentity uuid.UUID               `json:"effective_identity"`
	VisibleIdentities []uuid.UUID             `json:"visible_identities"`
}

// Roles reported by IdentityResponse
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
)

func notFoundFor(kind models.OrganizationKind) error {
	if kind == models.OrganizationKindTeacher {
		return apperrors.ErrTeacherNotFound
	}
	return apperrors.ErrEnterpriseNotFound
}

// load resolves the account and reports whether its stored hierarchy is consistent
func (s *AccountService) load(ctx context.Context, kind models.OrganizationKind, id uuid.UUID) (hierarchy.Account, bool, error) {
	if !kind.IsValid() {
		return nil, false, apperrors.ErrInvalidOrganizationKind
	}

	account, err := s.repo.GetAccount(kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, notFoundFor(kind)
		}
		return nil, false, fmt.Errorf("failed to load %s account: %w", kind, err)
	}

	resolved, consistent := hierarchy.Resolve(account.ID, account.Hierarchy.IsPrimary, account.Hierarchy.PrimaryAccountID)
	if !consistent {
		inconsistentAccountsTotal.WithLabelValues(string(kind)).Inc()
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"organization_kind":  kind,
			"organization_id":    account.ID,
			"is_primary":         account.Hierarchy.IsPrimary,
			"primary_account_id": account.Hierarchy.PrimaryAccountID,
		}).Warn("inconsistent account hierarchy, treating account as a standalone primary")
	}
	return resolved, consistent, nil
}

// Load resolves an organization account into its hierarchy variant
func (s *AccountService) Load(ctx context.Context, kind models.OrganizationKind, id uuid.UUID) (hierarchy.Account, error) {
	account, _, err := s.load(ctx, kind, id)
	return account, err
}

// LoadCaller resolves the organization account behind an authenticated caller
func (s *AccountService) LoadCaller(ctx context.Context, caller *auth.Caller) (hierarchy.Account, models.OrganizationKind, error) {
	kind, ok := caller.OrganizationKind()
	if !ok {
		return nil, "", apperrors.ErrNotOrganizationAccount
	}
	account, err := s.Load(ctx, kind, caller.AccountID)
	if err != nil {
		return nil, "", err
	}
	return account, kind, nil
}

// VisibleIdentities returns the organization ids whose data the account may read
func (s *AccountService) VisibleIdentities(ctx context.Context, kind models.OrganizationKind, account hierarchy.Account) ([]uuid.UUID, error) {
	ids, err := hierarchy.VisibleIdentities(account, func(primaryID uuid.UUID) ([]uuid.UUID, error) {
		return s.repo.GetSecondaryIDs(kind, primaryID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load secondary accounts: %w", err)
	}
	return ids, nil
}

// Identity describes the effective and visible identities of an account. Administrators may
// inspect any account; organization callers only accounts inside their own visible set.
func (s *AccountService) Identity(ctx context.Context, caller *auth.Caller, kind models.OrganizationKind, id uuid.UUID) (*IdentityResponse, error) {
	account, consistent, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() {
		if err := s.authorizeView(ctx, caller, kind, id); err != nil {
			return nil, err
		}
	}

	visible, err := s.VisibleIdentities(ctx, kind, account)
	if err != nil {
		return nil, err
	}

	response := &IdentityResponse{
		AccountID:         id,
		Kind:              kind,
		Role:              RolePrimary,
		Consistent:        consistent,
		EffectiveIdentity: hierarchy.EffectiveIdentity(account),
		VisibleIdentities: visible,
	}
	if secondary, ok := account.(hierarchy.Secondary); ok {
		response.Role = RoleSecondary
		primaryID := secondary.PrimaryID
		response.PrimaryAccountID = &primaryID
	}
	return response, nil
}

func (s *AccountService) authorizeView(ctx context.Context, caller *auth.Caller, kind models.OrganizationKind, id uuid.UUID) error {
	callerKind, ok := caller.OrganizationKind()
	if !ok || callerKind != kind {
		return apperrors.ErrCannotManageTarget
	}
	if caller.AccountID == id {
		return nil
	}

	callerAccount, err := s.Load(ctx, callerKind, caller.AccountID)
	if err != nil {
		return err
	}
	visible, err := s.VisibleIdentities(ctx, callerKind, callerAccount)
	if err != nil {
		return err
	}
	for _, visibleID := range visible {
		if visibleID == id {
			return nil
		}
	}
	return apperrors.ErrCannotManageTarget
}

// Provision creates an enterprise or teacher account. Primaries are created by administrators;
// a secondary may also be created by the primary it attaches to. The referenced primary must
// itself be a primary so the hierarchy stays one level deep.
func (s *AccountService) Provision(ctx context.Context, caller *auth.Caller, kind models.OrganizationKind, req *ProvisionAccountRequest) (*AccountResponse, error) {
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidOrganizationKind
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	hier := models.AccountHierarchy{IsPrimary: true}
	if req.PrimaryAccountID != nil {
		if err := s.authorizeProvisionSecondary(caller, kind, *req.PrimaryAccountID); err != nil {
			return nil, err
		}
		primary, err := s.repo.GetAccount(kind, *req.PrimaryAccountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundFor(kind)
			}
			return nil, fmt.Errorf("failed to load primary account: %w", err)
		}
		if !primary.Hierarchy.IsPrimary || primary.Hierarchy.PrimaryAccountID != nil {
			return nil, apperrors.ErrPrimaryNotPrimary
		}
		primaryID := primary.ID
		hier = models.AccountHierarchy{IsPrimary: false, PrimaryAccountID: &primaryID}
	} else if !caller.IsAdmin() {
		return nil, apperrors.ErrNotAdminAccount
	}

	var (
		account   models.OrganizationAccount
		createdAt time.Time
	)
	switch kind {
	case models.OrganizationKindEnterprise:
		enterprise := &models.Enterprise{
			AccountHierarchy: hier,
			Name:             req.Name,
			ContactName:      req.ContactName,
			ContactEmail:     req.Email,
			Industry:         req.Industry,
		}
		if err := s.repo.CreateEnterprise(enterprise); err != nil {
			return nil, fmt.Errorf("failed to create enterprise: %w", err)
		}
		account, createdAt = enterprise.Account(), enterprise.CreatedAt
	case models.OrganizationKindTeacher:
		teacher := &models.Teacher{
			AccountHierarchy: hier,
			Name:             req.Name,
			Email:            req.Email,
			School:           req.School,
			Department:       req.Department,
		}
		if err := s.repo.CreateTeacher(teacher); err != nil {
			return nil, fmt.Errorf("failed to create teacher: %w", err)
		}
		account, createdAt = teacher.Account(), teacher.CreatedAt
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_kind": kind,
		"organization_id":   account.ID,
		"is_primary":        hier.IsPrimary,
	}).Info("provisioned organization account")

	return &AccountResponse{
		ID:               account.ID,
		Kind:             kind,
		Name:             account.Name,
		IsPrimary:        hier.IsPrimary,
		PrimaryAccountID: hier.PrimaryAccountID,
		CreatedAt:        createdAt.Format(time.RFC3339),
	}, nil
}

func (s *AccountService) authorizeProvisionSecondary(caller *auth.Caller, kind models.OrganizationKind, primaryID uuid.UUID) error {
	if caller.IsAdmin() {
		return nil
	}
	callerKind, ok := caller.OrganizationKind()
	if !ok {
		return apperrors.ErrNotOrganizationAccount
	}
	if callerKind != kind || caller.AccountID != primaryID {
		return apperrors.ErrCannotManageTarget
	}
	return nil
}
