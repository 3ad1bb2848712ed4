package service_test

import (
	"context"
	"errors"
	"testing"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/hierarchy"
	"campus-placement-backend/internal/mocks"
	"campus-placement-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockAccountRepositoryInterface
	accountService *service.AccountService
}

// SetupTest sets up the test suite
func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAccountRepositoryInterface(suite.ctrl)
	suite.accountService = service.NewAccountService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func primaryRow(kind models.OrganizationKind, id uuid.UUID) *models.OrganizationAccount {
	return &models.OrganizationAccount{ID: id, Kind: kind, Name: "primary", Hierarchy: models.AccountHierarchy{IsPrimary: true}}
}

func secondaryRow(kind models.OrganizationKind, id, primaryID uuid.UUID) *models.OrganizationAccount {
	return &models.OrganizationAccount{ID: id, Kind: kind, Name: "secondary", Hierarchy: models.AccountHierarchy{PrimaryAccountID: &primaryID}}
}

// TestLoad tests resolving stored rows into the hierarchy variant
func (suite *AccountServiceTestSuite) TestLoad() {
	primaryID, secondaryID := uuid.New(), uuid.New()

	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, primaryID).
		Return(primaryRow(models.OrganizationKindEnterprise, primaryID), nil)
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, secondaryID).
		Return(secondaryRow(models.OrganizationKindEnterprise, secondaryID, primaryID), nil)

	account, err := suite.accountService.Load(suite.ctx, models.OrganizationKindEnterprise, primaryID)
	suite.Require().NoError(err)
	suite.Equal(hierarchy.Primary{ID: primaryID}, account)

	account, err = suite.accountService.Load(suite.ctx, models.OrganizationKindEnterprise, secondaryID)
	suite.Require().NoError(err)
	suite.Equal(hierarchy.Secondary{ID: secondaryID, PrimaryID: primaryID}, account)
}

// TestLoadInconsistentRowIsStandalonePrimary tests that a broken hierarchy degrades without an error
func (suite *AccountServiceTestSuite) TestLoadInconsistentRowIsStandalonePrimary() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindTeacher, id).
		Return(&models.OrganizationAccount{ID: id, Kind: models.OrganizationKindTeacher}, nil)

	account, err := suite.accountService.Load(suite.ctx, models.OrganizationKindTeacher, id)

	suite.Require().NoError(err)
	suite.Equal(hierarchy.Primary{ID: id}, account)
	suite.Equal(id, hierarchy.EffectiveIdentity(account))
}

// TestLoadNotFound tests the per-kind not found errors
func (suite *AccountServiceTestSuite) TestLoadNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, id).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindTeacher, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.accountService.Load(suite.ctx, models.OrganizationKindEnterprise, id)
	suite.ErrorIs(err, apperrors.ErrEnterpriseNotFound)

	_, err = suite.accountService.Load(suite.ctx, models.OrganizationKindTeacher, id)
	suite.ErrorIs(err, apperrors.ErrTeacherNotFound)
}

// TestLoadInvalidKind tests that an unknown organization kind is rejected before any lookup
func (suite *AccountServiceTestSuite) TestLoadInvalidKind() {
	_, err := suite.accountService.Load(suite.ctx, models.OrganizationKind("school"), uuid.New())
	suite.ErrorIs(err, apperrors.ErrInvalidOrganizationKind)
}

// TestLoadCallerRejectsStudents tests that only organization callers resolve to accounts
func (suite *AccountServiceTestSuite) TestLoadCallerRejectsStudents() {
	_, _, err := suite.accountService.LoadCaller(suite.ctx, callerOf(models.AccountKindStudent))
	suite.ErrorIs(err, apperrors.ErrNotOrganizationAccount)

	_, _, err = suite.accountService.LoadCaller(suite.ctx, callerOf(models.AccountKindAdmin))
	suite.ErrorIs(err, apperrors.ErrNotOrganizationAccount)
}

// TestVisibleIdentities tests that only primaries query their secondaries
func (suite *AccountServiceTestSuite) TestVisibleIdentities() {
	primaryID, s1, s2 := uuid.New(), uuid.New(), uuid.New()

	suite.mockRepo.EXPECT().GetSecondaryIDs(models.OrganizationKindEnterprise, primaryID).
		Return([]uuid.UUID{s1, s2}, nil).Times(1)

	ids, err := suite.accountService.VisibleIdentities(suite.ctx, models.OrganizationKindEnterprise, hierarchy.Primary{ID: primaryID})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{primaryID, s1, s2}, ids)

	ids, err = suite.accountService.VisibleIdentities(suite.ctx, models.OrganizationKindEnterprise, hierarchy.Secondary{ID: s1, PrimaryID: primaryID})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{primaryID}, ids)
}

// TestVisibleIdentitiesLookupFailure tests that store failures propagate
func (suite *AccountServiceTestSuite) TestVisibleIdentitiesLookupFailure() {
	primaryID := uuid.New()
	lookupErr := errors.New("connection reset")
	suite.mockRepo.EXPECT().GetSecondaryIDs(models.OrganizationKindTeacher, primaryID).Return(nil, lookupErr)

	_, err := suite.accountService.VisibleIdentities(suite.ctx, models.OrganizationKindTeacher, hierarchy.Primary{ID: primaryID})
	suite.ErrorIs(err, lookupErr)
}

// TestIdentityForAdmin tests describing a secondary account as an administrator
func (suite *AccountServiceTestSuite) TestIdentityForAdmin() {
	primaryID, secondaryID := uuid.New(), uuid.New()
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, secondaryID).
		Return(secondaryRow(models.OrganizationKindEnterprise, secondaryID, primaryID), nil)

	identity, err := suite.accountService.Identity(suite.ctx, callerOf(models.AccountKindAdmin), models.OrganizationKindEnterprise, secondaryID)

	suite.Require().NoError(err)
	suite.Equal(service.RoleSecondary, identity.Role)
	suite.True(identity.Consistent)
	suite.Equal(primaryID, identity.EffectiveIdentity)
	suite.Equal(primaryID, *identity.PrimaryAccountID)
	suite.Equal([]uuid.UUID{primaryID}, identity.VisibleIdentities)
}

// TestIdentityPrimaryViewsOwnSecondary tests that a primary may inspect its secondaries
func (suite *AccountServiceTestSuite) TestIdentityPrimaryViewsOwnSecondary() {
	primaryID, secondaryID := uuid.New(), uuid.New()
	caller := &auth.Caller{AccountID: primaryID, Kind: models.AccountKindEnterprise}

	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, secondaryID).
		Return(secondaryRow(models.OrganizationKindEnterprise, secondaryID, primaryID), nil)
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, primaryID).
		Return(primaryRow(models.OrganizationKindEnterprise, primaryID), nil)
	suite.mockRepo.EXPECT().GetSecondaryIDs(models.OrganizationKindEnterprise, primaryID).
		Return([]uuid.UUID{secondaryID}, nil)

	identity, err := suite.accountService.Identity(suite.ctx, caller, models.OrganizationKindEnterprise, secondaryID)

	suite.Require().NoError(err)
	suite.Equal(secondaryID, identity.AccountID)
	suite.Equal(primaryID, identity.EffectiveIdentity)
}

// TestIdentityRejectsUnrelatedAccount tests the read boundary between organizations
func (suite *AccountServiceTestSuite) TestIdentityRejectsUnrelatedAccount() {
	otherID := uuid.New()
	caller := callerOf(models.AccountKindEnterprise)

	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, otherID).
		Return(primaryRow(models.OrganizationKindEnterprise, otherID), nil)
	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, caller.AccountID).
		Return(primaryRow(models.OrganizationKindEnterprise, caller.AccountID), nil)
	suite.mockRepo.EXPECT().GetSecondaryIDs(models.OrganizationKindEnterprise, caller.AccountID).
		Return(nil, nil)

	_, err := suite.accountService.Identity(suite.ctx, caller, models.OrganizationKindEnterprise, otherID)
	suite.ErrorIs(err, apperrors.ErrCannotManageTarget)
}

// TestProvisionPrimary tests that administrators create primaries
func (suite *AccountServiceTestSuite) TestProvisionPrimary() {
	suite.mockRepo.EXPECT().CreateEnterprise(gomock.Any()).DoAndReturn(func(e *models.Enterprise) error {
		suite.True(e.IsPrimary)
		suite.Nil(e.PrimaryAccountID)
		e.ID = uuid.New()
		return nil
	})

	response, err := suite.accountService.Provision(suite.ctx, callerOf(models.AccountKindAdmin), models.OrganizationKindEnterprise,
		&service.ProvisionAccountRequest{Name: "Acme", Email: "hr@acme.example"})

	suite.Require().NoError(err)
	suite.True(response.IsPrimary)
	suite.Equal("Acme", response.Name)
	suite.NotEqual(uuid.Nil, response.ID)
}

// TestProvisionPrimaryRequiresAdmin tests that organizations cannot create new primaries
func (suite *AccountServiceTestSuite) TestProvisionPrimaryRequiresAdmin() {
	_, err := suite.accountService.Provision(suite.ctx, callerOf(models.AccountKindEnterprise), models.OrganizationKindEnterprise,
		&service.ProvisionAccountRequest{Name: "Acme"})
	suite.ErrorIs(err, apperrors.ErrNotAdminAccount)
}

// TestProvisionSecondaryByPrimary tests that a primary attaches a secondary to itself
func (suite *AccountServiceTestSuite) TestProvisionSecondaryByPrimary() {
	primaryID := uuid.New()
	caller := &auth.Caller{AccountID: primaryID, Kind: models.AccountKindTeacher}

	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindTeacher, primaryID).
		Return(primaryRow(models.OrganizationKindTeacher, primaryID), nil)
	suite.mockRepo.EXPECT().CreateTeacher(gomock.Any()).DoAndReturn(func(t *models.Teacher) error {
		suite.False(t.IsPrimary)
		suite.Equal(primaryID, *t.PrimaryAccountID)
		t.ID = uuid.New()
		return nil
	})

	response, err := suite.accountService.Provision(suite.ctx, caller, models.OrganizationKindTeacher,
		&service.ProvisionAccountRequest{Name: "Assistant", School: "North Campus", PrimaryAccountID: &primaryID})

	suite.Require().NoError(err)
	suite.False(response.IsPrimary)
	suite.Equal(primaryID, *response.PrimaryAccountID)
}

// TestProvisionSecondaryOfSecondary tests that the hierarchy stays one level deep
func (suite *AccountServiceTestSuite) TestProvisionSecondaryOfSecondary() {
	rootID, secondaryID := uuid.New(), uuid.New()

	suite.mockRepo.EXPECT().GetAccount(models.OrganizationKindEnterprise, secondaryID).
		Return(secondaryRow(models.OrganizationKindEnterprise, secondaryID, rootID), nil)

	_, err := suite.accountService.Provision(suite.ctx, callerOf(models.AccountKindAdmin), models.OrganizationKindEnterprise,
		&service.ProvisionAccountRequest{Name: "Nested", PrimaryAccountID: &secondaryID})
	suite.ErrorIs(err, apperrors.ErrPrimaryNotPrimary)
}

// TestProvisionSecondaryForAnotherOrganization tests that a primary cannot attach secondaries elsewhere
func (suite *AccountServiceTestSuite) TestProvisionSecondaryForAnotherOrganization() {
	otherID := uuid.New()

	_, err := suite.accountService.Provision(suite.ctx, callerOf(models.AccountKindEnterprise), models.OrganizationKindEnterprise,
		&service.ProvisionAccountRequest{Name: "Intruder", PrimaryAccountID: &otherID})
	suite.ErrorIs(err, apperrors.ErrCannotManageTarget)
}

// TestProvisionValidation tests request validation
func (suite *AccountServiceTestSuite) TestProvisionValidation() {
	_, err := suite.accountService.Provision(suite.ctx, callerOf(models.AccountKindAdmin), models.OrganizationKindEnterprise,
		&service.ProvisionAccountRequest{Email: "not-an-email"})

	suite.Require().Error(err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestAccountServiceTestSuite runs the test suite
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
