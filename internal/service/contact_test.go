package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/hierarchy"
	"campus-placement-backend/internal/mocks"
	"campus-placement-backend/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ContactServiceTestSuite defines the test suite for ContactService
type ContactServiceTestSuite struct {
	suite.Suite
	ctx               context.Context
	ctrl              *gomock.Controller
	sqlMock           sqlmock.Sqlmock
	mockContacts      *mocks.MockContactRepositoryInterface
	mockStudents      *mocks.MockStudentRepositoryInterface
	mockAccounts      *mocks.MockAccountServiceInterface
	mockRelationships *mocks.MockRelationshipServiceInterface
	contactService    *service.ContactService

	primaryID   uuid.UUID
	secondaryID uuid.UUID
	candidateID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockStudents = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.mockAccounts = mocks.NewMockAccountServiceInterface(suite.ctrl)
	suite.mockRelationships = mocks.NewMockRelationshipServiceInterface(suite.ctrl)

	db, mock := newMockDB(suite.T())
	suite.sqlMock = mock
	suite.contactService = service.NewContactService(db, suite.mockContacts, suite.mockStudents,
		suite.mockAccounts, suite.mockRelationships, validator.New(), fastRetry)

	suite.primaryID = uuid.New()
	suite.secondaryID = uuid.New()
	suite.candidateID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.NoError(suite.sqlMock.ExpectationsWereMet())
	suite.ctrl.Finish()
}

func (suite *ContactServiceTestSuite) primaryCaller() *auth.Caller {
	return &auth.Caller{AccountID: suite.primaryID, Kind: models.AccountKindEnterprise}
}

func (suite *ContactServiceTestSuite) secondaryCaller() *auth.Caller {
	return &auth.Caller{AccountID: suite.secondaryID, Kind: models.AccountKindEnterprise}
}

func (suite *ContactServiceTestSuite) expectAccount(caller *auth.Caller, account hierarchy.Account) {
	suite.mockAccounts.EXPECT().LoadCaller(suite.ctx, caller).Return(account, models.OrganizationKindEnterprise, nil)
}

func (suite *ContactServiceTestSuite) expectCandidate() {
	suite.mockStudents.EXPECT().GetByID(suite.candidateID).
		Return(&models.Student{BaseModel: models.BaseModel{ID: suite.candidateID}}, nil)
}

// expectCommitted expects one transaction that runs the given synchronization check and commits
func (suite *ContactServiceTestSuite) expectCommitted(check func(req *service.SyncRequest)) {
	suite.sqlMock.ExpectBegin()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts)
	suite.mockRelationships.EXPECT().SynchronizeTx(suite.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gorm.DB, req *service.SyncRequest) (*models.TalentRelationship, error) {
			check(req)
			status, err := service.ImpliedStatus(req.Kind, req.Refs)
			suite.Require().NoError(err)
			return &models.TalentRelationship{
				OrganizationID:   req.OrganizationID,
				OrganizationKind: req.OrganizationKind,
				CandidateID:      req.CandidateID,
				Status:           status,
				LastContactKind:  req.Kind,
			}, nil
		})
	suite.sqlMock.ExpectCommit()
}

func withID(id *uuid.UUID) {
	*id = uuid.New()
}

// TestApply tests a student application synchronized under the job owner
func (suite *ContactServiceTestSuite) TestApply() {
	caller := &auth.Caller{AccountID: suite.candidateID, Kind: models.AccountKindStudent}
	job := &models.Job{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.primaryID, OrganizationKind: models.OrganizationKindEnterprise}
	resume := &models.Resume{BaseModel: models.BaseModel{ID: uuid.New()}, StudentID: suite.candidateID}
	var applicationID uuid.UUID

	suite.expectCandidate()
	suite.expectCommitted(func(req *service.SyncRequest) {
		suite.Equal(models.ContactKindApplication, req.Kind)
		suite.Equal(suite.primaryID, req.OrganizationID)
		suite.Equal(suite.candidateID, req.CandidateID)
		suite.Equal(resume.ID, *req.Refs.ResumeID)
		suite.Equal(applicationID, *req.Refs.ApplicationID)
		suite.Nil(req.Refs.InterviewID)
	})
	suite.mockContacts.EXPECT().GetJobByID(job.ID).Return(job, nil)
	suite.mockContacts.EXPECT().GetResumeByID(resume.ID).Return(resume, nil)
	suite.mockContacts.EXPECT().CreateApplication(gomock.Any()).DoAndReturn(func(a *models.JobApplication) error {
		suite.Equal(models.ApplicationStatusSubmitted, a.Status)
		suite.Equal(suite.primaryID, a.OrganizationID)
		withID(&a.ID)
		applicationID = a.ID
		return nil
	})

	response, err := suite.contactService.Apply(suite.ctx, caller, &service.ApplyRequest{JobID: job.ID, ResumeID: resume.ID})

	suite.Require().NoError(err)
	suite.Equal(applicationID, response.RecordID)
	suite.Equal(models.ContactKindApplication, response.Kind)
	suite.Equal(models.RelationshipStatus(""), response.Relationship.Status)
}

// TestApplyRequiresStudent tests that organizations cannot apply
func (suite *ContactServiceTestSuite) TestApplyRequiresStudent() {
	_, err := suite.contactService.Apply(suite.ctx, suite.primaryCaller(), &service.ApplyRequest{JobID: uuid.New(), ResumeID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrNotStudentAccount)
}

// TestApplyWithForeignResume tests that a student can only apply with their own resume
func (suite *ContactServiceTestSuite) TestApplyWithForeignResume() {
	caller := &auth.Caller{AccountID: suite.candidateID, Kind: models.AccountKindStudent}
	job := &models.Job{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.primaryID, OrganizationKind: models.OrganizationKindEnterprise}
	resume := &models.Resume{BaseModel: models.BaseModel{ID: uuid.New()}, StudentID: uuid.New()}

	suite.expectCandidate()
	suite.sqlMock.ExpectBegin()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts)
	suite.mockContacts.EXPECT().GetJobByID(job.ID).Return(job, nil)
	suite.mockContacts.EXPECT().GetResumeByID(resume.ID).Return(resume, nil)
	suite.sqlMock.ExpectRollback()

	_, err := suite.contactService.Apply(suite.ctx, caller, &service.ApplyRequest{JobID: job.ID, ResumeID: resume.ID})
	suite.ErrorIs(err, apperrors.ErrResumeNotOwned)
}

// TestApplyTwiceIsNotRetried tests that a duplicate application fails once without a ledger update
func (suite *ContactServiceTestSuite) TestApplyTwiceIsNotRetried() {
	caller := &auth.Caller{AccountID: suite.candidateID, Kind: models.AccountKindStudent}
	job := &models.Job{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.primaryID, OrganizationKind: models.OrganizationKindEnterprise}
	resume := &models.Resume{BaseModel: models.BaseModel{ID: uuid.New()}, StudentID: suite.candidateID}

	suite.expectCandidate()
	suite.sqlMock.ExpectBegin()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts)
	suite.mockContacts.EXPECT().GetJobByID(job.ID).Return(job, nil)
	suite.mockContacts.EXPECT().GetResumeByID(resume.ID).Return(resume, nil)
	suite.mockContacts.EXPECT().CreateApplication(gomock.Any()).Return(apperrors.ErrApplicationExists).Times(1)
	suite.sqlMock.ExpectRollback()

	_, err := suite.contactService.Apply(suite.ctx, caller, &service.ApplyRequest{JobID: job.ID, ResumeID: resume.ID})
	suite.ErrorIs(err, apperrors.ErrApplicationExists)
}

// TestApplyUnknownJob tests the job not found mapping
func (suite *ContactServiceTestSuite) TestApplyUnknownJob() {
	caller := &auth.Caller{AccountID: suite.candidateID, Kind: models.AccountKindStudent}
	jobID := uuid.New()

	suite.expectCandidate()
	suite.sqlMock.ExpectBegin()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts)
	suite.mockContacts.EXPECT().GetJobByID(jobID).Return(nil, gorm.ErrRecordNotFound)
	suite.sqlMock.ExpectRollback()

	_, err := suite.contactService.Apply(suite.ctx, caller, &service.ApplyRequest{JobID: jobID, ResumeID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrJobNotFound)
}

// TestScheduleInterviewBySecondary tests that a secondary writes under its primary and may act on its applications
func (suite *ContactServiceTestSuite) TestScheduleInterviewBySecondary() {
	caller := suite.secondaryCaller()
	application := &models.JobApplication{BaseModel: models.BaseModel{ID: uuid.New()}, StudentID: suite.candidateID, OrganizationID: suite.primaryID}
	var interviewID uuid.UUID

	suite.expectAccount(caller, hierarchy.Secondary{ID: suite.secondaryID, PrimaryID: suite.primaryID})
	suite.expectCandidate()
	suite.expectCommitted(func(req *service.SyncRequest) {
		suite.Equal(models.ContactKindInterview, req.Kind)
		suite.Equal(suite.primaryID, req.OrganizationID)
		suite.Equal(application.ID, *req.Refs.ApplicationID)
		suite.Equal(interviewID, *req.Refs.InterviewID)
	})
	suite.mockContacts.EXPECT().GetApplicationByID(application.ID).Return(application, nil)
	suite.mockContacts.EXPECT().UpdateApplicationStatus(application.ID, models.ApplicationStatusInterviewed).Return(nil)
	suite.mockContacts.EXPECT().CreateInterview(gomock.Any()).DoAndReturn(func(i *models.Interview) error {
		suite.Equal(suite.primaryID, i.OrganizationID)
		suite.Equal(suite.secondaryID, i.CreatedByAccountID)
		withID(&i.ID)
		interviewID = i.ID
		return nil
	})

	response, err := suite.contactService.ScheduleInterview(suite.ctx, caller, &service.ScheduleInterviewRequest{
		CandidateID:   suite.candidateID,
		ApplicationID: &application.ID,
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		Location:      "Room 204",
	})

	suite.Require().NoError(err)
	suite.Equal(models.RelationshipStatusInterviewed, response.Relationship.Status)
	suite.Equal(suite.primaryID, response.OrganizationID)
}

// TestScheduleInterviewOnSecondaryOwnedApplication tests that a primary cannot manage data its secondary owns
func (suite *ContactServiceTestSuite) TestScheduleInterviewOnSecondaryOwnedApplication() {
	caller := suite.primaryCaller()
	application := &models.JobApplication{BaseModel: models.BaseModel{ID: uuid.New()}, StudentID: suite.candidateID, OrganizationID: suite.secondaryID}

	suite.expectAccount(caller, hierarchy.Primary{ID: suite.primaryID})
	suite.expectCandidate()
	suite.sqlMock.ExpectBegin()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts)
	suite.mockContacts.EXPECT().GetApplicationByID(application.ID).Return(application, nil)
	suite.sqlMock.ExpectRollback()

	_, err := suite.contactService.ScheduleInterview(suite.ctx, caller, &service.ScheduleInterviewRequest{
		CandidateID:   suite.candidateID,
		ApplicationID: &application.ID,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	suite.ErrorIs(err, apperrors.ErrCannotManageTarget)
}

// TestScheduleInterviewUnknownCandidate tests that the candidate must exist
func (suite *ContactServiceTestSuite) TestScheduleInterviewUnknownCandidate() {
	caller := suite.primaryCaller()
	suite.expectAccount(caller, hierarchy.Primary{ID: suite.primaryID})
	suite.mockStudents.EXPECT().GetByID(suite.candidateID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.contactService.ScheduleInterview(suite.ctx, caller, &service.ScheduleInterviewRequest{
		CandidateID: suite.candidateID,
		ScheduledAt: time.Now(),
	})
	suite.ErrorIs(err, apperrors.ErrStudentNotFound)
}

// TestIssueOfferFromInterview tests that an offer inherits the interview's application
func (suite *ContactServiceTestSuite) TestIssueOfferFromInterview() {
	caller := suite.primaryCaller()
	applicationID := uuid.New()
	interview := &models.Interview{BaseModel: models.BaseModel{ID: uuid.New()}, StudentID: suite.candidateID, OrganizationID: suite.primaryID, ApplicationID: &applicationID}
	application := &models.JobApplication{BaseModel: models.BaseModel{ID: applicationID}, StudentID: suite.candidateID, OrganizationID: suite.primaryID}
	var offerID uuid.UUID

	suite.expectAccount(caller, hierarchy.Primary{ID: suite.primaryID})
	suite.expectCandidate()
	suite.expectCommitted(func(req *service.SyncRequest) {
		suite.Equal(models.ContactKindOffer, req.Kind)
		suite.Equal(offerID, *req.Refs.OfferID)
		suite.Equal(interview.ID, *req.Refs.InterviewID)
		suite.Equal(applicationID, *req.Refs.ApplicationID)
	})
	suite.mockContacts.EXPECT().GetInterviewByID(interview.ID).Return(interview, nil)
	suite.mockContacts.EXPECT().GetApplicationByID(applicationID).Return(application, nil)
	suite.mockContacts.EXPECT().UpdateApplicationStatus(applicationID, models.ApplicationStatusOffered).Return(nil)
	suite.mockContacts.EXPECT().CreateOffer(gomock.Any()).DoAndReturn(func(o *models.Offer) error {
		suite.True(decimal.RequireFromString("5200.50").Equal(o.Salary))
		withID(&o.ID)
		offerID = o.ID
		return nil
	})

	response, err := suite.contactService.IssueOffer(suite.ctx, caller, &service.IssueOfferRequest{
		CandidateID: suite.candidateID,
		InterviewID: &interview.ID,
		Position:    "Junior Engineer",
		Salary:      decimal.RequireFromString("5200.50"),
	})

	suite.Require().NoError(err)
	suite.Equal(models.RelationshipStatusHired, response.Relationship.Status)
}

// TestIssueOfferNegativeSalary tests salary validation
func (suite *ContactServiceTestSuite) TestIssueOfferNegativeSalary() {
	_, err := suite.contactService.IssueOffer(suite.ctx, suite.primaryCaller(), &service.IssueOfferRequest{
		CandidateID: suite.candidateID,
		Position:    "Analyst",
		Salary:      decimal.NewFromInt(-1),
	})
	suite.True(apperrors.IsValidation(err))
}

// TestBookmark tests bookmarking under the effective identity
func (suite *ContactServiceTestSuite) TestBookmark() {
	caller := suite.secondaryCaller()

	suite.expectAccount(caller, hierarchy.Secondary{ID: suite.secondaryID, PrimaryID: suite.primaryID})
	suite.expectCandidate()
	suite.expectCommitted(func(req *service.SyncRequest) {
		suite.Equal(models.ContactKindBookmark, req.Kind)
		suite.Equal(suite.primaryID, req.OrganizationID)
	})
	suite.mockContacts.EXPECT().UpsertBookmark(gomock.Any()).DoAndReturn(func(b *models.Bookmark) error {
		suite.Equal("strong portfolio", b.Note)
		withID(&b.ID)
		return nil
	})

	response, err := suite.contactService.Bookmark(suite.ctx, caller, &service.BookmarkRequest{CandidateID: suite.candidateID, Note: "strong portfolio"})

	suite.Require().NoError(err)
	suite.Equal(models.RelationshipStatusBookmarked, response.Relationship.Status)
}

// TestOpenConversationRequiresMessage tests request validation
func (suite *ContactServiceTestSuite) TestOpenConversationRequiresMessage() {
	_, err := suite.contactService.OpenConversation(suite.ctx, suite.primaryCaller(), &service.OpenConversationRequest{CandidateID: suite.candidateID})
	suite.True(apperrors.IsValidation(err))
}

// TestOpenConversationRetriesLedgerConflict tests that a conflicting ledger write re-runs the whole transaction
func (suite *ContactServiceTestSuite) TestOpenConversationRetriesLedgerConflict() {
	caller := suite.primaryCaller()
	conflict := apperrors.NewConflictError("talent relationship", true, errors.New("could not serialize access"))

	suite.expectAccount(caller, hierarchy.Primary{ID: suite.primaryID})
	suite.expectCandidate()

	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectRollback()
	suite.sqlMock.ExpectBegin()
	suite.sqlMock.ExpectCommit()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts).Times(2)
	suite.mockContacts.EXPECT().CreateConversation(gomock.Any()).DoAndReturn(func(c *models.Conversation) error {
		withID(&c.ID)
		return nil
	}).Times(2)
	gomock.InOrder(
		suite.mockRelationships.EXPECT().SynchronizeTx(suite.ctx, gomock.Any(), gomock.Any()).Return(nil, conflict),
		suite.mockRelationships.EXPECT().SynchronizeTx(suite.ctx, gomock.Any(), gomock.Any()).
			Return(&models.TalentRelationship{Status: models.RelationshipStatusInConversation}, nil),
	)

	response, err := suite.contactService.OpenConversation(suite.ctx, caller, &service.OpenConversationRequest{
		CandidateID: suite.candidateID,
		Message:     "Would you like to chat about our internship?",
	})

	suite.Require().NoError(err)
	suite.Equal(models.RelationshipStatusInConversation, response.Relationship.Status)
}

// TestLedgerFailureRollsBackRecord tests that the record and the ledger commit together
func (suite *ContactServiceTestSuite) TestLedgerFailureRollsBackRecord() {
	caller := suite.primaryCaller()
	ledgerErr := errors.New("insert or update on table \"talent_relationships\" violates foreign key constraint")

	suite.expectAccount(caller, hierarchy.Primary{ID: suite.primaryID})
	suite.expectCandidate()
	suite.sqlMock.ExpectBegin()
	suite.mockContacts.EXPECT().WithTx(gomock.Any()).Return(suite.mockContacts)
	suite.mockContacts.EXPECT().CreateConversation(gomock.Any()).Return(nil)
	suite.mockRelationships.EXPECT().SynchronizeTx(suite.ctx, gomock.Any(), gomock.Any()).Return(nil, ledgerErr)
	suite.sqlMock.ExpectRollback()

	_, err := suite.contactService.OpenConversation(suite.ctx, caller, &service.OpenConversationRequest{
		CandidateID: suite.candidateID,
		Message:     "Hello",
	})
	suite.ErrorIs(err, ledgerErr)
}

// TestPostJobBySecondary tests that jobs are owned by the effective identity
func (suite *ContactServiceTestSuite) TestPostJobBySecondary() {
	caller := suite.secondaryCaller()
	suite.expectAccount(caller, hierarchy.Secondary{ID: suite.secondaryID, PrimaryID: suite.primaryID})
	suite.mockContacts.EXPECT().CreateJob(gomock.Any()).DoAndReturn(func(j *models.Job) error {
		withID(&j.ID)
		return nil
	})

	response, err := suite.contactService.PostJob(suite.ctx, caller, &service.PostJobRequest{Title: "Data Intern", Location: "Shanghai"})

	suite.Require().NoError(err)
	suite.Equal(suite.primaryID, response.OrganizationID)
	suite.Equal(suite.secondaryID, response.PostedByAccountID)
}

// TestCreateResume tests that students store their own resumes
func (suite *ContactServiceTestSuite) TestCreateResume() {
	caller := &auth.Caller{AccountID: suite.candidateID, Kind: models.AccountKindStudent}
	suite.expectCandidate()
	suite.mockContacts.EXPECT().CreateResume(gomock.Any()).DoAndReturn(func(r *models.Resume) error {
		suite.Equal(suite.candidateID, r.StudentID)
		withID(&r.ID)
		return nil
	})

	response, err := suite.contactService.CreateResume(suite.ctx, caller, &service.CreateResumeRequest{Title: "CV 2026"})

	suite.Require().NoError(err)
	suite.Equal("CV 2026", response.Title)

	_, err = suite.contactService.CreateResume(suite.ctx, suite.primaryCaller(), &service.CreateResumeRequest{Title: "CV"})
	suite.ErrorIs(err, apperrors.ErrNotStudentAccount)
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
