//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContactRepositoryTestSuite tests the ContactRepository
type ContactRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContactRepository
	factories     *testutils.FactorySet
	enterprise    *models.Enterprise
	student       *models.Student
}

// SetupSuite runs before all tests in the suite
func (suite *ContactRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewContactRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContactRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContactRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.enterprise = suite.factories.Enterprise.Create()
	suite.Require().NoError(NewAccountRepository(suite.baseTestSuite.DB).CreateEnterprise(suite.enterprise))
	suite.student = suite.factories.Student.Create()
	suite.Require().NoError(NewStudentRepository(suite.baseTestSuite.DB).Create(suite.student))
}

// TearDownTest runs after each test
func (suite *ContactRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ContactRepositoryTestSuite) createApplication() *models.JobApplication {
	job := suite.factories.Contact.Job(suite.enterprise.ID, models.OrganizationKindEnterprise)
	suite.Require().NoError(suite.repo.CreateJob(job))
	resume := suite.factories.Contact.Resume(suite.student.ID)
	suite.Require().NoError(suite.repo.CreateResume(resume))
	application := suite.factories.Contact.Application(job, suite.student.ID, resume.ID)
	suite.Require().NoError(suite.repo.CreateApplication(application))
	return application
}

// TestDuplicateApplicationIsRejected tests the one-application-per-job constraint
func (suite *ContactRepositoryTestSuite) TestDuplicateApplicationIsRejected() {
	application := suite.createApplication()

	duplicate := suite.factories.Contact.Application(&models.Job{
		BaseModel:        models.BaseModel{ID: application.JobID},
		OrganizationID:   application.OrganizationID,
		OrganizationKind: application.OrganizationKind,
	}, suite.student.ID, application.ResumeID)
	err := suite.repo.CreateApplication(duplicate)

	suite.ErrorIs(err, apperrors.ErrApplicationExists)
}

// TestUpdateApplicationStatus tests moving an application forward
func (suite *ContactRepositoryTestSuite) TestUpdateApplicationStatus() {
	application := suite.createApplication()

	suite.Require().NoError(suite.repo.UpdateApplicationStatus(application.ID, models.ApplicationStatusInterviewed))
	stored, err := suite.repo.GetApplicationByID(application.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ApplicationStatusInterviewed, stored.Status)

	suite.ErrorIs(suite.repo.UpdateApplicationStatus(uuid.New(), models.ApplicationStatusOffered), gorm.ErrRecordNotFound)
}

// TestUpsertBookmarkKeepsOneRow tests that bookmarking twice refreshes the note
func (suite *ContactRepositoryTestSuite) TestUpsertBookmarkKeepsOneRow() {
	first := suite.factories.Contact.Bookmark(suite.enterprise.ID, suite.student.ID)
	suite.Require().NoError(suite.repo.UpsertBookmark(first))

	second := suite.factories.Contact.Bookmark(suite.enterprise.ID, suite.student.ID)
	second.Note = "follow up after exams"
	suite.Require().NoError(suite.repo.UpsertBookmark(second))

	suite.Equal(first.ID, second.ID)
	suite.Equal("follow up after exams", second.Note)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Bookmark{}).Count(&count)
	suite.Equal(int64(1), count)
}

// TestListContactEvents tests that every record kind is replayed in time order
func (suite *ContactRepositoryTestSuite) TestListContactEvents() {
	base := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)

	application := suite.createApplication()
	suite.baseTestSuite.DB.Model(application).Update("created_at", base)

	interview := suite.factories.Contact.Interview(suite.enterprise.ID, suite.student.ID)
	interview.ApplicationID = &application.ID
	interview.CreatedAt = base.Add(2 * time.Minute)
	suite.Require().NoError(suite.repo.CreateInterview(interview))

	offer := suite.factories.Contact.Offer(suite.enterprise.ID, suite.student.ID)
	offer.InterviewID = &interview.ID
	offer.CreatedAt = base.Add(3 * time.Minute)
	suite.Require().NoError(suite.repo.CreateOffer(offer))

	conversation := suite.factories.Contact.Conversation(suite.enterprise.ID, suite.student.ID)
	conversation.CreatedAt = base.Add(time.Minute)
	suite.Require().NoError(suite.repo.CreateConversation(conversation))

	events, err := suite.repo.ListContactEvents()
	suite.Require().NoError(err)
	suite.Require().Len(events, 4)

	kinds := make([]models.ContactKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
		suite.Equal(suite.enterprise.ID, e.OrganizationID)
		suite.Equal(suite.student.ID, e.CandidateID)
	}
	suite.Equal([]models.ContactKind{
		models.ContactKindApplication,
		models.ContactKindConversation,
		models.ContactKindInterview,
		models.ContactKindOffer,
	}, kinds)

	suite.Equal(application.ID, *events[0].Refs.ApplicationID)
	suite.Equal(application.ResumeID, *events[0].Refs.ResumeID)
	suite.Equal(interview.ID, *events[3].Refs.InterviewID)
	suite.Equal(offer.ID, *events[3].Refs.OfferID)
}

// TestWithTxRollsBack tests that a rolled back transaction leaves no record
func (suite *ContactRepositoryTestSuite) TestWithTxRollsBack() {
	conversation := suite.factories.Contact.Conversation(suite.enterprise.ID, suite.student.ID)

	err := suite.baseTestSuite.DB.Transaction(func(tx *gorm.DB) error {
		if err := suite.repo.WithTx(tx).CreateConversation(conversation); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	suite.ErrorIs(err, gorm.ErrInvalidData)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Conversation{}).Count(&count)
	suite.Zero(count)
}

// TestContactRepositoryTestSuite runs the test suite
func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}
