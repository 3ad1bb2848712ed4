package repository

import (
	"campus-placement-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AccountRepositoryInterface defines the interface for organization account repository operations
type AccountRepositoryInterface interface {
	CreateEnterprise(enterprise *models.Enterprise) error
	CreateTeacher(teacher *models.Teacher) error
	GetEnterpriseByID(id uuid.UUID) (*models.Enterprise, error)
	GetTeacherByID(id uuid.UUID) (*models.Teacher, error)
	GetAccount(kind models.OrganizationKind, id uuid.UUID) (*models.OrganizationAccount, error)
	GetSecondaryIDs(kind models.OrganizationKind, primaryID uuid.UUID) ([]uuid.UUID, error)
}

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
}

// RelationshipFilter narrows talent relationship listings
type RelationshipFilter struct {
	Status           models.RelationshipStatus
	OrganizationKind models.OrganizationKind
}

// RelationshipRepositoryInterface defines the interface for talent relationship repository operations
type RelationshipRepositoryInterface interface {
	WithTx(tx *gorm.DB) RelationshipRepositoryInterface
	Upsert(upsert *models.RelationshipUpsert) (*models.TalentRelationship, error)
	GetByPair(organizationID, candidateID uuid.UUID) (*models.TalentRelationship, error)
	GetByCandidate(organizationIDs []uuid.UUID, candidateID uuid.UUID) ([]models.TalentRelationship, error)
	ListByOrganizations(organizationIDs []uuid.UUID, filter RelationshipFilter, limit, offset int) ([]models.TalentRelationship, int64, error)
}

// ContactRepositoryInterface defines the interface for the records contact producers commit
type ContactRepositoryInterface interface {
	WithTx(tx *gorm.DB) ContactRepositoryInterface
	CreateJob(job *models.Job) error
	GetJobByID(id uuid.UUID) (*models.Job, error)
	CreateResume(resume *models.Resume) error
	GetResumeByID(id uuid.UUID) (*models.Resume, error)
	CreateApplication(application *models.JobApplication) error
	GetApplicationByID(id uuid.UUID) (*models.JobApplication, error)
	UpdateApplicationStatus(id uuid.UUID, status models.ApplicationStatus) error
	CreateInterview(interview *models.Interview) error
	GetInterviewByID(id uuid.UUID) (*models.Interview, error)
	CreateOffer(offer *models.Offer) error
	UpsertBookmark(bookmark *models.Bookmark) error
	CreateConversation(conversation *models.Conversation) error
	ListContactEvents() ([]models.ContactEvent, error)
}
