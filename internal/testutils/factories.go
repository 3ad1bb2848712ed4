package testutils

import (
	"fmt"
	"time"

	"campus-placement-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// EnterpriseFactory provides methods to create test Enterprise data
type EnterpriseFactory struct{}

// Create creates a primary test Enterprise
func (f *EnterpriseFactory) Create() *models.Enterprise {
	base := newBase()
	return &models.Enterprise{
		BaseModel:        base,
		AccountHierarchy: models.AccountHierarchy{IsPrimary: true},
		Name:             "Acme Recruiting " + base.ID.String()[:6],
		ContactName:      "Jane Roe",
		ContactEmail:     "hr-" + base.ID.String()[:8] + "@acme.test",
		Industry:         "Software",
	}
}

// SecondaryOf creates a test Enterprise attached to the given primary
func (f *EnterpriseFactory) SecondaryOf(primaryID uuid.UUID) *models.Enterprise {
	enterprise := f.Create()
	enterprise.IsPrimary = false
	enterprise.PrimaryAccountID = &primaryID
	return enterprise
}

// TeacherFactory provides methods to create test Teacher data
type TeacherFactory struct{}

// Create creates a primary test Teacher
func (f *TeacherFactory) Create() *models.Teacher {
	base := newBase()
	return &models.Teacher{
		BaseModel:        base,
		AccountHierarchy: models.AccountHierarchy{IsPrimary: true},
		Name:             "Dr. Chen",
		Email:            "teacher-" + base.ID.String()[:8] + "@uni.test",
		School:           "School of Computing",
		Department:       "Software Engineering",
	}
}

// SecondaryOf creates a test Teacher attached to the given primary
func (f *TeacherFactory) SecondaryOf(primaryID uuid.UUID) *models.Teacher {
	teacher := f.Create()
	teacher.IsPrimary = false
	teacher.PrimaryAccountID = &primaryID
	return teacher
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// Create creates a test Student with a unique email
func (f *StudentFactory) Create() *models.Student {
	base := newBase()
	return &models.Student{
		BaseModel:      base,
		Name:           "Li Wei",
		Email:          "student-" + base.ID.String()[:8] + "@uni.test",
		StudentNumber:  "S" + base.ID.String()[:7],
		Major:          "Computer Science",
		GraduationYear: 2027,
	}
}

// ContactFactory provides methods to create the records contact producers commit
type ContactFactory struct{}

// Job creates a test Job owned by the given organization
func (f *ContactFactory) Job(orgID uuid.UUID, kind models.OrganizationKind) *models.Job {
	return &models.Job{
		BaseModel:         newBase(),
		OrganizationID:    orgID,
		OrganizationKind:  kind,
		PostedByAccountID: orgID,
		Title:             "Backend Engineer Intern",
		Description:       "Work on the placement platform",
		Location:          "Shanghai",
	}
}

// Resume creates a test Resume for the given student
func (f *ContactFactory) Resume(studentID uuid.UUID) *models.Resume {
	return &models.Resume{
		BaseModel: newBase(),
		StudentID: studentID,
		Title:     "CV",
		Summary:   "Go, SQL, distributed systems",
	}
}

// Application creates a test JobApplication for the given job, student and resume
func (f *ContactFactory) Application(job *models.Job, studentID, resumeID uuid.UUID) *models.JobApplication {
	return &models.JobApplication{
		BaseModel:        newBase(),
		JobID:            job.ID,
		StudentID:        studentID,
		ResumeID:         resumeID,
		OrganizationID:   job.OrganizationID,
		OrganizationKind: job.OrganizationKind,
		Status:           models.ApplicationStatusSubmitted,
	}
}

// Interview creates a test Interview
func (f *ContactFactory) Interview(orgID, studentID uuid.UUID) *models.Interview {
	return &models.Interview{
		BaseModel:          newBase(),
		OrganizationID:     orgID,
		OrganizationKind:   models.OrganizationKindEnterprise,
		StudentID:          studentID,
		ScheduledAt:        time.Now().Add(48 * time.Hour),
		Location:           "Room 301",
		CreatedByAccountID: orgID,
	}
}

// Offer creates a test Offer
func (f *ContactFactory) Offer(orgID, studentID uuid.UUID) *models.Offer {
	return &models.Offer{
		BaseModel:          newBase(),
		OrganizationID:     orgID,
		OrganizationKind:   models.OrganizationKindEnterprise,
		StudentID:          studentID,
		Position:           "Software Engineer",
		Salary:             decimal.RequireFromString("18000.00"),
		CreatedByAccountID: orgID,
	}
}

// Bookmark creates a test Bookmark
func (f *ContactFactory) Bookmark(orgID, studentID uuid.UUID) *models.Bookmark {
	return &models.Bookmark{
		BaseModel:        newBase(),
		OrganizationID:   orgID,
		OrganizationKind: models.OrganizationKindEnterprise,
		StudentID:        studentID,
		Note:             "strong Go background",
	}
}

// Conversation creates a test Conversation
func (f *ContactFactory) Conversation(orgID, studentID uuid.UUID) *models.Conversation {
	return &models.Conversation{
		BaseModel:          newBase(),
		OrganizationID:     orgID,
		OrganizationKind:   models.OrganizationKindEnterprise,
		StudentID:          studentID,
		OpeningMessage:     "Hi, are you open to an interview?",
		CreatedByAccountID: orgID,
	}
}

// RelationshipFactory provides methods to create test synchronization inputs
type RelationshipFactory struct{}

// Upsert creates a monotonic synchronization of the given kind at the given time
func (f *RelationshipFactory) Upsert(orgID, candidateID uuid.UUID, kind models.ContactKind, at time.Time) *models.RelationshipUpsert {
	return &models.RelationshipUpsert{
		OrganizationID:   orgID,
		OrganizationKind: models.OrganizationKindEnterprise,
		CandidateID:      candidateID,
		Kind:             kind,
		Monotonic:        true,
		At:               at,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Enterprise   *EnterpriseFactory
	Teacher      *TeacherFactory
	Student      *StudentFactory
	Contact      *ContactFactory
	Relationship *RelationshipFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Enterprise:   &EnterpriseFactory{},
		Teacher:      &TeacherFactory{},
		Student:      &StudentFactory{},
		Contact:      &ContactFactory{},
		Relationship: &RelationshipFactory{},
	}
}

// EnterpriseHierarchy builds one primary enterprise with n secondaries
func (fs *FactorySet) EnterpriseHierarchy(n int) (*models.Enterprise, []*models.Enterprise) {
	primary := fs.Enterprise.Create()
	secondaries := make([]*models.Enterprise, n)
	for i := range secondaries {
		secondaries[i] = fs.Enterprise.SecondaryOf(primary.ID)
		secondaries[i].Name = fmt.Sprintf("%s branch %d", primary.Name, i+1)
	}
	return primary, secondaries
}
