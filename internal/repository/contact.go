package repository

import (
	"sort"

	"campus-placement-backend/internal/database"
	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContactRepository handles database operations for the records behind contact events
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ContactRepository) WithTx(tx *gorm.DB) ContactRepositoryInterface {
	return &ContactRepository{db: tx}
}

// CreateJob creates a new job posting
func (r *ContactRepository) CreateJob(job *models.Job) error {
	return r.db.Create(job).Error
}

// GetJobByID retrieves a job by ID
func (r *ContactRepository) GetJobByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateResume creates a new resume
func (r *ContactRepository) CreateResume(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

// GetResumeByID retrieves a resume by ID
func (r *ContactRepository) GetResumeByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// CreateApplication creates a new job application
func (r *ContactRepository) CreateApplication(application *models.JobApplication) error {
	if err := r.db.Create(application).Error; err != nil {
		if database.IsUniqueViolation(err, "idx_job_application_pair") {
			return apperrors.ErrApplicationExists
		}
		return database.ClassifyError("job application", err)
	}
	return nil
}

// GetApplicationByID retrieves a job application by ID
func (r *ContactRepository) GetApplicationByID(id uuid.UUID) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// UpdateApplicationStatus moves an application to the given producer-side status
func (r *ContactRepository) UpdateApplicationStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateInterview creates a new interview
func (r *ContactRepository) CreateInterview(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

// GetInterviewByID retrieves an interview by ID
func (r *ContactRepository) GetInterviewByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.First(&interview, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// CreateOffer creates a new offer
func (r *ContactRepository) CreateOffer(offer *models.Offer) error {
	return r.db.Create(offer).Error
}

// UpsertBookmark creates the bookmark for the pair or refreshes its note
func (r *ContactRepository) UpsertBookmark(bookmark *models.Bookmark) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
	}).Create(bookmark).Error
	if err != nil {
		return database.ClassifyError("bookmark", err)
	}
	return r.db.Where("organization_id = ? AND student_id = ?", bookmark.OrganizationID, bookmark.StudentID).
		First(bookmark).Error
}

// CreateConversation creates a new conversation
func (r *ContactRepository) CreateConversation(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

// ListContactEvents loads every stored contact record as a contact event, oldest first
func (r *ContactRepository) ListContactEvents() ([]models.ContactEvent, error) {
	var applications []models.JobApplication
	if err := r.db.Order("created_at").Find(&applications).Error; err != nil {
		return nil, err
	}
	var interviews []models.Interview
	if err := r.db.Order("created_at").Find(&interviews).Error; err != nil {
		return nil, err
	}
	var offers []models.Offer
	if err := r.db.Order("created_at").Find(&offers).Error; err != nil {
		return nil, err
	}
	var bookmarks []models.Bookmark
	if err := r.db.Order("updated_at").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	var conversations []models.Conversation
	if err := r.db.Order("created_at").Find(&conversations).Error; err != nil {
		return nil, err
	}

	events := make([]models.ContactEvent, 0,
		len(applications)+len(interviews)+len(offers)+len(bookmarks)+len(conversations))
	for i := range applications {
		events = append(events, applications[i].ContactEvent())
	}
	for i := range interviews {
		events = append(events, interviews[i].ContactEvent())
	}
	for i := range offers {
		events = append(events, offers[i].ContactEvent())
	}
	for i := range bookmarks {
		events = append(events, bookmarks[i].ContactEvent())
	}
	for i := range conversations {
		events = append(events, conversations[i].ContactEvent())
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})
	return events, nil
}
