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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContactService commits contact records and synchronizes the talent relationship ledger with them.
// Every operation that touches a candidate commits its record and the ledger update in one transaction.
type ContactService struct {
	db            *gorm.DB
	contacts      repository.ContactRepositoryInterface
	students      repository.StudentRepositoryInterface
	accounts      AccountServiceInterface
	relationships RelationshipServiceInterface
	validator     *validator.Validate
	retry         RetryPolicy
}

// NewContactService creates a new contact service
func NewContactService(
	db *gorm.DB,
	contacts repository.ContactRepositoryInterface,
	students repository.StudentRepositoryInterface,
	accounts AccountServiceInterface,
	relationships RelationshipServiceInterface,
	validator *validator.Validate,
	retry RetryPolicy,
) *ContactService {
	return &ContactService{
		db:            db,
		contacts:      contacts,
		students:      students,
		accounts:      accounts,
		relationships: relationships,
		validator:     validator,
		retry:         retry,
	}
}

// PostJobRequest represents the request to post a job
type PostJobRequest struct {
	Title       string `json:"title" validate:"required,max=200" example:"Backend Intern"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty" validate:"max=200"`
}

// JobResponse represents a posted job
type JobResponse struct {
	ID                uuid.UUID               `json:"id"`
	OrganizationID    uuid.UUID               `json:"organization_id"`
	OrganizationKind  models.OrganizationKind `json:"organization_kind"`
	PostedByAccountID uuid.UUID               `json:"posted_by_account_id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description,omitempty"`
	Location          string                  `json:"location,omitempty"`
	CreatedAt         string                  `json:"created_at"`
}

// CreateResumeRequest represents the request to create a resume
type CreateResumeRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Summary string `json:"summary,omitempty"`
}

// ResumeResponse represents a stored resume
type ResumeResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// ApplyRequest represents a student's application to a job
type ApplyRequest struct {
	JobID    uuid.UUID `json:"job_id" validate:"required"`
	ResumeID uuid.UUID `json:"resume_id" validate:"required"`
}

// ScheduleInterviewRequest represents the request to schedule an interview
type ScheduleInterviewRequest struct {
	CandidateID   uuid.UUID  `json:"candidate_id" validate:"required"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	ScheduledAt   time.Time  `json:"scheduled_at" validate:"required"`
	Location      string     `json:"location,omitempty" validate:"max=200"`
}

// IssueOfferRequest represents the request to extend an offer
type IssueOfferRequest struct {
	CandidateID   uuid.UUID       `json:"candidate_id" validate:"required"`
	ApplicationID *uuid.UUID      `json:"application_id,omitempty"`
	InterviewID   *uuid.UUID      `json:"interview_id,omitempty"`
	Position      string          `json:"position" validate:"required,max=200"`
	Salary        decimal.Decimal `json:"salary" swaggertype:"string" example:"5200.00"`
}

// BookmarkRequest represents the request to bookmark a candidate
type BookmarkRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	Note        string    `json:"note,omitempty" validate:"max=500"`
}

// OpenConversationRequest represents the request to open a conversation with a candidate
type OpenConversationRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	Message     string    `json:"message" validate:"required,max=2000"`
}

// ContactResponse reports the committed contact record and the relationship it produced
type ContactResponse struct {
	RecordID       uuid.UUID             `json:"record_id"`
	Kind           models.ContactKind    `json:"kind"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Relationship   *RelationshipResponse `json:"relationship"`
}

// organization resolves the caller's account and the identity new data is written under
func (s *ContactService) organization(ctx context.Context, caller *auth.Caller) (hierarchy.Account, models.OrganizationKind, uuid.UUID, error) {
	account, kind, err := s.accounts.LoadCaller(ctx, caller)
	if err != nil {
		return nil, "", uuid.Nil, err
	}
	return account, kind, hierarchy.EffectiveIdentity(account), nil
}

func (s *ContactService) requireCandidate(id uuid.UUID) error {
	if _, err := s.students.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("failed to load candidate: %w", err)
	}
	return nil
}

// commit runs fn and the synchronization it returns in one retried transaction
func (s *ContactService) commit(ctx context.Context, operation string, fn func(contacts repository.ContactRepositoryInterface) (*SyncRequest, uuid.UUID, error)) (*ContactResponse, error) {
	var response *ContactResponse
	err := s.retry.inTransaction(ctx, s.db, operation, func(tx *gorm.DB) error {
		req, recordID, err := fn(s.contacts.WithTx(tx))
		if err != nil {
			return err
		}
		relationship, err := s.relationships.SynchronizeTx(ctx, tx, req)
		if err != nil {
			return err
		}
		response = &ContactResponse{
			RecordID:       recordID,
			Kind:           req.Kind,
			OrganizationID: req.OrganizationID,
			Relationship:   toRelationshipResponse(relationship),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"operation":       operation,
		"record_id":       response.RecordID,
		"organization_id": response.OrganizationID,
	}).Info("contact recorded")
	return response, nil
}

// PostJob posts a job under the caller's effective organization identity
func (s *ContactService) PostJob(ctx context.Context, caller *auth.Caller, req *PostJobRequest) (*JobResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	_, kind, owner, err := s.organization(ctx, caller)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		OrganizationID:    owner,
		OrganizationKind:  kind,
		PostedByAccountID: caller.AccountID,
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
	}
	if err := s.contacts.CreateJob(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return &JobResponse{
		ID:                job.ID,
		OrganizationID:    job.OrganizationID,
		OrganizationKind:  job.OrganizationKind,
		PostedByAccountID: job.PostedByAccountID,
		Title:             job.Title,
		Description:       job.Description,
		Location:          job.Location,
		CreatedAt:         job.CreatedAt.Format(time.RFC3339),
	}, nil
}

// CreateResume stores a resume for the calling student
func (s *ContactService) CreateResume(ctx context.Context, caller *auth.Caller, req *CreateResumeRequest) (*ResumeResponse, error) {
	if !caller.IsStudent() {
		return nil, apperrors.ErrNotStudentAccount
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.requireCandidate(caller.AccountID); err != nil {
		return nil, err
	}

	resume := &models.Resume{
		StudentID: caller.AccountID,
		Title:     req.Title,
		Summary:   req.Summary,
	}
	if err := s.contacts.CreateResume(resume); err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	return &ResumeResponse{
		ID:        resume.ID,
		StudentID: resume.StudentID,
		Title:     resume.Title,
		Summary:   resume.Summary,
		CreatedAt: resume.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Apply records the calling student's application to a job. The relationship belongs to the job's owner.
func (s *ContactService) Apply(ctx context.Context, caller *auth.Caller, req *ApplyRequest) (*ContactResponse, error) {
	if !caller.IsStudent() {
		return nil, apperrors.ErrNotStudentAccount
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.requireCandidate(caller.AccountID); err != nil {
		return nil, err
	}

	return s.commit(ctx, "apply", func(contacts repository.ContactRepositoryInterface) (*SyncRequest, uuid.UUID, error) {
		job, err := contacts.GetJobByID(req.JobID)
		if err != nil {
			return nil, uuid.Nil, notFoundOr(err, apperrors.ErrJobNotFound, "job")
		}
		resume, err := contacts.GetResumeByID(req.ResumeID)
		if err != nil {
			return nil, uuid.Nil, notFoundOr(err, apperrors.ErrResumeNotFound, "resume")
		}
		if resume.StudentID != caller.AccountID {
			return nil, uuid.Nil, apperrors.ErrResumeNotOwned
		}

		application := &models.JobApplication{
			JobID:            job.ID,
			StudentID:        caller.AccountID,
			ResumeID:         resume.ID,
			OrganizationID:   job.OrganizationID,
			OrganizationKind: job.OrganizationKind,
			Status:           models.ApplicationStatusSubmitted,
		}
		if err := contacts.CreateApplication(application); err != nil {
			return nil, uuid.Nil, err
		}

		resumeID, applicationID := resume.ID, application.ID
		return &SyncRequest{
			OrganizationID:   job.OrganizationID,
			OrganizationKind: job.OrganizationKind,
			CandidateID:      caller.AccountID,
			Kind:             models.ContactKindApplication,
			Refs:             models.ContactRefs{ResumeID: &resumeID, ApplicationID: &applicationID},
			At:               application.CreatedAt,
		}, application.ID, nil
	})
}

// managedApplication loads an application the account may act on for the candidate
func managedApplication(contacts repository.ContactRepositoryInterface, account hierarchy.Account, id, candidateID uuid.UUID) (*models.JobApplication, error) {
	application, err := contacts.GetApplicationByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrApplicationNotFound, "job application")
	}
	if application.StudentID != candidateID {
		return nil, apperrors.NewValidationError("application_id", "application belongs to a different candidate")
	}
	if !hierarchy.CanManage(account, application.OrganizationID) {
		return nil, apperrors.ErrCannotManageTarget
	}
	return application, nil
}

// ScheduleInterview records an interview with a candidate, optionally for one of the organization's applications
func (s *ContactService) ScheduleInterview(ctx context.Context, caller *auth.Caller, req *ScheduleInterviewRequest) (*ContactResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	account, kind, owner, err := s.organization(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := s.requireCandidate(req.CandidateID); err != nil {
		return nil, err
	}

	return s.commit(ctx, "schedule_interview", func(contacts repository.ContactRepositoryInterface) (*SyncRequest, uuid.UUID, error) {
		if req.ApplicationID != nil {
			application, err := managedApplication(contacts, account, *req.ApplicationID, req.CandidateID)
			if err != nil {
				return nil, uuid.Nil, err
			}
			if err := contacts.UpdateApplicationStatus(application.ID, models.ApplicationStatusInterviewed); err != nil {
				return nil, uuid.Nil, notFoundOr(err, apperrors.ErrApplicationNotFound, "job application")
			}
		}

		interview := &models.Interview{
			OrganizationID:     owner,
			OrganizationKind:   kind,
			StudentID:          req.CandidateID,
			ApplicationID:      req.ApplicationID,
			ScheduledAt:        req.ScheduledAt.UTC(),
			Location:           req.Location,
			CreatedByAccountID: caller.AccountID,
		}
		if err := contacts.CreateInterview(interview); err != nil {
			return nil, uuid.Nil, err
		}

		interviewID := interview.ID
		return &SyncRequest{
			OrganizationID:   owner,
			OrganizationKind: kind,
			CandidateID:      req.CandidateID,
			Kind:             models.ContactKindInterview,
			Refs:             models.ContactRefs{ApplicationID: req.ApplicationID, InterviewID: &interviewID},
			At:               interview.CreatedAt,
		}, interview.ID, nil
	})
}

// IssueOffer records an offer to a candidate. A referenced interview or application must be manageable by the caller.
func (s *ContactService) IssueOffer(ctx context.Context, caller *auth.Caller, req *IssueOfferRequest) (*ContactResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.Salary.IsNegative() {
		return nil, apperrors.NewValidationError("salary", "must not be negative")
	}
	account, kind, owner, err := s.organization(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := s.requireCandidate(req.CandidateID); err != nil {
		return nil, err
	}

	return s.commit(ctx, "issue_offer", func(contacts repository.ContactRepositoryInterface) (*SyncRequest, uuid.UUID, error) {
		applicationID := req.ApplicationID
		if req.InterviewID != nil {
			interview, err := contacts.GetInterviewByID(*req.InterviewID)
			if err != nil {
				return nil, uuid.Nil, notFoundOr(err, apperrors.ErrInterviewNotFound, "interview")
			}
			if interview.StudentID != req.CandidateID {
				return nil, uuid.Nil, apperrors.NewValidationError("interview_id", "interview belongs to a different candidate")
			}
			if !hierarchy.CanManage(account, interview.OrganizationID) {
				return nil, uuid.Nil, apperrors.ErrCannotManageTarget
			}
			if applicationID == nil {
				applicationID = interview.ApplicationID
			}
		}
		if applicationID != nil {
			application, err := managedApplication(contacts, account, *applicationID, req.CandidateID)
			if err != nil {
				return nil, uuid.Nil, err
			}
			if err := contacts.UpdateApplicationStatus(application.ID, models.ApplicationStatusOffered); err != nil {
				return nil, uuid.Nil, notFoundOr(err, apperrors.ErrApplicationNotFound, "job application")
			}
		}

		offer := &models.Offer{
			OrganizationID:     owner,
			OrganizationKind:   kind,
			StudentID:          req.CandidateID,
			ApplicationID:      applicationID,
			InterviewID:        req.InterviewID,
			Position:           req.Position,
			Salary:             req.Salary,
			CreatedByAccountID: caller.AccountID,
		}
		if err := contacts.CreateOffer(offer); err != nil {
			return nil, uuid.Nil, err
		}

		offerID := offer.ID
		return &SyncRequest{
			OrganizationID:   owner,
			OrganizationKind: kind,
			CandidateID:      req.CandidateID,
			Kind:             models.ContactKindOffer,
			Refs:             models.ContactRefs{ApplicationID: applicationID, InterviewID: req.InterviewID, OfferID: &offerID},
			At:               offer.CreatedAt,
		}, offer.ID, nil
	})
}

// Bookmark marks a candidate for the caller's organization, refreshing the note of an existing bookmark
func (s *ContactService) Bookmark(ctx context.Context, caller *auth.Caller, req *BookmarkRequest) (*ContactResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	_, kind, owner, err := s.organization(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := s.requireCandidate(req.CandidateID); err != nil {
		return nil, err
	}

	return s.commit(ctx, "bookmark", func(contacts repository.ContactRepositoryInterface) (*SyncRequest, uuid.UUID, error) {
		bookmark := &models.Bookmark{
			OrganizationID:   owner,
			OrganizationKind: kind,
			StudentID:        req.CandidateID,
			Note:             req.Note,
		}
		if err := contacts.UpsertBookmark(bookmark); err != nil {
			return nil, uuid.Nil, err
		}

		return &SyncRequest{
			OrganizationID:   owner,
			OrganizationKind: kind,
			CandidateID:      req.CandidateID,
			Kind:             models.ContactKindBookmark,
			At:               bookmark.UpdatedAt,
		}, bookmark.ID, nil
	})
}

// OpenConversation starts a conversation between the caller's organization and a candidate
func (s *ContactService) OpenConversation(ctx context.Context, caller *auth.Caller, req *OpenConversationRequest) (*ContactResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	_, kind, owner, err := s.organization(ctx, caller)
	if err != nil {
		return nil, err
	}
	if err := s.requireCandidate(req.CandidateID); err != nil {
		return nil, err
	}

	return s.commit(ctx, "open_conversation", func(contacts repository.ContactRepositoryInterface) (*SyncRequest, uuid.UUID, error) {
		conversation := &models.Conversation{
			OrganizationID:     owner,
			OrganizationKind:   kind,
			StudentID:          req.CandidateID,
			OpeningMessage:     req.Message,
			CreatedByAccountID: caller.AccountID,
		}
		if err := contacts.CreateConversation(conversation); err != nil {
			return nil, uuid.Nil, err
		}

		return &SyncRequest{
			OrganizationID:   owner,
			OrganizationKind: kind,
			CandidateID:      req.CandidateID,
			Kind:             models.ContactKindConversation,
			At:               conversation.CreatedAt,
		}, conversation.ID, nil
	})
}

// notFoundOr maps a missing row to sentinel and wraps anything else
func notFoundOr(err error, sentinel error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to load %s: %w", entity, err)
}
