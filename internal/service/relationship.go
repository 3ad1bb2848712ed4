package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"
	"campus-placement-backend/internal/logger"
	"campus-placement-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationshipService keeps the talent relationship ledger in step with contact events
type RelationshipService struct {
	db        *gorm.DB
	repo      repository.RelationshipRepositoryInterface
	accounts  AccountServiceInterface
	monotonic bool
	retry     RetryPolicy
	now       func() time.Time
}

// NewRelationshipService creates a new relationship service. With monotonic set, a
// synchronization never moves a relationship to a shallower status.
func NewRelationshipService(db *gorm.DB, repo repository.RelationshipRepositoryInterface, accounts AccountServiceInterface, monotonic bool, retry RetryPolicy) *RelationshipService {
	return &RelationshipService{
		db:        db,
		repo:      repo,
		accounts:  accounts,
		monotonic: monotonic,
		retry:     retry,
		now:       time.Now,
	}
}

// SyncRequest is one contact event to fold into the ledger
type SyncRequest struct {
	OrganizationID   uuid.UUID
	OrganizationKind models.OrganizationKind
	CandidateID      uuid.UUID
	Kind             models.ContactKind
	Refs             models.ContactRefs
	// At defaults to the current time when zero.
	At time.Time
}

// PoolFilter narrows a talent pool listing
type PoolFilter struct {
	Status           string `form:"status"`
	OrganizationKind string `form:"organization_kind"`
}

// CandidateSummary is the candidate part of a relationship response
type CandidateSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Major          string    `json:"major,omitempty"`
	GraduationYear int       `json:"graduation_year,omitempty"`
}

// RelationshipResponse represents a talent relationship in API responses
type RelationshipResponse struct {
	ID               uuid.UUID                 `json:"id"`
	OrganizationID   uuid.UUID                 `json:"organization_id"`
	OrganizationKind models.OrganizationKind   `json:"organization_kind"`
	CandidateID      uuid.UUID                 `json:"candidate_id"`
	Candidate        *CandidateSummary         `json:"candidate,omitempty"`
	Status           models.RelationshipStatus `json:"status" example:"interviewed"`
	LastContactKind  models.ContactKind        `json:"last_contact_kind" example:"interview"`
	ResumeID         *uuid.UUID                `json:"resume_id,omitempty"`
	ApplicationID    *uuid.UUID                `json:"application_id,omitempty"`
	InterviewID      *uuid.UUID                `json:"interview_id,omitempty"`
	OfferID          *uuid.UUID                `json:"offer_id,omitempty"`
	FirstContactTime time.Time                 `json:"first_contact_time"`
	LastContactTime  time.Time                 `json:"last_contact_time"`
}

// PoolResponse represents a paginated talent pool
type PoolResponse struct {
	Relationships []RelationshipResponse `json:"relationships"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// ImpliedStatus is the status a single synchronization implies on its own. An offer reference
// always implies hired and an interview reference interviewed; otherwise conversations and
// bookmarks imply their own stage. An empty status means the call implies none.
func ImpliedStatus(kind models.ContactKind, refs models.ContactRefs) (models.RelationshipStatus, error) {
	if !kind.IsValid() {
		return "", apperrors.ErrInvalidContactKind
	}

	switch {
	case refs.OfferID != nil:
		return models.RelationshipStatusHired, nil
	case refs.InterviewID != nil:
		return models.RelationshipStatusInterviewed, nil
	}

	switch kind {
	case models.ContactKindConversation:
		return models.RelationshipStatusInConversation, nil
	case models.ContactKindBookmark:
		return models.RelationshipStatusBookmarked, nil
	case models.ContactKindApplication, models.ContactKindInterview, models.ContactKindOffer:
		return "", nil
	}
	return "", apperrors.ErrInvalidContactKind
}

func (s *RelationshipService) prepare(req *SyncRequest) (*models.RelationshipUpsert, error) {
	if req.OrganizationID == uuid.Nil {
		return nil, apperrors.NewValidationError("organization_id", "is required")
	}
	if req.CandidateID == uuid.Nil {
		return nil, apperrors.NewValidationError("candidate_id", "is required")
	}
	if !req.OrganizationKind.IsValid() {
		return nil, apperrors.ErrInvalidOrganizationKind
	}
	implied, err := ImpliedStatus(req.Kind, req.Refs)
	if err != nil {
		return nil, err
	}

	at := req.At
	if at.IsZero() {
		at = s.now()
	}

	return &models.RelationshipUpsert{
		OrganizationID:   req.OrganizationID,
		OrganizationKind: req.OrganizationKind,
		CandidateID:      req.CandidateID,
		Kind:             req.Kind,
		Refs:             req.Refs,
		ImpliedStatus:    implied,
		Monotonic:        s.monotonic,
		At:               at.UTC(),
	}, nil
}

// Synchronize folds one contact event into the ledger in its own transaction
func (s *RelationshipService) Synchronize(ctx context.Context, req *SyncRequest) (*models.TalentRelationship, error) {
	var relationship *models.TalentRelationship
	err := s.retry.inTransaction(ctx, s.db, "synchronize", func(tx *gorm.DB) error {
		var err error
		relationship, err = s.SynchronizeTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return relationship, nil
}

// SynchronizeTx folds one contact event into the ledger using the caller's transaction, so the
// producer's own record and the ledger update commit together.
func (s *RelationshipService) SynchronizeTx(ctx context.Context, tx *gorm.DB, req *SyncRequest) (*models.TalentRelationship, error) {
	upsert, err := s.prepare(req)
	if err != nil {
		relationshipSyncTotal.WithLabelValues(string(req.Kind), resultError).Inc()
		return nil, err
	}

	start := time.Now()
	relationship, err := s.repo.WithTx(tx).Upsert(upsert)
	relationshipSyncDuration.WithLabelValues(string(upsert.Kind)).Observe(time.Since(start).Seconds())
	relationshipSyncTotal.WithLabelValues(string(upsert.Kind), resultLabel(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to synchronize talent relationship: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": upsert.OrganizationID,
		"candidate_id":    upsert.CandidateID,
		"contact_kind":    upsert.Kind,
		"status":          relationship.Status,
	}).Debug("synchronized talent relationship")

	return relationship, nil
}

func (s *RelationshipService) visibleFor(ctx context.Context, caller *auth.Caller) ([]uuid.UUID, error) {
	account, kind, err := s.accounts.LoadCaller(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.accounts.VisibleIdentities(ctx, kind, account)
}

func (f PoolFilter) toRepository() (repository.RelationshipFilter, error) {
	filter := repository.RelationshipFilter{
		Status:           models.RelationshipStatus(f.Status),
		OrganizationKind: models.OrganizationKind(f.OrganizationKind),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return filter, apperrors.ErrInvalidStatus
	}
	if filter.OrganizationKind != "" && !filter.OrganizationKind.IsValid() {
		return filter, apperrors.ErrInvalidOrganizationKind
	}
	return filter, nil
}

// ListPool lists the relationships held by every identity visible to the caller, most recent contact first
func (s *RelationshipService) ListPool(ctx context.Context, caller *auth.Caller, filter PoolFilter, page, pageSize int) (*PoolResponse, error) {
	offset, err := pageOffset(page, pageSize)
	if err != nil {
		return nil, err
	}
	repoFilter, err := filter.toRepository()
	if err != nil {
		return nil, err
	}

	visible, err := s.visibleFor(ctx, caller)
	if err != nil {
		return nil, err
	}

	relationships, total, err := s.repo.ListByOrganizations(visible, repoFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list talent pool: %w", err)
	}

	responses := make([]RelationshipResponse, len(relationships))
	for i := range relationships {
		responses[i] = *toRelationshipResponse(&relationships[i])
	}

	return &PoolResponse{
		Relationships: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// GetForCandidate returns the most recently contacted relationship any visible identity holds with the candidate
func (s *RelationshipService) GetForCandidate(ctx context.Context, caller *auth.Caller, candidateID uuid.UUID) (*RelationshipResponse, error) {
	visible, err := s.visibleFor(ctx, caller)
	if err != nil {
		return nil, err
	}

	relationships, err := s.repo.GetByCandidate(visible, candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationshipNotFound
		}
		return nil, fmt.Errorf("failed to get talent relationship: %w", err)
	}
	if len(relationships) == 0 {
		return nil, apperrors.ErrRelationshipNotFound
	}
	return toRelationshipResponse(&relationships[0]), nil
}

func toRelationshipResponse(r *models.TalentRelationship) *RelationshipResponse {
	response := &RelationshipResponse{
		ID:               r.ID,
		OrganizationID:   r.OrganizationID,
		OrganizationKind: r.OrganizationKind,
		CandidateID:      r.CandidateID,
		Status:           r.Status,
		LastContactKind:  r.LastContactKind,
		ResumeID:         r.ResumeID,
		ApplicationID:    r.ApplicationID,
		InterviewID:      r.InterviewID,
		OfferID:          r.OfferID,
		FirstContactTime: r.FirstContactTime,
		LastContactTime:  r.LastContactTime,
	}
	if r.Candidate != nil {
		response.Candidate = &CandidateSummary{
			ID:             r.Candidate.ID,
			Name:           r.Candidate.Name,
			Email:          r.Candidate.Email,
			Major:          r.Candidate.Major,
			GraduationYear: r.Candidate.GraduationYear,
		}
	}
	return response
}
