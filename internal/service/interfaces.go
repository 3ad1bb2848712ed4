package service

import (
	"context"

	"campus-placement-backend/internal/auth"
	"campus-placement-backend/internal/database/models"
	"campus-placement-backend/internal/hierarchy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Load(ctx context.Context, kind models.OrganizationKind, id uuid.UUID) (hierarchy.Account, error)
	LoadCaller(ctx context.Context, caller *auth.Caller) (hierarchy.Account, models.OrganizationKind, error)
	VisibleIdentities(ctx context.Context, kind models.OrganizationKind, account hierarchy.Account) ([]uuid.UUID, error)
	Identity(ctx context.Context, caller *auth.Caller, kind models.OrganizationKind, id uuid.UUID) (*IdentityResponse, error)
	Provision(ctx context.Context, caller *auth.Caller, kind models.OrganizationKind, req *ProvisionAccountRequest) (*AccountResponse, error)
}

// RelationshipServiceInterface defines the interface for relationship service
type RelationshipServiceInterface interface {
	Synchronize(ctx context.Context, req *SyncRequest) (*models.TalentRelationship, error)
	SynchronizeTx(ctx context.Context, tx *gorm.DB, req *SyncRequest) (*models.TalentRelationship, error)
	ListPool(ctx context.Context, caller *auth.Caller, filter PoolFilter, page, pageSize int) (*PoolResponse, error)
	GetForCandidate(ctx context.Context, caller *auth.Caller, candidateID uuid.UUID) (*RelationshipResponse, error)
	ExportPool(ctx context.Context, caller *auth.Caller, filter PoolFilter) ([]byte, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	PostJob(ctx context.Context, caller *auth.Caller, req *PostJobRequest) (*JobResponse, error)
	CreateResume(ctx context.Context, caller *auth.Caller, req *CreateResumeRequest) (*ResumeResponse, error)
	Apply(ctx context.Context, caller *auth.Caller, req *ApplyRequest) (*ContactResponse, error)
	ScheduleInterview(ctx context.Context, caller *auth.Caller, req *ScheduleInterviewRequest) (*ContactResponse, error)
	IssueOffer(ctx context.Context, caller *auth.Caller, req *IssueOfferRequest) (*ContactResponse, error)
	Bookmark(ctx context.Context, caller *auth.Caller, req *BookmarkRequest) (*ContactResponse, error)
	OpenConversation(ctx context.Context, caller *auth.Caller, req *OpenConversationRequest) (*ContactResponse, error)
}

// RebuildServiceInterface defines the interface for ledger rebuilds
type RebuildServiceInterface interface {
	Rebuild(ctx context.Context) (*RebuildResult, error)
}

var (
	_ AccountServiceInterface      = (*AccountService)(nil)
	_ RelationshipServiceInterface = (*RelationshipService)(nil)
	_ ContactServiceInterface      = (*ContactService)(nil)
	_ RebuildServiceInterface      = (*RebuildService)(nil)
)
