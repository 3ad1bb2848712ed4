package models

import (
	"time"

	"github.com/google/uuid"
)

// TalentRelationship is the consolidated record of one organization's contact with one candidate.
// There is at most one row per (organization_id, candidate_id).
type TalentRelationship struct {
	BaseModel
	OrganizationID   uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_talent_relationship_pair"`
	OrganizationKind OrganizationKind   `json:"organization_kind" gorm:"type:varchar(20);not null"`
	CandidateID      uuid.UUID          `json:"candidate_id" gorm:"type:uuid;not null;uniqueIndex:idx_talent_relationship_pair;index"`
	Candidate        *Student           `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	Status           RelationshipStatus `json:"status" gorm:"type:varchar(20);not null;check:chk_talent_relationship_status,status IN ('none_yet','bookmarked','in_conversation','interviewed','hired')"`
	LastContactKind  ContactKind        `json:"last_contact_kind" gorm:"type:varchar(20);not null"`

	ResumeID      *uuid.UUID `json:"resume_id,omitempty" gorm:"type:uuid"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty" gorm:"type:uuid"`
	InterviewID   *uuid.UUID `json:"interview_id,omitempty" gorm:"type:uuid"`
	OfferID       *uuid.UUID `json:"offer_id,omitempty" gorm:"type:uuid"`

	FirstContactTime time.Time `json:"first_contact_time" gorm:"not null"`
	LastContactTime  time.Time `json:"last_contact_time" gorm:"not null;index"`
}

// TableName returns the table name for TalentRelationship
func (TalentRelationship) TableName() string {
	return "talent_relationships"
}

// ContactRefs are the optional back-references a synchronization may carry
type ContactRefs struct {
	ResumeID      *uuid.UUID `json:"resume_id,omitempty"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`
	InterviewID   *uuid.UUID `json:"interview_id,omitempty"`
	OfferID       *uuid.UUID `json:"offer_id,omitempty"`
}

// RelationshipUpsert describes one synchronization as the store applies it
type RelationshipUpsert struct {
	OrganizationID   uuid.UUID
	OrganizationKind OrganizationKind
	CandidateID      uuid.UUID
	Kind             ContactKind
	Refs             ContactRefs
	// ImpliedStatus is empty when the call does not imply any status.
	ImpliedStatus RelationshipStatus
	// Monotonic keeps the deeper of the stored and implied status.
	Monotonic bool
	At        time.Time
}
