package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Job is a position posted by an organization under its effective identity
type Job struct {
	BaseModel
	OrganizationID    uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	OrganizationKind  OrganizationKind `json:"organization_kind" gorm:"type:varchar(20);not null"`
	PostedByAccountID uuid.UUID        `json:"posted_by_account_id" gorm:"type:uuid;not null"`
	Title             string           `json:"title" gorm:"not null;size:200"`
	Description       string           `json:"description" gorm:"type:text"`
	Location          string           `json:"location" gorm:"size:200"`
}

// TableName returns the table name for Job
func (Job) TableName() string {
	return "jobs"
}

// Resume belongs to a student and is referenced by applications
type Resume struct {
	BaseModel
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;index"`
	Student   *Student  `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Title     string    `json:"title" gorm:"not null;size:200"`
	Summary   string    `json:"summary" gorm:"type:text"`
}

// TableName returns the table name for Resume
func (Resume) TableName() string {
	return "resumes"
}

// JobApplication is a student's application to a job
type JobApplication struct {
	BaseModel
	JobID            uuid.UUID         `json:"job_id" gorm:"type:uuid;not null;uniqueIndex:idx_job_application_pair"`
	Job              *Job              `json:"-" gorm:"foreignKey:JobID"`
	StudentID        uuid.UUID         `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_job_application_pair"`
	Student          *Student          `json:"-" gorm:"foreignKey:StudentID"`
	ResumeID         uuid.UUID         `json:"resume_id" gorm:"type:uuid;not null"`
	OrganizationID   uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index"`
	OrganizationKind OrganizationKind  `json:"organization_kind" gorm:"type:varchar(20);not null"`
	Status           ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'submitted'"`
}

// TableName returns the table name for JobApplication
func (JobApplication) TableName() string {
	return "job_applications"
}

// Interview is scheduled by an organization with a candidate
type Interview struct {
	BaseModel
	OrganizationID     uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	OrganizationKind   OrganizationKind `json:"organization_kind" gorm:"type:varchar(20);not null"`
	StudentID          uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;index"`
	Student            *Student         `json:"-" gorm:"foreignKey:StudentID"`
	ApplicationID      *uuid.UUID       `json:"application_id,omitempty" gorm:"type:uuid"`
	ScheduledAt        time.Time        `json:"scheduled_at" gorm:"not null"`
	Location           string           `json:"location" gorm:"size:200"`
	CreatedByAccountID uuid.UUID        `json:"created_by_account_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Interview
func (Interview) TableName() string {
	return "interviews"
}

// Offer is an employment offer extended to a candidate
type Offer struct {
	BaseModel
	OrganizationID     uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	OrganizationKind   OrganizationKind `json:"organization_kind" gorm:"type:varchar(20);not null"`
	StudentID          uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;index"`
	Student            *Student         `json:"-" gorm:"foreignKey:StudentID"`
	ApplicationID      *uuid.UUID       `json:"application_id,omitempty" gorm:"type:uuid"`
	InterviewID        *uuid.UUID       `json:"interview_id,omitempty" gorm:"type:uuid"`
	Position           string           `json:"position" gorm:"not null;size:200"`
	Salary             decimal.Decimal  `json:"salary" gorm:"type:decimal(12,2)"`
	CreatedByAccountID uuid.UUID        `json:"created_by_account_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Offer
func (Offer) TableName() string {
	return "offers"
}

// Bookmark marks a candidate as interesting to an organization
type Bookmark struct {
	BaseModel
	OrganizationID   uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_pair"`
	OrganizationKind OrganizationKind `json:"organization_kind" gorm:"type:varchar(20);not null"`
	StudentID        uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_pair"`
	Student          *Student         `json:"-" gorm:"foreignKey:StudentID"`
	Note             string           `json:"note" gorm:"size:500"`
}

// TableName returns the table name for Bookmark
func (Bookmark) TableName() string {
	return "bookmarks"
}

// Conversation is a chat thread an organization opened with a candidate
type Conversation struct {
	BaseModel
	OrganizationID     uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	OrganizationKind   OrganizationKind `json:"organization_kind" gorm:"type:varchar(20);not null"`
	StudentID          uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;index"`
	Student            *Student         `json:"-" gorm:"foreignKey:StudentID"`
	OpeningMessage     string           `json:"opening_message" gorm:"type:text"`
	CreatedByAccountID uuid.UUID        `json:"created_by_account_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Conversation
func (Conversation) TableName() string {
	return "conversations"
}

// ContactEvent is the synchronization a stored contact record stands for
type ContactEvent struct {
	OrganizationID   uuid.UUID
	OrganizationKind OrganizationKind
	CandidateID      uuid.UUID
	Kind             ContactKind
	Refs             ContactRefs
	At               time.Time
}

// ContactEvent returns the application as a contact event
func (a *JobApplication) ContactEvent() ContactEvent {
	resumeID, applicationID := a.ResumeID, a.ID
	return ContactEvent{
		OrganizationID:   a.OrganizationID,
		OrganizationKind: a.OrganizationKind,
		CandidateID:      a.StudentID,
		Kind:             ContactKindApplication,
		Refs:             ContactRefs{ResumeID: &resumeID, ApplicationID: &applicationID},
		At:               a.CreatedAt,
	}
}

// ContactEvent returns the interview as a contact event
func (i *Interview) ContactEvent() ContactEvent {
	interviewID := i.ID
	return ContactEvent{
		OrganizationID:   i.OrganizationID,
		OrganizationKind: i.OrganizationKind,
		CandidateID:      i.StudentID,
		Kind:             ContactKindInterview,
		Refs:             ContactRefs{ApplicationID: i.ApplicationID, InterviewID: &interviewID},
		At:               i.CreatedAt,
	}
}

// ContactEvent returns the offer as a contact event
func (o *Offer) ContactEvent() ContactEvent {
	offerID := o.ID
	return ContactEvent{
		OrganizationID:   o.OrganizationID,
		OrganizationKind: o.OrganizationKind,
		CandidateID:      o.StudentID,
		Kind:             ContactKindOffer,
		Refs:             ContactRefs{ApplicationID: o.ApplicationID, InterviewID: o.InterviewID, OfferID: &offerID},
		At:               o.CreatedAt,
	}
}

// ContactEvent returns the bookmark as a contact event
func (b *Bookmark) ContactEvent() ContactEvent {
	return ContactEvent{
		OrganizationID:   b.OrganizationID,
		OrganizationKind: b.OrganizationKind,
		CandidateID:      b.StudentID,
		Kind:             ContactKindBookmark,
		At:               b.UpdatedAt,
	}
}

// ContactEvent returns the conversation as a contact event
func (c *Conversation) ContactEvent() ContactEvent {
	return ContactEvent{
		OrganizationID:   c.OrganizationID,
		OrganizationKind: c.OrganizationKind,
		CandidateID:      c.StudentID,
		Kind:             ContactKindConversation,
		At:               c.CreatedAt,
	}
}
