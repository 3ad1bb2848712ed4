package models

import (
	"github.com/google/uuid"
)

// AccountHierarchy carries the primary/secondary shape shared by organization accounts.
// PrimaryAccountID is only populated on secondary accounts.
type AccountHierarchy struct {
	IsPrimary        bool       `json:"is_primary" gorm:"not null"`
	PrimaryAccountID *uuid.UUID `json:"primary_account_id,omitempty" gorm:"type:uuid;index"`
}

// Enterprise is an employer account
type Enterprise struct {
	BaseModel
	AccountHierarchy
	Name         string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	ContactName  string `json:"contact_name" gorm:"size:100" validate:"max=100"`
	ContactEmail string `json:"contact_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Industry     string `json:"industry" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for Enterprise
func (Enterprise) TableName() string {
	return "enterprises"
}

// Teacher is a school-side account that coordinates placements for students
type Teacher struct {
	BaseModel
	AccountHierarchy
	Name       string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email      string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	School     string `json:"school" gorm:"size:200" validate:"max=200"`
	Department string `json:"department" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for Teacher
func (Teacher) TableName() string {
	return "teachers"
}

// OrganizationAccount is the hierarchy view of an Enterprise or Teacher row
type OrganizationAccount struct {
	ID        uuid.UUID
	Kind      OrganizationKind
	Name      string
	Hierarchy AccountHierarchy
}

// Account returns the hierarchy view of the enterprise
func (e *Enterprise) Account() OrganizationAccount {
	return OrganizationAccount{ID: e.ID, Kind: OrganizationKindEnterprise, Name: e.Name, Hierarchy: e.AccountHierarchy}
}

// Account returns the hierarchy view of the teacher
func (t *Teacher) Account() OrganizationAccount {
	return OrganizationAccount{ID: t.ID, Kind: OrganizationKindTeacher, Name: t.Name, Hierarchy: t.AccountHierarchy}
}
