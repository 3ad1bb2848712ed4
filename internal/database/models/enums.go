package models

// OrganizationKind identifies which class of organization account owns data
type OrganizationKind string

const (
	OrganizationKindEnterprise OrganizationKind = "enterprise"
	OrganizationKindTeacher    OrganizationKind = "teacher"
)

// IsValid checks if the OrganizationKind is valid
func (k OrganizationKind) IsValid() bool {
	switch k {
	case OrganizationKindEnterprise, OrganizationKindTeacher:
		return true
	}
	return false
}

// AccountKind is the kind of identity carried by an access token
type AccountKind string

const (
	AccountKindEnterprise AccountKind = "enterprise"
	AccountKindTeacher    AccountKind = "teacher"
	AccountKindStudent    AccountKind = "student"
	AccountKindAdmin      AccountKind = "admin"
)

// OrganizationKind returns the organization class for enterprise and teacher accounts.
func (k AccountKind) OrganizationKind() (OrganizationKind, bool) {
	switch k {
	case AccountKindEnterprise:
		return OrganizationKindEnterprise, true
	case AccountKindTeacher:
		return OrganizationKindTeacher, true
	}
	return "", false
}

// ContactKind is the channel through which an organization touched a candidate
type ContactKind string

const (
	ContactKindApplication  ContactKind = "application"
	ContactKindInterview    ContactKind = "interview"
	ContactKindOffer        ContactKind = "offer"
	ContactKindBookmark     ContactKind = "bookmark"
	ContactKindConversation ContactKind = "conversation"
)

// IsValid checks if the ContactKind is valid
func (k ContactKind) IsValid() bool {
	switch k {
	case ContactKindApplication, ContactKindInterview, ContactKindOffer, ContactKindBookmark, ContactKindConversation:
		return true
	}
	return false
}

// RelationshipStatus is the deepest stage a talent relationship has reached
type RelationshipStatus string

const (
	RelationshipStatusNoneYet        RelationshipStatus = "none_yet"
	RelationshipStatusBookmarked     RelationshipStatus = "bookmarked"
	RelationshipStatusInConversation RelationshipStatus = "in_conversation"
	RelationshipStatusInterviewed    RelationshipStatus = "interviewed"
	RelationshipStatusHired          RelationshipStatus = "hired"
)

// RelationshipStatusOrder lists statuses from shallowest to deepest
var RelationshipStatusOrder = []RelationshipStatus{
	RelationshipStatusNoneYet,
	RelationshipStatusBookmarked,
	RelationshipStatusInConversation,
	RelationshipStatusInterviewed,
	RelationshipStatusHired,
}

// Rank returns the position of the status in RelationshipStatusOrder, or -1
func (s RelationshipStatus) Rank() int {
	for i, status := range RelationshipStatusOrder {
		if status == s {
			return i
		}
	}
	return -1
}

// IsValid checks if the RelationshipStatus is valid
func (s RelationshipStatus) IsValid() bool {
	return s.Rank() >= 0
}

// ApplicationStatus tracks a job application on the producer side
type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusOffered     ApplicationStatus = "offered"
)
