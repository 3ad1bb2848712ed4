package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ConflictError is returned when a concurrent writer won a race on the same row.
// Retryable conflicts can be resolved by re-running the whole transaction.
type ConflictError struct {
	Entity    string
	Retryable bool
	Err       error
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s write conflict", e.Entity)
	if e.Retryable {
		msg += " (retryable)"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying store error
func (e *ConflictError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrEnterpriseNotFound   = &NotFoundError{Entity: "enterprise"}
	ErrTeacherNotFound      = &NotFoundError{Entity: "teacher"}
	ErrStudentNotFound      = &NotFoundError{Entity: "student"}
	ErrJobNotFound          = &NotFoundError{Entity: "job"}
	ErrResumeNotFound       = &NotFoundError{Entity: "resume"}
	ErrApplicationNotFound  = &NotFoundError{Entity: "job application"}
	ErrInterviewNotFound    = &NotFoundError{Entity: "interview"}
	ErrRelationshipNotFound = &NotFoundError{Entity: "talent relationship"}
)

// Already Exists Errors
var (
	ErrStudentExists     = &AlreadyExistsError{Entity: "student", Context: "with this email"}
	ErrApplicationExists = &AlreadyExistsError{Entity: "job application", Context: "for this job and student"}
)

// Business Logic Errors
var (
	ErrInvalidContactKind      = &ValidationError{Field: "contact_kind", Message: "unknown contact kind"}
	ErrInvalidOrganizationKind = &ValidationError{Field: "organization_kind", Message: "must be enterprise or teacher"}
	ErrInvalidStatus           = &ValidationError{Field: "status", Message: "unknown relationship status"}
	ErrPrimaryNotPrimary       = &ValidationError{Field: "primary_account_id", Message: "referenced account is not a primary account"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidStatusPolicy     = errors.New("invalid relationship status policy")
)

// Authorization Errors
var (
	ErrNotOrganizationAccount = &AuthorizationError{Message: "account is not an organization account"}
	ErrNotStudentAccount      = &AuthorizationError{Message: "account is not a student account"}
	ErrNotAdminAccount        = &AuthorizationError{Message: "account is not an administrator account"}
	ErrCannotManageTarget     = &AuthorizationError{Message: "account cannot manage data owned by this organization"}
	ErrResumeNotOwned         = &AuthorizationError{Message: "resume does not belong to the applying student"}
	ErrMissingAccountContext  = &AuthenticationError{Message: "account not found in request context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsRetryable reports whether the error is a conflict that may succeed when retried
func IsRetryable(err error) bool {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Retryable
	}
	return false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewConflictError wraps a store error as a write conflict on entity
func NewConflictError(entity string, retryable bool, err error) error {
	return &ConflictError{Entity: entity, Retryable: retryable, Err: err}
}
