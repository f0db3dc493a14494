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
	Context string // Additional context like "with this name"
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

// WorkbookError is returned when a source workbook cannot be opened or parsed.
// It aborts the whole import.
type WorkbookError struct {
	Source string
	Err    error
}

func (e *WorkbookError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("unreadable workbook %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("unreadable workbook: %v", e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// Is matches any WorkbookError, so errors.Is(err, ErrUnreadableWorkbook) works for every source.
func (e *WorkbookError) Is(target error) bool {
	_, ok := target.(*WorkbookError)
	return ok
}

// Entity Not Found Errors
var (
	ErrPeriodNotFound = &NotFoundError{Entity: "period"}
	ErrCoachNotFound  = &NotFoundError{Entity: "coach"}
	ErrMetricNotFound = &NotFoundError{Entity: "safety metric"}
)

// Already Exists Errors
var (
	ErrPeriodExists       = &AlreadyExistsError{Entity: "period", Context: "with these dates"}
	ErrCoachExists        = &AlreadyExistsError{Entity: "coach", Context: "with this name"}
	ErrDuplicateMetricKey = &AlreadyExistsError{Entity: "safety metric", Context: "for this period and coach"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange = errors.New("period start date must be before end date")
	ErrPeriodOverlap    = errors.New("period overlaps an existing period")
	ErrPeriodInUse      = errors.New("period is referenced by safety metrics")
	ErrInvalidBalance   = errors.New("vacation days remaining must be between 0 and vacation days total")
	ErrNegativeCount    = errors.New("metric counts must not be negative")
)

// Import Errors
var (
	ErrUnreadableWorkbook = &WorkbookError{}
	ErrUnauthorized       = &AuthorizationError{Message: "an authenticated identity is required for write operations"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
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

// IsUnreadableWorkbook checks if an error came from opening or parsing a workbook
func IsUnreadableWorkbook(err error) bool {
	var wbErr *WorkbookError
	return errors.As(err, &wbErr)
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

// NewWorkbookError wraps a failure to open or parse a workbook
func NewWorkbookError(source string, err error) error {
	return &WorkbookError{Source: source, Err: err}
}
