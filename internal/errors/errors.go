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
	Context string // Additional context like "for this apartment"
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

// ValidationError represents a validation error. It also covers business-rule
// violations that present as bad input, such as a booking for an occupied slot.
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOwnerNotFound       = &NotFoundError{Entity: "owner"}
	ErrCustomerNotFound    = &NotFoundError{Entity: "customer"}
	ErrApartmentNotFound   = &NotFoundError{Entity: "apartment"}
	ErrOwnershipNotFound   = &NotFoundError{Entity: "ownership"}
	ErrReservationNotFound = &NotFoundError{Entity: "reservation"}
	ErrReviewNotFound      = &NotFoundError{Entity: "review"}

	// A review may only be created after a stay: a reservation of the same
	// apartment by the same customer ending on or before the review date.
	ErrNoQualifyingReservation = &NotFoundError{Entity: "qualifying reservation"}

	// Raised on a foreign-key violation when the violated reference cannot be
	// attributed to a specific entity.
	ErrReferencedRecordNotFound = &NotFoundError{Entity: "referenced record"}
)

// Already Exists Errors
var (
	ErrOwnerExists     = &AlreadyExistsError{Entity: "owner", Context: "with this id"}
	ErrCustomerExists  = &AlreadyExistsError{Entity: "customer", Context: "with this id"}
	ErrApartmentExists = &AlreadyExistsError{Entity: "apartment", Context: "with this id or location"}
	ErrOwnershipExists = &AlreadyExistsError{Entity: "ownership", Context: "for this apartment"}
	ErrReviewExists    = &AlreadyExistsError{Entity: "review", Context: "for this customer and apartment"}
)

// Business Rule Errors (surface as validation failures)
var (
	ErrApartmentUnavailable = &ValidationError{Field: "start_date", Message: "apartment is not available for the requested dates"}
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
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

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
