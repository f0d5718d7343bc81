// Package errors provides typed errors for zeta calibration requests.
// Callers use errors.Is() against the sentinels or errors.As() against the
// concrete types to decide how a rejected request is presented.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched by the typed errors below through Is.
var (
	// Reference data errors
	ErrUnknownStandard = errors.New("unknown standard")
	ErrUnknownMineral  = errors.New("unknown mineral")
	ErrIncompatible    = errors.New("standard not calibrated for mineral")

	// Input validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownStandardError is returned when a standard code is not registered.
type UnknownStandardError struct {
	Code string
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("unknown standard %q", e.Code)
}

// Is reports whether target is ErrUnknownStandard.
func (e *UnknownStandardError) Is(target error) bool {
	return target == ErrUnknownStandard
}

// NewUnknownStandardError creates a new UnknownStandardError.
func NewUnknownStandardError(code string) *UnknownStandardError {
	return &UnknownStandardError{Code: code}
}

// UnknownMineralError is returned when a mineral code is not registered.
type UnknownMineralError struct {
	Code string
}

func (e *UnknownMineralError) Error() string {
	return fmt.Sprintf("unknown mineral %q", e.Code)
}

// Is reports whether target is ErrUnknownMineral.
func (e *UnknownMineralError) Is(target error) bool {
	return target == ErrUnknownMineral
}

// NewUnknownMineralError creates a new UnknownMineralError.
func NewUnknownMineralError(code string) *UnknownMineralError {
	return &UnknownMineralError{Code: code}
}

// IncompatibleStandardMineralError is raised by the calling layer when a
// standard's applicability flag is false for the chosen mineral.
type IncompatibleStandardMineralError struct {
	Standard     string // standard code, e.g. "DUR"
	StandardName string // display name, may be empty
	Mineral      string // mineral code, e.g. "Zrn"
	MineralName  string // display name, may be empty
}

func (e *IncompatibleStandardMineralError) Error() string {
	std := e.Standard
	if e.StandardName != "" {
		std = e.StandardName
	}
	mineral := e.Mineral
	if e.MineralName != "" {
		mineral = e.MineralName
	}
	return fmt.Sprintf("standard %s is not suitable for mineral %s", std, mineral)
}

// Is reports whether target is ErrIncompatible.
func (e *IncompatibleStandardMineralError) Is(target error) bool {
	return target == ErrIncompatible
}

// NewIncompatibleError creates a new IncompatibleStandardMineralError.
func NewIncompatibleError(standard, standardName, mineral, mineralName string) *IncompatibleStandardMineralError {
	return &IncompatibleStandardMineralError{
		Standard:     standard,
		StandardName: standardName,
		Mineral:      mineral,
		MineralName:  mineralName,
	}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Is checks if target matches any error in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsUnknownStandard checks if the error reports an unregistered standard.
func IsUnknownStandard(err error) bool {
	return errors.Is(err, ErrUnknownStandard)
}

// IsUnknownMineral checks if the error reports an unregistered mineral.
func IsUnknownMineral(err error) bool {
	return errors.Is(err, ErrUnknownMineral)
}

// IsIncompatible checks if the error reports a standard/mineral mismatch.
func IsIncompatible(err error) bool {
	return errors.Is(err, ErrIncompatible)
}

// IsValidation checks if the error reports rejected numeric input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
