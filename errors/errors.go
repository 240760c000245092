// Package errors provides error handling for astgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints printed by the CLI
//   - Marking, so a formatted error still matches a sentinel with Is
//
// Usage:
//
//	// Wrap with context
//	if err := builder(); err != nil {
//	    return errors.Wrapf(err, "failed to build family %s", id)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'astgen list' to see registered families")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownFamily) {
//	    // handle unknown family
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for the generation pipeline.
// Use these with errors.Is(); wrap or Mark them to add context while preserving the type.
var (
	// ErrUnknownFamily indicates the requested family id is not registered
	ErrUnknownFamily = New("unknown family")

	// ErrDuplicateFamily indicates two registry entries share an id
	ErrDuplicateFamily = New("duplicate family")

	// ErrDuplicateShape indicates a family declares two shapes with the same name
	ErrDuplicateShape = New("duplicate shape name")

	// ErrDuplicateField indicates a shape declares two fields with the same name
	ErrDuplicateField = New("duplicate field name")

	// ErrUnknownTarget indicates no target language matches a destination
	ErrUnknownTarget = New("unknown target language")

	// ErrTemplate indicates a template referenced a binding the family does not provide
	ErrTemplate = New("template error")

	// ErrRender indicates any other rendering failure
	ErrRender = New("render error")

	// ErrWrite indicates the destination could not be written
	ErrWrite = New("write error")
)

// NewUnknownFamilyError reports id as unregistered and lists the valid choices.
// The result matches ErrUnknownFamily.
func NewUnknownFamilyError(id string, valid []string) error {
	err := Newf("unknown family %q (valid choices: %s)", id, strings.Join(valid, ", "))
	err = WithHint(err, "run 'astgen list' to see registered families")
	return Mark(err, ErrUnknownFamily)
}

// IsUnknownFamilyError checks if an error is or wraps ErrUnknownFamily
func IsUnknownFamilyError(err error) bool {
	return err != nil && Is(err, ErrUnknownFamily)
}

// IsTemplateError checks if an error is or wraps ErrTemplate
func IsTemplateError(err error) bool {
	return err != nil && Is(err, ErrTemplate)
}

// IsRenderError checks if an error is or wraps ErrRender
func IsRenderError(err error) bool {
	return err != nil && Is(err, ErrRender)
}

// IsWriteError checks if an error is or wraps ErrWrite
func IsWriteError(err error) bool {
	return err != nil && Is(err, ErrWrite)
}

// WrapTemplate marks err as a template error with context
func WrapTemplate(err error, context string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, context), ErrTemplate)
}

// WrapRender marks err as a render error with context
func WrapRender(err error, context string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, context), ErrRender)
}

// WrapWrite marks err as a write error with context
func WrapWrite(err error, context string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, context), ErrWrite)
}
