package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state transition")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden operation")
)

var (
	ErrPatientNotFound = fmt.Errorf("%w: patient not found", ErrNotFound)
	ErrPlanNotFound    = fmt.Errorf("%w: plan not found", ErrNotFound)

	// ErrCatalogEmpty means the caller handed over a catalog with no plans in
	// it. Selection falls back to the highest tier when nothing matches, but an
	// empty catalog is a caller programming error, not a recoverable condition.
	ErrCatalogEmpty = fmt.Errorf("%w: plan catalog is empty", ErrValidation)

	ErrEmptyCohort = fmt.Errorf("%w: cohort contains no patients", ErrValidation)
)
