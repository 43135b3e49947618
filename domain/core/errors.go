package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Invalid statistical input
	ErrEmptySample       = errors.New("empty sample")
	ErrSampleTooSmall    = errors.New("sample too small for variance estimation")
	ErrMalformedBounds   = errors.New("malformed bounds")
	ErrGroupSizeInvalid  = errors.New("group size must be positive")
	ErrGroupsExceedPop   = errors.New("requested group sizes exceed population")
	ErrGroupNotFound     = errors.New("group not found in partition")
	ErrPopulationEmpty   = errors.New("population is empty")
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// Numerical degeneracy
	ErrSingularDesign = errors.New("singular design matrix")
	ErrZeroVariance   = errors.New("zero variance")

	// Graph errors
	ErrCyclicGraph   = errors.New("causal graph contains a cycle")
	ErrUnknownNode   = errors.New("edge references unknown node")
	ErrDuplicateNode = errors.New("duplicate node name")

	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrArtifactNotFound = fmt.Errorf("%w: artifact", ErrNotFound)
)

// Error constructors with context

func NewBoundsError(lo, hi float64) error {
	return fmt.Errorf("%w: lo %v > hi %v", ErrMalformedBounds, lo, hi)
}

func NewGroupSizeError(name string, size int) error {
	return fmt.Errorf("%w: group %q has size %d", ErrGroupSizeInvalid, name, size)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers

func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrEmptySample) ||
		errors.Is(err, ErrSampleTooSmall) ||
		errors.Is(err, ErrMalformedBounds) ||
		errors.Is(err, ErrGroupSizeInvalid) ||
		errors.Is(err, ErrGroupsExceedPop) ||
		errors.Is(err, ErrDimensionMismatch)
}

func IsDegeneracyError(err error) bool {
	return errors.Is(err, ErrSingularDesign) ||
		errors.Is(err, ErrZeroVariance)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
