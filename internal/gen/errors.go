package gen

import (
	"fmt"

	"blocksynth/internal/model"
)

// ValidationError reports a generation parameter that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NumericInvariantError reports a violated numeric invariant. It indicates a
// defective sampling step, not a recoverable condition.
type NumericInvariantError struct {
	Check     string
	Deviation float64
}

func (e *NumericInvariantError) Error() string {
	return fmt.Sprintf("numeric invariant violated: %s (deviation %g)", e.Check, e.Deviation)
}

// UnsupportedAssociationError reports an association type that is accepted as
// configuration but has no generation transform.
type UnsupportedAssociationError struct {
	Association model.Association
}

func (e *UnsupportedAssociationError) Error() string {
	return fmt.Sprintf("association %q has no generation transform; implemented: line, parabola, log", e.Association)
}
