package pipeline

import (
	"errors"
	"fmt"

	"go-sentinel/types"
)

// ErrWrongState is returned when an operation is attempted against a case
// whose lifecycle state does not allow it. The state machine only moves
// forward.
var ErrWrongState = errors.New("case is not in a state that allows this operation")

// ValidationError rejects a malformed case before any pipeline stage runs.
// The case status is left untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid case: %s %s", e.Field, e.Reason)
}

// ValidateCase checks the required fields of a case. An empty suspected
// source is allowed; it simply yields no matches.
func ValidateCase(c types.Case) error {
	if c.HospitalID == "" {
		return &ValidationError{Field: "hospital_id", Reason: "is required"}
	}
	if !c.CaseType.Valid() {
		return &ValidationError{Field: "case_type", Reason: fmt.Sprintf("%q is not a known case type", c.CaseType)}
	}
	if !c.Severity.Valid() {
		return &ValidationError{Field: "severity", Reason: fmt.Sprintf("%q is not a known severity", c.Severity)}
	}
	if c.EventTime.IsZero() {
		return &ValidationError{Field: "event_time", Reason: "is required"}
	}
	if c.PatientCount < 1 {
		return &ValidationError{Field: "patient_count", Reason: "must be at least 1"}
	}
	return nil
}
