package dataset

import (
	"errors"
	"fmt"
)

// Fatal data errors. These abort the pipeline before any statistics are
// computed.
var (
	// ErrEmptyDataset is returned when no observations were supplied.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrMissingGroup is returned when a recognized group has zero
	// records, leaving its statistics undefined. Wrapped with the label.
	ErrMissingGroup = errors.New("group has no observations")
)

// ValidationError describes a record whose value is outside its valid
// domain. It is never silently coerced: strict mode aborts on the first
// one, lenient mode excludes the record and counts it.
type ValidationError struct {
	CustomerID string
	Field      string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid observation %s: field %s: %s", e.CustomerID, e.Field, e.Reason)
}
