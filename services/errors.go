package services

import (
	"errors"
	"fmt"
)

// ErrReportNotFound is returned by store lookups for unknown report ids.
var ErrReportNotFound = errors.New("report not found")

// ValidationError reports a create-report payload that failed the synchronous
// checks. It never leaves a partial write behind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ClassificationError reports a model response that did not conform to the
// closed classification schema. Callers fall back to manual entry.
type ClassificationError struct {
	Detail string
}

func (e *ClassificationError) Error() string {
	return "classification failed: " + e.Detail
}
