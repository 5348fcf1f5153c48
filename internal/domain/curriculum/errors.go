package curriculum

import (
	"fmt"
	"strings"

	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

// ValidationKind says which catalog check a GraphValidationError failed.
type ValidationKind string

const (
	KindInvalid   ValidationKind = "invalid"
	KindDuplicate ValidationKind = "duplicate"
	KindDangling  ValidationKind = "dangling"
	KindCycle     ValidationKind = "cycle"
)

// GraphValidationError is returned by New when the course list cannot form a
// curriculum graph. No graph is ever returned alongside it.
type GraphValidationError struct {
	Kind   ValidationKind
	Course string   // offending course code
	Ref    string   // missing prerequisite for KindDangling
	Cycle  []string // closed path for KindCycle, first element repeated at the end
	Reason string   // detail for KindInvalid
}

func (e *GraphValidationError) Error() string {
	switch e.Kind {
	case KindDuplicate:
		return fmt.Sprintf("duplicate course code %q", e.Course)
	case KindDangling:
		return fmt.Sprintf("course %q requires unknown course %q", e.Course, e.Ref)
	case KindCycle:
		return fmt.Sprintf("prerequisite cycle: %s", strings.Join(e.Cycle, " -> "))
	default:
		return fmt.Sprintf("invalid course %q: %s", e.Course, e.Reason)
	}
}

// Unwrap lets callers match apperrors.ErrGraphValidation.
func (e *GraphValidationError) Unwrap() error {
	return apperrors.ErrGraphValidation
}

// NotFoundError is returned when a course code is not part of the graph.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course %q not found in curriculum", e.Code)
}

func (e *NotFoundError) Unwrap() []error {
	return []error{apperrors.ErrCourseNotFound, apperrors.ErrResourceNotFound}
}
