package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/degreepath/internal/app/models"
)

// Services defined in this package:
// - CatalogService: program courses, tracks and the published plan template
// - ProgressService: course states and group progress for a student or a what-if set
// - ScheduleService: weekly timelines and meeting conflicts
// - PlanService: multi-semester plan checks

// EnrollmentStore is the storage the services read student records from.
// *repositories.EnrollmentRepository implements it.
type EnrollmentStore interface {
	CompletedCourseCodes(ctx context.Context, studentID uuid.UUID) ([]string, error)
	TermOfferings(ctx context.Context, studentID uuid.UUID, term models.Term) ([]*models.CourseOffering, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.UserCourse, error)
	Record(ctx context.Context, uc *models.UserCourse) error
	// RecordCompletion records uc atomically with reading the completed
	// codes that preceded it.
	RecordCompletion(ctx context.Context, uc *models.UserCourse) ([]string, error)
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
