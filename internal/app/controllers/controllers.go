package controllers

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/domain/planning"
	"github.com/yigit/degreepath/internal/domain/schedule"
)

// CatalogReader is implemented by services.CatalogService.
type CatalogReader interface {
	Program() dto.ProgramResponse
	Courses() []dto.CourseResponse
	Course(code string) (dto.CourseResponse, error)
	Tracks() []dto.TrackResponse
	Template() planning.PlanReport
}

// ProgressReader is implemented by services.ProgressService.
type ProgressReader interface {
	StudentProgress(ctx context.Context, studentID uuid.UUID) (*dto.ProgressResponse, error)
	CourseState(ctx context.Context, studentID uuid.UUID, code string) (*dto.CourseStateResponse, error)
	Preview(req dto.ProgressPreviewRequest) (*dto.ProgressPreviewResponse, error)
	RecordEnrollment(ctx context.Context, studentID uuid.UUID, req dto.RecordEnrollmentRequest) (*dto.EnrollmentResponse, error)
	Enrollments(ctx context.Context, studentID uuid.UUID, page, size int) (*dto.EnrollmentListResponse, error)
}

// ScheduleBuilder is implemented by services.ScheduleService.
type ScheduleBuilder interface {
	ParseTerm(year int, season string) (models.Term, error)
	StudentSchedule(ctx context.Context, studentID uuid.UUID, term models.Term) (*dto.ScheduleResponse, error)
	Preview(offerings []schedule.Offering) *dto.ScheduleResponse
}

// PlanChecker is implemented by services.PlanService.
type PlanChecker interface {
	Check(ctx context.Context, studentID uuid.UUID, req dto.PlanCheckRequest) (*dto.PlanCheckResponse, error)
}
