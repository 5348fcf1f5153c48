package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/catalog"
	"github.com/yigit/degreepath/internal/domain/curriculum"
	"github.com/yigit/degreepath/internal/domain/planning"
)

// PlanService checks semester plans against a student's record.
type PlanService struct {
	program     *catalog.Program
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewPlanService creates a new plan service instance
func NewPlanService(program *catalog.Program, enrollments EnrollmentStore, logger zerolog.Logger) *PlanService {
	return &PlanService{
		program:     program,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Check runs the plan against the student's completed courses.
func (s *PlanService) Check(ctx context.Context, studentID uuid.UUID, req dto.PlanCheckRequest) (*dto.PlanCheckResponse, error) {
	codes, err := s.enrollments.CompletedCourseCodes(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed courses: %w", err)
	}
	completed := curriculum.NewCompletionSet(codes...)

	semesters := req.ToSemesters()
	remaining := planning.RemainingCredits(s.program.Graph, completed, s.program.TotalCredits)
	resp := &dto.PlanCheckResponse{
		PlanReport:       planning.CheckPlan(s.program.Graph, completed, semesters, s.program.Limits),
		RemainingCredits: remaining,
		Estimate:         planning.EstimateOverload(remaining, len(semesters), s.program.Limits),
	}

	s.logger.Debug().
		Str("studentID", studentID.String()).
		Int("semesters", len(semesters)).
		Bool("valid", resp.Valid).
		Bool("overload", resp.Overload.Needed).
		Msg("Plan checked")

	return resp, nil
}
