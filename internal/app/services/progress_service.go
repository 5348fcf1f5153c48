package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/catalog"
	"github.com/yigit/degreepath/internal/domain/curriculum"
	"github.com/yigit/degreepath/internal/domain/planning"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
	"github.com/yigit/degreepath/internal/pkg/helpers"
)

// availableLimit caps the "take next" list in a progress report.
const availableLimit = 10

// ProgressService classifies courses for students.
type ProgressService struct {
	program     *catalog.Program
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewProgressService creates a new progress service instance
func NewProgressService(program *catalog.Program, enrollments EnrollmentStore, logger zerolog.Logger) *ProgressService {
	return &ProgressService{
		program:     program,
		enrollments: enrollments,
		logger:      logger,
	}
}

// StudentProgress loads the student's completions and enrollments in
// parallel and reports states, group progress and what to take next.
func (s *ProgressService) StudentProgress(ctx context.Context, studentID uuid.UUID) (*dto.ProgressResponse, error) {
	var (
		completedCodes []string
		enrollments    []*models.UserCourse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		completedCodes, err = s.enrollments.CompletedCourseCodes(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		enrollments, err = s.enrollments.ListByStudent(gctx, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load student record: %w", err)
	}

	completed := curriculum.NewCompletionSet(completedCodes...)
	resp, err := s.report(completed)
	if err != nil {
		return nil, err
	}
	resp.StudentID = studentID.String()

	seen := make(map[string]bool)
	for _, e := range enrollments {
		if e.Completed || completed.Has(e.CourseCode) || seen[e.CourseCode] {
			continue
		}
		seen[e.CourseCode] = true
		resp.InProgress = append(resp.InProgress, e.CourseCode)
	}

	s.logger.Debug().
		Str("studentID", studentID.String()).
		Int("completed", completed.Len()).
		Int("percent", resp.Summary.Percent).
		Msg("Progress computed")

	return resp, nil
}

func (s *ProgressService) report(completed curriculum.CompletionSet) (*dto.ProgressResponse, error) {
	graph := s.program.Graph
	resp := &dto.ProgressResponse{
		States:           graph.ClassifyAll(completed),
		Summary:          graph.Summary(completed),
		Tracks:           []dto.GroupProgressResponse{},
		Categories:       []dto.GroupProgressResponse{},
		InProgress:       []string{},
		Available:        []string{},
		RemainingCredits: planning.RemainingCredits(graph, completed, s.program.TotalCredits),
	}

	for _, t := range s.program.Tracks {
		p, err := graph.Progress(t, completed)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", t.ID, err)
		}
		resp.Tracks = append(resp.Tracks, dto.NewGroupProgressResponse(t, p))
	}
	for _, c := range s.program.Categories {
		p, err := graph.Progress(c, completed)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", c.ID, err)
		}
		resp.Categories = append(resp.Categories, dto.NewGroupProgressResponse(c, p))
	}
	for _, c := range graph.Available(completed, availableLimit) {
		resp.Available = append(resp.Available, c.Code)
	}
	return resp, nil
}

// CourseState classifies one course for a student.
func (s *ProgressService) CourseState(ctx context.Context, studentID uuid.UUID, code string) (*dto.CourseStateResponse, error) {
	if _, err := s.program.Graph.Course(code); err != nil {
		return nil, err
	}
	codes, err := s.enrollments.CompletedCourseCodes(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed courses: %w", err)
	}
	return s.courseState(code, curriculum.NewCompletionSet(codes...))
}

func (s *ProgressService) courseState(code string, completed curriculum.CompletionSet) (*dto.CourseStateResponse, error) {
	graph := s.program.Graph
	state, err := graph.Classify(code, completed)
	if err != nil {
		return nil, err
	}
	missing, err := graph.MissingPrerequisites(code, completed)
	if err != nil {
		return nil, err
	}
	unlocks := []string{}
	if state != curriculum.StateCompleted {
		unlocks = nonNil(graph.NewlyAvailable(completed, completed.With(code)))
	}
	return &dto.CourseStateResponse{
		Code:                 code,
		State:                state,
		MissingPrerequisites: missing,
		Unlocks:              unlocks,
	}, nil
}

// Preview classifies against a supplied completion set without touching storage.
func (s *ProgressService) Preview(req dto.ProgressPreviewRequest) (*dto.ProgressPreviewResponse, error) {
	completed := curriculum.NewCompletionSet(req.Completed...)
	graph := s.program.Graph
	resp := &dto.ProgressPreviewResponse{
		States:  graph.ClassifyAll(completed),
		Summary: graph.Summary(completed),
	}
	if req.CourseCode != "" {
		course, err := s.courseState(req.CourseCode, completed)
		if err != nil {
			return nil, err
		}
		resp.Course = course
	}
	return resp, nil
}

// RecordEnrollment stores an enrollment row and reports which courses a
// completion newly made available, measured against the completions read in
// the same transaction as the insert.
func (s *ProgressService) RecordEnrollment(ctx context.Context, studentID uuid.UUID, req dto.RecordEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	if _, err := s.program.Graph.Course(req.CourseCode); err != nil {
		return nil, err
	}

	uc := &models.UserCourse{
		StudentID:  studentID,
		CourseCode: req.CourseCode,
		Completed:  req.Completed,
		Year:       req.Year,
		Grade:      req.Grade,
	}
	if req.OfferingID != nil {
		id, err := uuid.Parse(*req.OfferingID)
		if err != nil {
			return nil, apperrors.NewBadRequestError("offeringId must be a UUID")
		}
		uc.OfferingID = &id
	}
	if req.Season != nil {
		season, err := models.ParseSeason(*req.Season)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSeason, err)
		}
		uc.Season = &season
	}

	resp := &dto.EnrollmentResponse{Enrollment: uc, Unlocks: []string{}}
	if uc.Completed {
		codes, err := s.enrollments.RecordCompletion(ctx, uc)
		if err != nil {
			return nil, err
		}
		before := curriculum.NewCompletionSet(codes...)
		resp.Unlocks = nonNil(s.program.Graph.NewlyAvailable(before, before.With(uc.CourseCode)))
	} else if err := s.enrollments.Record(ctx, uc); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentID", studentID.String()).
		Str("course", uc.CourseCode).
		Bool("completed", uc.Completed).
		Strs("unlocks", resp.Unlocks).
		Msg("Enrollment recorded")

	return resp, nil
}

// Enrollments returns one page of a student's enrollment history, newest
// term first. Histories are short, so the page is cut from the full list.
func (s *ProgressService) Enrollments(ctx context.Context, studentID uuid.UUID, page, size int) (*dto.EnrollmentListResponse, error) {
	list, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}
	if list == nil {
		list = []*models.UserCourse{}
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(list))
	return &dto.EnrollmentListResponse{
		Enrollments: list[start:end],
		Pagination:  helpers.NewPage(int64(len(list)), page, size),
	}, nil
}
