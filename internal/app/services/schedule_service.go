package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/domain/schedule"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

// ScheduleService builds weekly timelines from enrolled offerings.
type ScheduleService struct {
	enrollments EnrollmentStore
	seasons     map[models.Season]bool
	logger      zerolog.Logger
}

// NewScheduleService creates a new schedule service. Only the listed seasons
// are accepted on student schedule lookups.
func NewScheduleService(enrollments EnrollmentStore, seasons []string, logger zerolog.Logger) (*ScheduleService, error) {
	allowed := make(map[models.Season]bool, len(seasons))
	for _, name := range seasons {
		season, err := models.ParseSeason(name)
		if err != nil {
			return nil, err
		}
		allowed[season] = true
	}
	return &ScheduleService{
		enrollments: enrollments,
		seasons:     allowed,
		logger:      logger,
	}, nil
}

// ParseTerm validates a year/season pair from a request.
func (s *ScheduleService) ParseTerm(year int, season string) (models.Term, error) {
	parsed, err := models.ParseSeason(season)
	if err != nil || !s.seasons[parsed] {
		return models.Term{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidSeason, season)
	}
	if year < 1900 || year > 2200 {
		return models.Term{}, apperrors.NewBadRequestError(fmt.Sprintf("year %d is out of range", year))
	}
	return models.Term{Year: year, Season: parsed}, nil
}

// StudentSchedule builds the timeline of a student's offerings in a term.
func (s *ScheduleService) StudentSchedule(ctx context.Context, studentID uuid.UUID, term models.Term) (*dto.ScheduleResponse, error) {
	rows, err := s.enrollments.TermOfferings(ctx, studentID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to load term offerings: %w", err)
	}

	offerings := make([]schedule.Offering, 0, len(rows))
	for _, row := range rows {
		offerings = append(offerings, row.ToScheduleOffering())
	}

	resp := s.build(offerings)
	resp.Year = term.Year
	resp.Season = string(term.Season)

	s.logger.Debug().
		Str("studentID", studentID.String()).
		Str("term", term.String()).
		Int("blocks", len(resp.Blocks)).
		Int("conflicts", len(resp.Conflicts)).
		Msg("Schedule built")

	return resp, nil
}

// Preview builds a timeline from supplied offerings.
func (s *ScheduleService) Preview(offerings []schedule.Offering) *dto.ScheduleResponse {
	return s.build(offerings)
}

func (s *ScheduleService) build(offerings []schedule.Offering) *dto.ScheduleResponse {
	result := schedule.Build(offerings)
	for _, e := range result.Dropped {
		s.logger.Warn().
			Str("offeringID", e.OfferingID).
			Str("course", e.CourseCode).
			Str("field", e.Field).
			Str("value", e.Value).
			Msg("Offering dropped from schedule")
	}
	resp := dto.NewScheduleResponse(result)
	return &resp
}
