package services

import (
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/catalog"
	"github.com/yigit/degreepath/internal/domain/planning"
)

// CatalogService serves the loaded program definition.
type CatalogService struct {
	program *catalog.Program
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(program *catalog.Program) *CatalogService {
	return &CatalogService{program: program}
}

// Program describes the program.
func (s *CatalogService) Program() dto.ProgramResponse {
	p := s.program
	return dto.ProgramResponse{
		ID:                     p.ID,
		Name:                   p.Name,
		TotalCredits:           p.TotalCredits,
		MaxCreditsPerTerm:      p.Limits.MaxCreditsPerTerm,
		StandardCreditsPerTerm: p.Limits.StandardCreditsPerTerm,
		CourseCount:            p.Graph.Len(),
		Categories:             p.Graph.Categories().Tags(),
	}
}

// Courses lists every course so that prerequisites come first.
func (s *CatalogService) Courses() []dto.CourseResponse {
	g := s.program.Graph
	order := g.TopologicalOrder()
	out := make([]dto.CourseResponse, 0, len(order))
	for _, code := range order {
		c, err := g.Course(code)
		if err != nil {
			continue
		}
		deps, _ := g.Dependents(code)
		out = append(out, dto.NewCourseResponse(c, deps))
	}
	return out
}

// Course returns a single course or a *curriculum.NotFoundError.
func (s *CatalogService) Course(code string) (dto.CourseResponse, error) {
	g := s.program.Graph
	c, err := g.Course(code)
	if err != nil {
		return dto.CourseResponse{}, err
	}
	deps, _ := g.Dependents(code)
	return dto.NewCourseResponse(c, deps), nil
}

// Tracks lists the program tracks with their credit totals.
func (s *CatalogService) Tracks() []dto.TrackResponse {
	out := make([]dto.TrackResponse, 0, len(s.program.Tracks))
	for _, t := range s.program.Tracks {
		total := 0.0
		for _, code := range t.Codes {
			if c, err := s.program.Graph.Course(code); err == nil {
				total += c.Credits
			}
		}
		out = append(out, dto.TrackResponse{
			ID:              t.ID,
			Name:            t.Name,
			Courses:         t.Codes,
			TotalCredits:    total,
			RequiredCount:   t.RequiredCount,
			RequiredCredits: t.RequiredCredits,
		})
	}
	return out
}

// Template checks the published plan template from a blank record.
func (s *CatalogService) Template() planning.PlanReport {
	return planning.CheckPlan(s.program.Graph, nil, s.program.Template, s.program.Limits)
}
