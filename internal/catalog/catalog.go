// Package catalog loads a program definition (courses, categories, tracks and
// thresholds) from YAML and builds the curriculum graph for it.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yigit/degreepath/internal/domain/curriculum"
	"github.com/yigit/degreepath/internal/domain/planning"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
	"github.com/yigit/degreepath/internal/pkg/validation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := validation.RegisterRules(v); err != nil {
		panic(err)
	}
	return v
}

// File mirrors the YAML layout of a program definition.
type File struct {
	Program struct {
		ID                     string  `yaml:"id" validate:"required"`
		Name                   string  `yaml:"name" validate:"required"`
		TotalCredits           float64 `yaml:"total_credits" validate:"gt=0"`
		MaxCreditsPerTerm      float64 `yaml:"max_credits_per_term" validate:"gt=0"`
		StandardCreditsPerTerm float64 `yaml:"standard_credits_per_term" validate:"gte=0"`
	} `yaml:"program"`
	Categories   []string           `yaml:"categories" validate:"required,min=1,dive,required"`
	Courses      []CourseEntry      `yaml:"courses" validate:"required,min=1,dive"`
	Tracks       []TrackEntry       `yaml:"tracks" validate:"dive"`
	Requirements []RequirementEntry `yaml:"category_requirements" validate:"dive"`
	PlanTemplate []SemesterEntry    `yaml:"plan_template" validate:"dive"`
}

// CourseEntry is one course in the YAML file.
type CourseEntry struct {
	Code          string   `yaml:"code" validate:"required,coursecode"`
	Name          string   `yaml:"name" validate:"required"`
	Credits       float64  `yaml:"credits" validate:"gt=0"`
	Department    string   `yaml:"department" validate:"required"`
	Category      string   `yaml:"category" validate:"required"`
	Description   string   `yaml:"description"`
	Prerequisites []string `yaml:"prerequisites" validate:"dive,required"`
	Difficulty    *int     `yaml:"difficulty" validate:"omitempty,min=0,max=5"`
	WorkloadHours *int     `yaml:"workload_hours" validate:"omitempty,min=0"`
}

// TrackEntry is an explicit code-list grouping. The required targets are
// optional; zero means every listed course.
type TrackEntry struct {
	ID              string   `yaml:"id" validate:"required"`
	Name            string   `yaml:"name" validate:"required"`
	Courses         []string `yaml:"courses" validate:"required,min=1,dive,required"`
	RequiredCount   int      `yaml:"required_count" validate:"gte=0"`
	RequiredCredits float64  `yaml:"required_credits" validate:"gte=0"`
}

// RequirementEntry sets the targets of one category, e.g. "any 4 technical
// electives".
type RequirementEntry struct {
	Category        string  `yaml:"category" validate:"required"`
	RequiredCount   int     `yaml:"required_count" validate:"gte=0"`
	RequiredCredits float64 `yaml:"required_credits" validate:"gte=0"`
}

// SemesterEntry is one term of the suggested plan template.
type SemesterEntry struct {
	Year    int      `yaml:"year" validate:"min=1"`
	Season  string   `yaml:"season" validate:"oneof=Fall Spring Summer"`
	Label   string   `yaml:"label" validate:"required"`
	Courses []string `yaml:"courses" validate:"dive,required"`
}

// Program is a loaded, validated program definition.
type Program struct {
	ID           string
	Name         string
	TotalCredits float64
	Limits       planning.Limits
	Graph        *curriculum.Graph
	Tracks       []curriculum.Grouping
	Categories   []curriculum.Grouping // registry order, with any targets applied
	Template     []planning.Semester
}

// Load reads and parses a program definition file.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Program from YAML bytes. Structural problems wrap
// apperrors.ErrCatalogInvalid; graph problems are *curriculum.GraphValidationError.
func Parse(data []byte) (*Program, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogInvalid, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCatalogInvalid, describe(err))
	}

	categories, err := curriculum.NewCategoryRegistry(f.Categories...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogInvalid, err)
	}

	courses := make([]curriculum.Course, 0, len(f.Courses))
	for _, c := range f.Courses {
		courses = append(courses, curriculum.Course{
			Code:          c.Code,
			Name:          c.Name,
			Credits:       c.Credits,
			Department:    c.Department,
			Category:      c.Category,
			Description:   c.Description,
			Prerequisites: c.Prerequisites,
			Difficulty:    c.Difficulty,
			WorkloadHours: c.WorkloadHours,
		})
	}

	g, err := curriculum.New(courses, curriculum.WithCategories(categories))
	if err != nil {
		return nil, err
	}

	p := &Program{
		ID:           f.Program.ID,
		Name:         f.Program.Name,
		TotalCredits: f.Program.TotalCredits,
		Limits: planning.Limits{
			MaxCreditsPerTerm:      f.Program.MaxCreditsPerTerm,
			StandardCreditsPerTerm: f.Program.StandardCreditsPerTerm,
		},
		Graph: g,
	}

	seenTracks := make(map[string]bool, len(f.Tracks))
	for _, t := range f.Tracks {
		if seenTracks[t.ID] {
			return nil, fmt.Errorf("%w: duplicate track %q", apperrors.ErrCatalogInvalid, t.ID)
		}
		seenTracks[t.ID] = true
		if err := checkCodes(g, t.Courses); err != nil {
			return nil, fmt.Errorf("%w: track %q: %v", apperrors.ErrCatalogInvalid, t.ID, err)
		}
		track := curriculum.Grouping{
			ID:              t.ID,
			Name:            t.Name,
			Codes:           t.Courses,
			RequiredCount:   t.RequiredCount,
			RequiredCredits: t.RequiredCredits,
		}
		if err := checkTargets(g, track); err != nil {
			return nil, fmt.Errorf("%w: track %q: %v", apperrors.ErrCatalogInvalid, t.ID, err)
		}
		p.Tracks = append(p.Tracks, track)
	}

	p.Categories = g.CategoryGroupings()
	index := make(map[string]int, len(p.Categories))
	for i, c := range p.Categories {
		index[c.ID] = i
	}
	seenReqs := make(map[string]bool, len(f.Requirements))
	for _, r := range f.Requirements {
		i, ok := index[r.Category]
		if !ok {
			return nil, fmt.Errorf("%w: requirement for unknown category %q", apperrors.ErrCatalogInvalid, r.Category)
		}
		if seenReqs[r.Category] {
			return nil, fmt.Errorf("%w: duplicate requirement for category %q", apperrors.ErrCatalogInvalid, r.Category)
		}
		seenReqs[r.Category] = true
		p.Categories[i].RequiredCount = r.RequiredCount
		p.Categories[i].RequiredCredits = r.RequiredCredits
		if err := checkTargets(g, p.Categories[i]); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", apperrors.ErrCatalogInvalid, r.Category, err)
		}
	}

	for _, s := range f.PlanTemplate {
		if err := checkCodes(g, s.Courses); err != nil {
			return nil, fmt.Errorf("%w: plan template %q: %v", apperrors.ErrCatalogInvalid, s.Label, err)
		}
		p.Template = append(p.Template, planning.Semester{Label: s.Label, Courses: s.Courses})
	}

	return p, nil
}

func checkCodes(g *curriculum.Graph, codes []string) error {
	for _, code := range codes {
		if _, err := g.Course(code); err != nil {
			return err
		}
	}
	return nil
}

// checkTargets rejects targets the grouping's own courses cannot reach.
func checkTargets(g *curriculum.Graph, grp curriculum.Grouping) error {
	p, err := g.Progress(grp, nil)
	if err != nil {
		return err
	}
	if grp.RequiredCount > p.TotalCount {
		return fmt.Errorf("required_count %d exceeds the %d listed courses", grp.RequiredCount, p.TotalCount)
	}
	if grp.RequiredCredits > p.TotalCredits {
		return fmt.Errorf("required_credits %v exceeds the %v listed credits", grp.RequiredCredits, p.TotalCredits)
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
