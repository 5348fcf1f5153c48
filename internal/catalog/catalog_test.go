package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/degreepath/internal/domain/curriculum"
	"github.com/yigit/degreepath/internal/domain/planning"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

const csbPath = "../../configs/catalog/csb.yaml"

func TestLoad_CSBProgram(t *testing.T) {
	p, err := Load(csbPath)
	require.NoError(t, err)

	assert.Equal(t, "csb", p.ID)
	assert.InDelta(t, 136, p.TotalCredits, 1e-9)
	assert.Equal(t, planning.Limits{MaxCreditsPerTerm: 18, StandardCreditsPerTerm: 15}, p.Limits)
	assert.Equal(t, 34, p.Graph.Len())
	assert.Len(t, p.Tracks, 8)
	assert.Len(t, p.Template, 8)

	bus003, err := p.Graph.Course("BUS003")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, bus003.Credits, 1e-9)

	math := p.Tracks[0]
	require.Equal(t, "math", math.ID)
	prog, err := p.Graph.Progress(math, curriculum.NewCompletionSet("MATH021"))
	require.NoError(t, err)
	assert.Equal(t, curriculum.Progress{CompletedCount: 1, TotalCount: 3, CompletedCredits: 4, TotalCredits: 11}, prog)

	require.Len(t, p.Categories, 6)
	assert.Equal(t, "Mathematics", p.Categories[0].ID)
}

func TestParse_RequirementTargets(t *testing.T) {
	doc := `
program: {id: p, name: P, total_credits: 12, max_credits_per_term: 18}
categories: [Major, Elective]
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
  - {code: E1, name: E1, credits: 3, department: D, category: Elective}
  - {code: E2, name: E2, credits: 3, department: D, category: Elective}
  - {code: E3, name: E3, credits: 3, department: D, category: Elective}
tracks:
  - {id: any-two, name: Any Two, courses: [E1, E2, E3], required_count: 2}
category_requirements:
  - {category: Elective, required_credits: 6}
`
	p, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, p.Tracks, 1)
	assert.Equal(t, 2, p.Tracks[0].RequiredCount)

	require.Len(t, p.Categories, 2)
	assert.Zero(t, p.Categories[0].RequiredCredits)
	assert.InDelta(t, 6, p.Categories[1].RequiredCredits, 1e-9)

	prog, err := p.Graph.Progress(p.Categories[1], curriculum.NewCompletionSet("E1", "E3"))
	require.NoError(t, err)
	assert.Equal(t, 100, prog.Percent())
	assert.True(t, prog.Satisfied())

	prog, err = p.Graph.Progress(p.Tracks[0], curriculum.NewCompletionSet("E2"))
	require.NoError(t, err)
	assert.Equal(t, 50, prog.Percent())
	assert.False(t, prog.Satisfied())
}

func TestLoad_CSBEntryCourses(t *testing.T) {
	p, err := Load(csbPath)
	require.NoError(t, err)

	states := p.Graph.ClassifyAll(curriculum.NewCompletionSet())
	for _, code := range []string{"MATH021", "CSE007", "CSE252", "BUS001", "ECO001", "ACCT151", "MGT043"} {
		assert.Equal(t, curriculum.StateAvailable, states[code], code)
	}
	assert.Equal(t, curriculum.StateLocked, states["MGT301"])
}

func TestLoad_CSBTemplateCheck(t *testing.T) {
	p, err := Load(csbPath)
	require.NoError(t, err)

	report := planning.CheckPlan(p.Graph, nil, p.Template, p.Limits)

	// the published template takes BUS003 alongside BUS001 and lists FIN125 twice
	assert.False(t, report.Valid)
	assert.Equal(t, []planning.Violation{{Course: "BUS003", Missing: []string{"BUS001"}}}, report.Semesters[0].Violations)
	assert.Equal(t, []string{"FIN125"}, report.Semesters[5].Repeated)
	assert.True(t, report.Semesters[1].Overloaded)
	assert.InDelta(t, 101, report.TotalCredits, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	base := `
program: {id: p, name: P, total_credits: 10, max_credits_per_term: 18}
categories: [Major]
`
	tests := []struct {
		name   string
		yaml   string
		target error
	}{
		{"malformed yaml", "program: [", apperrors.ErrCatalogInvalid},
		{"no courses", base, apperrors.ErrCatalogInvalid},
		{"zero credits", base + `
courses:
  - {code: A1, name: A, credits: 0, department: D, category: Major}
`, apperrors.ErrCatalogInvalid},
		{"non alphanumeric code", base + `
courses:
  - {code: "A 1", name: A, credits: 3, department: D, category: Major}
`, apperrors.ErrCatalogInvalid},
		{"unknown category", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: HSS}
`, apperrors.ErrGraphValidation},
		{"cycle", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major, prerequisites: [B1]}
  - {code: B1, name: B, credits: 3, department: D, category: Major, prerequisites: [A1]}
`, apperrors.ErrGraphValidation},
		{"duplicate", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
  - {code: A1, name: A, credits: 3, department: D, category: Major}
`, apperrors.ErrGraphValidation},
		{"track with unknown course", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
tracks:
  - {id: t, name: T, courses: [A1, Z9]}
`, apperrors.ErrCatalogInvalid},
		{"duplicate track", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
tracks:
  - {id: t, name: T, courses: [A1]}
  - {id: t, name: T2, courses: [A1]}
`, apperrors.ErrCatalogInvalid},
		{"unreachable track count", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
tracks:
  - {id: t, name: T, courses: [A1], required_count: 2}
`, apperrors.ErrCatalogInvalid},
		{"negative track credits", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
tracks:
  - {id: t, name: T, courses: [A1], required_credits: -1}
`, apperrors.ErrCatalogInvalid},
		{"requirement for unknown category", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
category_requirements:
  - {category: HSS, required_count: 1}
`, apperrors.ErrCatalogInvalid},
		{"unreachable category credits", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
category_requirements:
  - {category: Major, required_credits: 4}
`, apperrors.ErrCatalogInvalid},
		{"duplicate category requirement", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
category_requirements:
  - {category: Major, required_count: 1}
  - {category: Major, required_count: 1}
`, apperrors.ErrCatalogInvalid},
		{"bad season", base + `
courses:
  - {code: A1, name: A, credits: 3, department: D, category: Major}
plan_template:
  - {year: 1, season: Winter, label: W, courses: [A1]}
`, apperrors.ErrCatalogInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}
