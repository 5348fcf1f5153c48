// Package planning checks multi-semester plans against a curriculum graph:
// per-term credit load, prerequisite ordering across terms and overload needs.
package planning

import (
	"math"

	"github.com/yigit/degreepath/internal/domain/curriculum"
)

// Limits are program-level thresholds. They come from the program definition,
// never from the engine.
type Limits struct {
	MaxCreditsPerTerm      float64
	StandardCreditsPerTerm float64
}

// Semester is one planned term.
type Semester struct {
	Label   string   `json:"label"`
	Courses []string `json:"courses"`
}

// Violation names a course whose prerequisites are not completed before the
// semester it is planned in.
type Violation struct {
	Course  string   `json:"course"`
	Missing []string `json:"missing"`
}

// SemesterReport is the outcome for one planned term.
type SemesterReport struct {
	Label            string      `json:"label"`
	Credits          float64     `json:"credits"`
	Overloaded       bool        `json:"overloaded"`
	Unknown          []string    `json:"unknown"`
	AlreadyCompleted []string    `json:"alreadyCompleted"`
	Repeated         []string    `json:"repeated"`
	Violations       []Violation `json:"violations"`
}

// OverloadInfo summarises the overloaded terms of a plan.
type OverloadInfo struct {
	Needed             bool    `json:"needed"`
	Semesters          int     `json:"semesters"`
	CreditsPerSemester float64 `json:"creditsPerSemester"`
}

// PlanReport is the outcome for a whole plan.
type PlanReport struct {
	Semesters    []SemesterReport `json:"semesters"`
	TotalCredits float64          `json:"totalCredits"`
	Overload     OverloadInfo     `json:"overload"`
	Valid        bool             `json:"valid"`
}

// CheckPlan walks the semesters in order. A course's prerequisites count as
// met when they are completed or planned in an earlier semester; a
// prerequisite planned in the same semester does not count.
func CheckPlan(g *curriculum.Graph, completed curriculum.CompletionSet, plan []Semester, limits Limits) PlanReport {
	report := PlanReport{Valid: true, Semesters: make([]SemesterReport, 0, len(plan))}
	satisfied := completed.With()
	planned := make(map[string]bool)

	for _, sem := range plan {
		sr := SemesterReport{
			Label:            sem.Label,
			Unknown:          []string{},
			AlreadyCompleted: []string{},
			Repeated:         []string{},
			Violations:       []Violation{},
		}

		var thisTerm []string
		for _, code := range sem.Courses {
			c, err := g.Course(code)
			if err != nil {
				sr.Unknown = append(sr.Unknown, code)
				continue
			}
			if completed.Has(code) {
				sr.AlreadyCompleted = append(sr.AlreadyCompleted, code)
				continue
			}
			if planned[code] {
				sr.Repeated = append(sr.Repeated, code)
				continue
			}
			planned[code] = true
			sr.Credits += c.Credits

			missing, _ := g.MissingPrerequisites(code, satisfied)
			if len(missing) > 0 {
				sr.Violations = append(sr.Violations, Violation{Course: code, Missing: missing})
			}
			thisTerm = append(thisTerm, code)
		}

		sr.Overloaded = limits.MaxCreditsPerTerm > 0 && sr.Credits > limits.MaxCreditsPerTerm
		if len(sr.Unknown) > 0 || len(sr.Violations) > 0 || len(sr.Repeated) > 0 {
			report.Valid = false
		}

		report.TotalCredits += sr.Credits
		report.Semesters = append(report.Semesters, sr)
		satisfied = satisfied.With(thisTerm...)
	}

	report.Overload = overloadInfo(report.Semesters)
	return report
}

func overloadInfo(semesters []SemesterReport) OverloadInfo {
	var info OverloadInfo
	for _, s := range semesters {
		if !s.Overloaded {
			continue
		}
		info.Needed = true
		info.Semesters++
		info.CreditsPerSemester = math.Max(info.CreditsPerSemester, s.Credits)
	}
	return info
}

// RemainingCredits is the credit shortfall against a program total. Completed
// codes outside the graph are ignored.
func RemainingCredits(g *curriculum.Graph, completed curriculum.CompletionSet, totalCredits float64) float64 {
	earned := 0.0
	for _, c := range g.Courses() {
		if completed.Has(c.Code) {
			earned += c.Credits
		}
	}
	return math.Max(0, totalCredits-earned)
}

// EstimateOverload decides whether the remaining credits fit in terms
// semesters at the standard load. When they do not, it estimates how many
// terms must be overloaded (one extra 3-credit course each) and the even
// per-term load needed.
func EstimateOverload(remaining float64, terms int, limits Limits) OverloadInfo {
	if terms <= 0 || limits.StandardCreditsPerTerm <= 0 {
		return OverloadInfo{}
	}
	standardTotal := float64(terms) * limits.StandardCreditsPerTerm
	if remaining <= standardTotal {
		return OverloadInfo{}
	}
	return OverloadInfo{
		Needed:             true,
		Semesters:          int(math.Ceil((remaining - standardTotal) / 3)),
		CreditsPerSemester: math.Ceil(remaining / float64(terms)),
	}
}
