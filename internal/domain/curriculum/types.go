package curriculum

import "math"

// CourseState is the derived classification of a course against a CompletionSet.
type CourseState string

const (
	StateCompleted CourseState = "COMPLETED"
	StateAvailable CourseState = "AVAILABLE"
	StateLocked    CourseState = "LOCKED"
)

// Course is a catalog entry. Prerequisites are course codes in catalog order.
type Course struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       float64  `json:"credits"`
	Department    string   `json:"department"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	Prerequisites []string `json:"prerequisites"`
	Difficulty    *int     `json:"difficulty,omitempty"`    // display only
	WorkloadHours *int     `json:"workloadHours,omitempty"` // display only
}

// CompletionSet is the set of course codes a student has completed.
type CompletionSet map[string]struct{}

// NewCompletionSet builds a set from codes; duplicates collapse.
func NewCompletionSet(codes ...string) CompletionSet {
	set := make(CompletionSet, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

// Has reports whether code is in the set. A nil set is empty.
func (s CompletionSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Len returns the number of codes in the set.
func (s CompletionSet) Len() int {
	return len(s)
}

// With returns a copy of the set with the extra codes added. The receiver is not modified.
func (s CompletionSet) With(codes ...string) CompletionSet {
	out := make(CompletionSet, len(s)+len(codes))
	for code := range s {
		out[code] = struct{}{}
	}
	for _, code := range codes {
		out[code] = struct{}{}
	}
	return out
}

// Grouping is a named subset of courses used only for progress reporting.
// RequiredCount and RequiredCredits are optional targets; zero means every
// listed course is required.
type Grouping struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Codes           []string `json:"courseCodes"`
	RequiredCount   int      `json:"requiredCount,omitempty"`
	RequiredCredits float64  `json:"requiredCredits,omitempty"`
}

// Progress aggregates completion over a grouping.
type Progress struct {
	CompletedCount   int     `json:"completedCount"`
	TotalCount       int     `json:"totalCount"`
	CompletedCredits float64 `json:"completedCredits"`
	TotalCredits     float64 `json:"totalCredits"`
	RequiredCount    int     `json:"requiredCount,omitempty"`
	RequiredCredits  float64 `json:"requiredCredits,omitempty"`
}

// Percent returns completion as a whole percentage, capped at 100. It is
// measured against the course-count target when one is set, else the credit
// target, else every course in the grouping.
func (p Progress) Percent() int {
	switch {
	case p.RequiredCount > 0:
		return percent(min(p.CompletedCount, p.RequiredCount), p.RequiredCount)
	case p.RequiredCredits > 0:
		return creditPercent(min(p.CompletedCredits, p.RequiredCredits), p.RequiredCredits)
	default:
		return percent(p.CompletedCount, p.TotalCount)
	}
}

// Satisfied reports whether the grouping's targets are met. Without targets
// every listed course must be completed.
func (p Progress) Satisfied() bool {
	if p.RequiredCount == 0 && p.RequiredCredits == 0 {
		return p.CompletedCount >= p.TotalCount
	}
	return p.CompletedCount >= p.RequiredCount && p.CompletedCredits+creditEpsilon >= p.RequiredCredits
}

// creditEpsilon absorbs float drift from summing 1.5-credit courses.
const creditEpsilon = 1e-9

func creditPercent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Floor(part/whole*100 + 0.5))
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	// round half up, matching what the dashboard shows
	return (part*200 + whole) / (whole * 2)
}
