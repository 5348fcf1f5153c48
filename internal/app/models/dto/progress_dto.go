package dto

import "github.com/yigit/degreepath/internal/domain/curriculum"

// GroupProgressResponse is completion progress over a track or category.
// Percent is measured against the required targets when the grouping has any.
type GroupProgressResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	CompletedCount   int     `json:"completedCount"`
	TotalCount       int     `json:"totalCount"`
	CompletedCredits float64 `json:"completedCredits"`
	TotalCredits     float64 `json:"totalCredits"`
	RequiredCount    int     `json:"requiredCount,omitempty"`
	RequiredCredits  float64 `json:"requiredCredits,omitempty"`
	Percent          int     `json:"percent"`
	Satisfied        bool    `json:"satisfied"`
}

// NewGroupProgressResponse pairs a grouping with its progress.
func NewGroupProgressResponse(g curriculum.Grouping, p curriculum.Progress) GroupProgressResponse {
	return GroupProgressResponse{
		ID:               g.ID,
		Name:             g.Name,
		CompletedCount:   p.CompletedCount,
		TotalCount:       p.TotalCount,
		CompletedCredits: p.CompletedCredits,
		TotalCredits:     p.TotalCredits,
		RequiredCount:    p.RequiredCount,
		RequiredCredits:  p.RequiredCredits,
		Percent:          p.Percent(),
		Satisfied:        p.Satisfied(),
	}
}

// ProgressResponse is a student's full standing against the program.
type ProgressResponse struct {
	StudentID        string                            `json:"studentId,omitempty"`
	States           map[string]curriculum.CourseState `json:"states"`
	Summary          curriculum.Summary                `json:"summary"`
	Tracks           []GroupProgressResponse           `json:"tracks"`
	Categories       []GroupProgressResponse           `json:"categories"`
	InProgress       []string                          `json:"inProgress"`
	Available        []string                          `json:"available"`
	RemainingCredits float64                           `json:"remainingCredits"`
}

// CourseStateResponse is the classification of one course.
type CourseStateResponse struct {
	Code                 string                 `json:"code" example:"CSE340"`
	State                curriculum.CourseState `json:"state" example:"LOCKED"`
	MissingPrerequisites []string               `json:"missingPrerequisites"`
	Unlocks              []string               `json:"unlocks"`
}

// ProgressPreviewRequest classifies against a supplied completion set.
// Unlocks in the response lists what completing CourseCode would newly make
// available.
type ProgressPreviewRequest struct {
	Completed  []string `json:"completed" binding:"dive,required,coursecode"`
	CourseCode string   `json:"courseCode" binding:"omitempty,coursecode"`
}

// ProgressPreviewResponse is the what-if classification.
type ProgressPreviewResponse struct {
	States  map[string]curriculum.CourseState `json:"states"`
	Summary curriculum.Summary                `json:"summary"`
	Course  *CourseStateResponse              `json:"course,omitempty"`
}
