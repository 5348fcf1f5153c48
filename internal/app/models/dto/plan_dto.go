package dto

import "github.com/yigit/degreepath/internal/domain/planning"

// SemesterRequest is one planned term.
type SemesterRequest struct {
	Label   string   `json:"label" binding:"required" example:"Y2 Fall"`
	Courses []string `json:"courses" binding:"dive,required,coursecode"`
}

// PlanCheckRequest is a multi-semester plan to check against a student's record.
type PlanCheckRequest struct {
	Semesters []SemesterRequest `json:"semesters" binding:"required,min=1,dive"`
}

// ToSemesters converts the request into planning input.
func (r PlanCheckRequest) ToSemesters() []planning.Semester {
	out := make([]planning.Semester, 0, len(r.Semesters))
	for _, s := range r.Semesters {
		out = append(out, planning.Semester{Label: s.Label, Courses: s.Courses})
	}
	return out
}

// PlanCheckResponse is the plan report plus the credit outlook.
type PlanCheckResponse struct {
	planning.PlanReport
	RemainingCredits float64               `json:"remainingCredits"`
	Estimate         planning.OverloadInfo `json:"estimate"`
}
