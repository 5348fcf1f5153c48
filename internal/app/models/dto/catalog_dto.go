package dto

import "github.com/yigit/degreepath/internal/domain/curriculum"

// CourseResponse is a catalog course with its reverse edges.
type CourseResponse struct {
	Code          string   `json:"code" example:"CSE017"`
	Name          string   `json:"name" example:"Programming and Data Structures"`
	Credits       float64  `json:"credits" example:"3"`
	Department    string   `json:"department" example:"CSE"`
	Category      string   `json:"category" example:"CS Foundations"`
	Description   string   `json:"description,omitempty"`
	Prerequisites []string `json:"prerequisites"`
	Dependents    []string `json:"dependents"`
	Difficulty    *int     `json:"difficulty,omitempty"`
	WorkloadHours *int     `json:"workloadHours,omitempty"`
}

// NewCourseResponse builds a response from a graph course.
func NewCourseResponse(c curriculum.Course, dependents []string) CourseResponse {
	prereqs := c.Prerequisites
	if prereqs == nil {
		prereqs = []string{}
	}
	if dependents == nil {
		dependents = []string{}
	}
	return CourseResponse{
		Code:          c.Code,
		Name:          c.Name,
		Credits:       c.Credits,
		Department:    c.Department,
		Category:      c.Category,
		Description:   c.Description,
		Prerequisites: prereqs,
		Dependents:    dependents,
		Difficulty:    c.Difficulty,
		WorkloadHours: c.WorkloadHours,
	}
}

// TrackResponse is a named group of courses.
type TrackResponse struct {
	ID              string   `json:"id" example:"math"`
	Name            string   `json:"name" example:"Mathematics"`
	Courses         []string `json:"courses"`
	TotalCredits    float64  `json:"totalCredits" example:"11"`
	RequiredCount   int      `json:"requiredCount,omitempty"`
	RequiredCredits float64  `json:"requiredCredits,omitempty"`
}

// ProgramResponse describes the loaded program.
type ProgramResponse struct {
	ID                     string   `json:"id" example:"csb"`
	Name                   string   `json:"name"`
	TotalCredits           float64  `json:"totalCredits" example:"136"`
	MaxCreditsPerTerm      float64  `json:"maxCreditsPerTerm" example:"18"`
	StandardCreditsPerTerm float64  `json:"standardCreditsPerTerm" example:"15"`
	CourseCount            int      `json:"courseCount" example:"34"`
	Categories             []string `json:"categories"`
}
