package models

import (
	"time"

	"github.com/yigit/degreepath/internal/domain/curriculum"
)

// Course is a catalog row in the courses table.
type Course struct {
	Code          string    `json:"code" db:"code"`
	Name          string    `json:"name" db:"name"`
	Credits       float64   `json:"credits" db:"credits"`
	Department    string    `json:"department" db:"department"`
	Category      string    `json:"category" db:"category"`
	Description   *string   `json:"description,omitempty" db:"description"` // Nullable
	Prerequisites []string  `json:"prerequisites" db:"prerequisites"`
	Difficulty    *int      `json:"difficulty,omitempty" db:"difficulty"`
	WorkloadHours *int      `json:"workloadHours,omitempty" db:"workload_hours"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseFromCurriculum converts a graph course into a row.
func CourseFromCurriculum(c curriculum.Course) *Course {
	row := &Course{
		Code:          c.Code,
		Name:          c.Name,
		Credits:       c.Credits,
		Department:    c.Department,
		Category:      c.Category,
		Prerequisites: append([]string{}, c.Prerequisites...),
		Difficulty:    c.Difficulty,
		WorkloadHours: c.WorkloadHours,
	}
	if c.Description != "" {
		desc := c.Description
		row.Description = &desc
	}
	return row
}

// ToCurriculum converts the row into a graph course.
func (c *Course) ToCurriculum() curriculum.Course {
	out := curriculum.Course{
		Code:          c.Code,
		Name:          c.Name,
		Credits:       c.Credits,
		Department:    c.Department,
		Category:      c.Category,
		Prerequisites: append([]string{}, c.Prerequisites...),
		Difficulty:    c.Difficulty,
		WorkloadHours: c.WorkloadHours,
	}
	if c.Description != nil {
		out.Description = *c.Description
	}
	return out
}
