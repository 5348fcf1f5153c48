package models

import (
	"time"

	"github.com/google/uuid"
)

// UserCourse is a student's enrollment in, or completion of, a course.
type UserCourse struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	StudentID  uuid.UUID  `json:"studentId" db:"student_id"`
	CourseCode string     `json:"courseCode" db:"course_code"`
	OfferingID *uuid.UUID `json:"offeringId,omitempty" db:"offering_id"`
	Completed  bool       `json:"completed" db:"completed"`
	Year       *int       `json:"year,omitempty" db:"semester_year"`
	Season     *Season    `json:"season,omitempty" db:"semester_season"`
	Grade      *string    `json:"grade,omitempty" db:"grade"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}
