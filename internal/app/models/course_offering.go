package models

import (
	"github.com/google/uuid"
	"github.com/yigit/degreepath/internal/domain/schedule"
)

// CourseOffering is one section of a course in a given term.
type CourseOffering struct {
	ID             uuid.UUID `json:"id" db:"id"`
	CourseCode     string    `json:"courseCode" db:"course_code"`
	CRN            *string   `json:"crn,omitempty" db:"crn"`
	Section        *string   `json:"section,omitempty" db:"section"`
	Year           int       `json:"year" db:"semester_year"`
	Season         Season    `json:"season" db:"semester_season"`
	MeetingDays    []string  `json:"meetingDays" db:"meeting_days"`
	StartTime      *string   `json:"startTime,omitempty" db:"start_time"`
	EndTime        *string   `json:"endTime,omitempty" db:"end_time"`
	InstructorName *string   `json:"instructorName,omitempty" db:"instructor_name"`
	Location       *string   `json:"location,omitempty" db:"location"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}

// ToScheduleOffering flattens the row for the schedule engine. Null columns
// become empty strings, which the engine treats as unscheduled.
func (o *CourseOffering) ToScheduleOffering() schedule.Offering {
	out := schedule.Offering{
		ID:          o.ID.String(),
		CourseCode:  o.CourseCode,
		Section:     deref(o.Section),
		CRN:         deref(o.CRN),
		Instructor:  deref(o.InstructorName),
		Location:    deref(o.Location),
		MeetingDays: append([]string{}, o.MeetingDays...),
		StartTime:   deref(o.StartTime),
		EndTime:     deref(o.EndTime),
	}
	if o.Course != nil {
		out.CourseName = o.Course.Name
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
