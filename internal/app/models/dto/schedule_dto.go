package dto

import "github.com/yigit/degreepath/internal/domain/schedule"

// ScheduleWarning describes an offering row left off the timeline.
type ScheduleWarning struct {
	OfferingID string `json:"offeringId"`
	CourseCode string `json:"courseCode"`
	Field      string `json:"field" example:"start"`
	Value      string `json:"value" example:"25:00"`
	Message    string `json:"message"`
}

// ScheduleResponse is a weekly timeline with its conflicts.
type ScheduleResponse struct {
	Year         int                               `json:"year,omitempty" example:"2025"`
	Season       string                            `json:"season,omitempty" example:"Fall"`
	Blocks       []schedule.Block                  `json:"blocks"`
	ByDay        map[schedule.Day][]schedule.Block `json:"byDay"`
	Conflicts    []schedule.Conflict               `json:"conflicts"`
	HasConflicts bool                              `json:"hasConflicts"`
	MinutesByDay map[schedule.Day]int              `json:"minutesByDay"`
	Warnings     []ScheduleWarning                 `json:"warnings"`
}

// NewScheduleResponse flattens a schedule result, turning dropped rows into warnings.
func NewScheduleResponse(r schedule.Result) ScheduleResponse {
	resp := ScheduleResponse{
		Blocks:       r.Blocks,
		ByDay:        r.ByDay,
		Conflicts:    r.Conflicts,
		HasConflicts: r.HasConflicts(),
		MinutesByDay: make(map[schedule.Day]int, len(schedule.Weekdays)),
		Warnings:     make([]ScheduleWarning, 0, len(r.Dropped)),
	}
	for _, d := range schedule.Weekdays {
		resp.MinutesByDay[d] = r.TotalMinutes(d)
	}
	for _, e := range r.Dropped {
		resp.Warnings = append(resp.Warnings, ScheduleWarning{
			OfferingID: e.OfferingID,
			CourseCode: e.CourseCode,
			Field:      e.Field,
			Value:      e.Value,
			Message:    e.Error(),
		})
	}
	return resp
}

// SchedulePreviewRequest builds a timeline from supplied offering rows.
type SchedulePreviewRequest struct {
	Offerings []schedule.Offering `json:"offerings" binding:"required"`
}
