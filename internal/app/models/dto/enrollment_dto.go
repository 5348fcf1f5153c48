package dto

import (
	"github.com/yigit/degreepath/internal/app/models"
	"github.com/yigit/degreepath/internal/pkg/helpers"
)

// RecordEnrollmentRequest records a course taken (or being taken) by a student.
type RecordEnrollmentRequest struct {
	CourseCode string  `json:"courseCode" binding:"required,coursecode" example:"CSE017"`
	OfferingID *string `json:"offeringId" binding:"omitempty,uuid"`
	Completed  bool    `json:"completed"`
	Year       *int    `json:"year" binding:"omitempty,min=1900,max=2200" example:"2025"`
	Season     *string `json:"season" binding:"omitempty,oneof=Fall Spring Summer" example:"Fall"`
	Grade      *string `json:"grade" binding:"omitempty,max=4" example:"A-"`
}

// EnrollmentResponse is a stored enrollment and what it newly unlocked.
type EnrollmentResponse struct {
	Enrollment *models.UserCourse `json:"enrollment"`
	Unlocks    []string           `json:"unlocks"`
}

// EnrollmentListResponse is one page of a student's enrollment history.
type EnrollmentListResponse struct {
	Enrollments []*models.UserCourse `json:"enrollments"`
	Pagination  helpers.Page         `json:"pagination"`
}
