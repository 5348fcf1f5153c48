package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/middleware"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
	"github.com/yigit/degreepath/internal/pkg/helpers"
)

// ProgressController handles course states and enrollments
type ProgressController struct {
	progress ProgressReader
	maxItems int
}

// NewProgressController creates a new ProgressController. maxItems caps the
// completion list of a preview request.
func NewProgressController(progress ProgressReader, maxItems int) *ProgressController {
	return &ProgressController{progress: progress, maxItems: maxItems}
}

// GetStudentProgress returns a student's standing
// @Summary Get student progress
// @Tags progress
// @Produce json
// @Param studentId path string true "Student ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ProgressResponse}
// @Failure 400 {object} dto.APIResponse "Invalid student ID"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /students/{studentId}/progress [get]
func (c *ProgressController) GetStudentProgress(ctx *gin.Context) {
	studentID, _ := middleware.StudentID(ctx)

	resp, err := c.progress.StudentProgress(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Progress retrieved successfully"))
}

// GetCourseState classifies one course for a student
// @Summary Get course state
// @Tags progress
// @Produce json
// @Param studentId path string true "Student ID" Format(uuid)
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseStateResponse}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /students/{studentId}/courses/{code}/state [get]
func (c *ProgressController) GetCourseState(ctx *gin.Context) {
	studentID, _ := middleware.StudentID(ctx)

	resp, err := c.progress.CourseState(ctx.Request.Context(), studentID, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Course state retrieved successfully"))
}

// PreviewProgress classifies against a supplied completion set
// @Summary What-if progress
// @Tags progress
// @Accept json
// @Produce json
// @Param request body dto.ProgressPreviewRequest true "Completed courses"
// @Success 200 {object} dto.APIResponse{data=dto.ProgressPreviewResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /progress/preview [post]
func (c *ProgressController) PreviewProgress(ctx *gin.Context) {
	var req dto.ProgressPreviewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if len(req.Completed) > c.maxItems {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(fmt.Sprintf("at most %d completed courses are accepted", c.maxItems)))
		return
	}

	resp, err := c.progress.Preview(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Preview computed"))
}

// RecordEnrollment stores a course taken by a student
// @Summary Record enrollment
// @Tags progress
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID" Format(uuid)
// @Param request body dto.RecordEnrollmentRequest true "Enrollment"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 409 {object} dto.APIResponse "Already recorded for this term"
// @Router /students/{studentId}/enrollments [post]
func (c *ProgressController) RecordEnrollment(ctx *gin.Context) {
	studentID, _ := middleware.StudentID(ctx)

	var req dto.RecordEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.progress.RecordEnrollment(ctx.Request.Context(), studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp, "Enrollment recorded"))
}

// GetEnrollments lists a student's enrollment history
// @Summary List enrollments
// @Tags progress
// @Produce json
// @Param studentId path string true "Student ID" Format(uuid)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse}
// @Router /students/{studentId}/enrollments [get]
func (c *ProgressController) GetEnrollments(ctx *gin.Context) {
	studentID, _ := middleware.StudentID(ctx)
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.progress.Enrollments(ctx.Request.Context(), studentID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Enrollments retrieved successfully"))
}
