package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/middleware"
	"github.com/yigit/degreepath/internal/pkg/apperrors"
)

// ScheduleController serves weekly timelines
type ScheduleController struct {
	schedule ScheduleBuilder
	maxItems int
}

// NewScheduleController creates a new ScheduleController. maxItems caps the
// offerings of a preview request.
func NewScheduleController(schedule ScheduleBuilder, maxItems int) *ScheduleController {
	return &ScheduleController{schedule: schedule, maxItems: maxItems}
}

// GetStudentSchedule builds a student's timeline for a term
// @Summary Get student schedule
// @Tags schedule
// @Produce json
// @Param studentId path string true "Student ID" Format(uuid)
// @Param year query int true "Semester year"
// @Param season query string true "Semester season" Enums(Fall, Spring, Summer)
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse}
// @Failure 400 {object} dto.APIResponse "Invalid term"
// @Router /students/{studentId}/schedule [get]
func (c *ScheduleController) GetStudentSchedule(ctx *gin.Context) {
	studentID, _ := middleware.StudentID(ctx)

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("year query parameter must be a number"))
		return
	}
	term, err := c.schedule.ParseTerm(year, ctx.Query("season"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.schedule.StudentSchedule(ctx.Request.Context(), studentID, term)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Schedule built"))
}

// PreviewSchedule builds a timeline from supplied offerings
// @Summary Preview schedule
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body dto.SchedulePreviewRequest true "Offerings"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /schedule/preview [post]
func (c *ScheduleController) PreviewSchedule(ctx *gin.Context) {
	var req dto.SchedulePreviewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if len(req.Offerings) > c.maxItems {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(fmt.Sprintf("at most %d offerings are accepted", c.maxItems)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.schedule.Preview(req.Offerings), "Schedule built"))
}
