package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/middleware"
)

// PlanController checks semester plans
type PlanController struct {
	plans PlanChecker
}

// NewPlanController creates a new PlanController
func NewPlanController(plans PlanChecker) *PlanController {
	return &PlanController{plans: plans}
}

// CheckPlan checks a multi-semester plan against the student's record
// @Summary Check plan
// @Tags plan
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID" Format(uuid)
// @Param request body dto.PlanCheckRequest true "Planned semesters"
// @Success 200 {object} dto.APIResponse{data=dto.PlanCheckResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /students/{studentId}/plan/check [post]
func (c *PlanController) CheckPlan(ctx *gin.Context) {
	studentID, _ := middleware.StudentID(ctx)

	var req dto.PlanCheckRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.plans.Check(ctx.Request.Context(), studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Plan checked"))
}
