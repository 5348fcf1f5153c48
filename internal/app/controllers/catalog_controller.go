package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/degreepath/internal/app/models/dto"
	"github.com/yigit/degreepath/internal/middleware"
)

// CatalogController serves the program catalog
type CatalogController struct {
	catalog CatalogReader
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalog CatalogReader) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetProgram returns the program summary
// @Summary Get program
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProgramResponse}
// @Router /catalog/program [get]
func (c *CatalogController) GetProgram(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalog.Program(), "Program retrieved successfully"))
}

// GetCourses lists catalog courses, prerequisites first
// @Summary List courses
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Router /catalog/courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalog.Courses(), "Courses retrieved successfully"))
}

// GetCourse returns one course
// @Summary Get course
// @Tags catalog
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /catalog/courses/{code} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	course, err := c.catalog.Course(ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course retrieved successfully"))
}

// GetTracks lists tracks with credit totals
// @Summary List tracks
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TrackResponse}
// @Router /catalog/tracks [get]
func (c *CatalogController) GetTracks(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalog.Tracks(), "Tracks retrieved successfully"))
}

// GetTemplate checks the published four-year template
// @Summary Check plan template
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=planning.PlanReport}
// @Router /catalog/template [get]
func (c *CatalogController) GetTemplate(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalog.Template(), "Template checked"))
}
