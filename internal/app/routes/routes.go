package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/degreepath/internal/app/controllers"
	"github.com/yigit/degreepath/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	progressController *controllers.ProgressController,
	scheduleController *controllers.ScheduleController,
	planController *controllers.PlanController,
	healthController *controllers.HealthController,
) error {
	if err := middleware.RegisterBindingRules(); err != nil {
		return err
	}

	router.GET("/ping", healthController.Ping)
	router.GET("/health", healthController.Health)

	// API version group
	v1 := router.Group("/api/v1")

	catalog := v1.Group("/catalog")
	{
		catalog.GET("/program", catalogController.GetProgram)
		catalog.GET("/courses", catalogController.GetCourses)
		catalog.GET("/courses/:code", catalogController.GetCourse)
		catalog.GET("/tracks", catalogController.GetTracks)
		catalog.GET("/template", catalogController.GetTemplate)
	}

	// What-if endpoints never touch storage
	v1.POST("/progress/preview", progressController.PreviewProgress)
	v1.POST("/schedule/preview", scheduleController.PreviewSchedule)

	// Student identity comes from the path; authentication is done upstream
	students := v1.Group("/students/:studentId")
	students.Use(middleware.ParseStudentID())
	{
		students.GET("/progress", progressController.GetStudentProgress)
		students.GET("/courses/:code/state", progressController.GetCourseState)
		students.GET("/enrollments", progressController.GetEnrollments)
		students.POST("/enrollments", progressController.RecordEnrollment)
		students.GET("/schedule", scheduleController.GetStudentSchedule)
		students.POST("/plan/check", planController.CheckPlan)
	}

	return nil
}
