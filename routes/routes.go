package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/phucnvzeud/center-x-sub000/handlers"
)

// RegisterCourseRoutes registers course and course-session endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.POST("", hb.Courses.CreateCourseHandler)
		api.GET("", hb.Courses.ListCoursesHandler)
		api.GET("/:id", hb.Courses.GetCourseHandler)
		api.PATCH("/:id", hb.Courses.UpdateCourseHandler)
		api.DELETE("/:id", hb.Courses.DeleteCourseHandler)

		api.GET("/:id/sessions", hb.Courses.GetSessionsHandler)
		api.PUT("/:id/sessions/:sessionId", hb.Courses.UpdateSessionHandler)
		api.POST("/:id/sessions/custom", hb.Courses.AddCustomSessionHandler)
		api.DELETE("/:id/sessions/:sessionId", hb.Courses.DeleteSessionHandler)

		api.GET("/:id/progress", hb.Courses.ProgressHandler)
	}
}

// RegisterKindergartenRoutes registers kindergarten class endpoints.
func RegisterKindergartenRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/kindergarten/classes")
	{
		api.POST("", hb.Kindergarten.CreateClassHandler)
		api.GET("", hb.Kindergarten.ListClassesHandler)
		api.GET("/:id", hb.Kindergarten.GetClassHandler)
		api.PATCH("/:id", hb.Kindergarten.UpdateClassHandler)
		api.DELETE("/:id", hb.Kindergarten.DeleteClassHandler)

		api.GET("/:id/sessions", hb.Kindergarten.GetSessionsHandler)
		api.PUT("/:id/sessions/:sessionId", hb.Kindergarten.UpdateSessionHandler)
		api.POST("/:id/sessions/custom", hb.Kindergarten.AddCustomSessionHandler)
		api.DELETE("/:id/sessions/:sessionId", hb.Kindergarten.DeleteSessionHandler)

		api.GET("/:id/progress", hb.Kindergarten.ProgressHandler)
	}
}

// RegisterHolidayRoutes registers the global holiday calendar endpoints.
func RegisterHolidayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/holidays")
	{
		api.POST("", hb.Holidays.CreateHolidayHandler)
		api.GET("", hb.Holidays.ListHolidaysHandler)
		api.GET("/check", hb.Holidays.CheckHolidaysHandler)
		api.DELETE("/:id", hb.Holidays.DeleteHolidayHandler)

		api.POST("/:id/apply", hb.Holidays.ApplyHolidayHandler)
		api.GET("/:id/apply/results", hb.Holidays.ApplyResultsHandler)
	}
}

// RegisterDirectoryRoutes registers region, branch and school endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	regions := r.Group("/api/regions")
	{
		regions.POST("", hb.Directory.CreateRegionHandler)
		regions.GET("", hb.Directory.ListRegionsHandler)
		regions.DELETE("/:id", hb.Directory.DeleteRegionHandler)
	}
	branches := r.Group("/api/branches")
	{
		branches.POST("", hb.Directory.CreateBranchHandler)
		branches.GET("", hb.Directory.ListBranchesHandler)
		branches.DELETE("/:id", hb.Directory.DeleteBranchHandler)
	}
	schools := r.Group("/api/schools")
	{
		schools.POST("", hb.Directory.CreateSchoolHandler)
		schools.GET("", hb.Directory.ListSchoolsHandler)
		schools.DELETE("/:id", hb.Directory.DeleteSchoolHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CenterX"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCourseRoutes(r, hb)
	RegisterKindergartenRoutes(r, hb)
	RegisterHolidayRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
