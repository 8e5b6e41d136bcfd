package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/controllers"
	"github.com/yigit/studentms/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	versionController *controllers.VersionController,
) {
	api := router.Group("/api")

	// Student routes
	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.POST("/:id/courses", studentController.EnrollInCourses)
	}

	// Course routes
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/active", courseController.GetActiveCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
		courses.POST("/:id/students", courseController.EnrollStudents)
	}

	// Enrollment routes
	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.POST("/enroll", enrollmentController.Enroll)
		enrollments.DELETE("/unenroll/:studentId/:courseId", enrollmentController.Unenroll)
		enrollments.GET("/student/:studentId", enrollmentController.GetStudentEnrollments)
		enrollments.GET("/course/:courseId", enrollmentController.GetCourseEnrollments)
	}

	// Version info
	api.GET("/version", versionController.GetVersion)

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
