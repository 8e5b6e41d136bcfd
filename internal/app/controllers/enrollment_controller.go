package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/services"
	"github.com/yigit/studentms/internal/middleware"
)

// EnrollmentController exposes enrollments as first-class operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Records the enrollment; enrolling an already-enrolled pair is a no-op
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Student and course ids"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment view"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// Unenroll removes a student's enrollment in a course
// @Summary Unenroll a student from a course
// @Description Removes the enrollment; removing an absent pair is a no-op
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 204 "Enrollment removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/unenroll/{studentId}/{courseId} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "Student ID")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId", "Course ID")
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetStudentEnrollments lists enrollments for a student
// @Summary List a student's enrollments
// @Tags enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/student/{studentId} [get]
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId", "Student ID")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetCourseEnrollments lists enrollments for a course
// @Summary List a course's enrollments
// @Tags enrollments
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/course/{courseId} [get]
func (c *EnrollmentController) GetCourseEnrollments(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId", "Course ID")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetCourseEnrollments(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetAllEnrollments lists every enrollment
// @Summary List all enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}
