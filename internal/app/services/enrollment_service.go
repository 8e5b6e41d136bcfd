package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
)

// EnrollmentService exposes the student<->course relationship as first-class
// enroll/unenroll/list operations rather than a side effect of entity updates.
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentResponse, error)
	Unenroll(ctx context.Context, studentID, courseID int64) error
	GetStudentEnrollments(ctx context.Context, studentID int64) ([]*dto.EnrollmentResponse, error)
	GetCourseEnrollments(ctx context.Context, courseID int64) ([]*dto.EnrollmentResponse, error)
	GetAllEnrollments(ctx context.Context) ([]*dto.EnrollmentResponse, error)
}

type enrollmentService struct {
	studentRepo    StudentStore
	courseRepo     CourseStore
	enrollmentRepo EnrollmentStore
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(studentRepo StudentStore, courseRepo CourseStore, enrollmentRepo EnrollmentStore, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Enroll resolves both ids, records the relationship (idempotently) and
// returns the enrollment view with denormalized names.
func (e *enrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentResponse, error) {
	if _, err := e.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := e.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	if err := e.enrollmentRepo.Add(ctx, studentID, courseID); err != nil {
		return nil, err
	}

	e.logger.Info().Int64("studentId", studentID).Int64("courseId", courseID).Msg("Student enrolled in course")

	enrollment, err := e.enrollmentRepo.GetByPair(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return toEnrollmentResponse(enrollment), nil
}

// Unenroll resolves both ids and removes the relationship. Removing an absent
// pair is a no-op, not an error.
func (e *enrollmentService) Unenroll(ctx context.Context, studentID, courseID int64) error {
	if _, err := e.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}
	if _, err := e.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	if err := e.enrollmentRepo.Remove(ctx, studentID, courseID); err != nil {
		return err
	}

	e.logger.Info().Int64("studentId", studentID).Int64("courseId", courseID).Msg("Student unenrolled from course")
	return nil
}

// GetStudentEnrollments lists all enrollments for a student
func (e *enrollmentService) GetStudentEnrollments(ctx context.Context, studentID int64) ([]*dto.EnrollmentResponse, error) {
	if _, err := e.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	enrollments, err := e.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}

	return toEnrollmentResponses(enrollments), nil
}

// GetCourseEnrollments lists all enrollments for a course
func (e *enrollmentService) GetCourseEnrollments(ctx context.Context, courseID int64) ([]*dto.EnrollmentResponse, error) {
	if _, err := e.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollments, err := e.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrollments: %w", err)
	}

	return toEnrollmentResponses(enrollments), nil
}

// GetAllEnrollments lists every enrollment
func (e *enrollmentService) GetAllEnrollments(ctx context.Context) ([]*dto.EnrollmentResponse, error) {
	enrollments, err := e.enrollmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	return toEnrollmentResponses(enrollments), nil
}

func toEnrollmentResponse(e *models.Enrollment) *dto.EnrollmentResponse {
	return &dto.EnrollmentResponse{
		StudentID:   e.StudentID,
		CourseID:    e.CourseID,
		StudentName: e.StudentName,
		CourseName:  e.CourseName,
		CourseCode:  e.CourseCode,
		EnrolledAt:  e.EnrolledAt.UTC().Format(time.RFC3339),
	}
}

func toEnrollmentResponses(enrollments []*models.Enrollment) []*dto.EnrollmentResponse {
	responses := make([]*dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, toEnrollmentResponse(e))
	}
	return responses
}
