package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetAllCourses(ctx context.Context) ([]*dto.CourseResponse, error)
	GetActiveCourses(ctx context.Context) ([]*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id int64) error
	SearchCourses(ctx context.Context, term string) ([]*dto.CourseResponse, error)
	EnrollStudents(ctx context.Context, courseID int64, studentIDs []int64) error
}

type courseService struct {
	courseRepo     CourseStore
	enrollmentRepo EnrollmentStore
	logger         zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore, enrollmentRepo EnrollmentStore, logger zerolog.Logger) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// CreateCourse persists a new course after checking course code uniqueness.
// Optional student ids establish enrollments once the course row is committed.
func (c *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	exists, err := c.courseRepo.ExistsByCode(ctx, req.CourseCode)
	if err != nil {
		return nil, fmt.Errorf("error checking course code: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCourseCodeAlreadyExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	course := &models.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Description: req.Description,
		Credits:     req.Credits,
		Price:       req.Price,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    isActive,
	}

	if err := c.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	c.logger.Info().Int64("courseId", course.ID).Str("courseCode", course.CourseCode).Msg("Course created")

	if len(req.StudentIDs) > 0 {
		if err := c.enrollmentRepo.AddBatchForCourse(ctx, course.ID, req.StudentIDs); err != nil {
			return nil, err
		}
	}

	return c.toResponse(ctx, course)
}

// GetCourseByID retrieves a course by ID
func (c *courseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := c.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.toResponse(ctx, course)
}

// GetAllCourses retrieves all courses
func (c *courseService) GetAllCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	courses, err := c.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return c.toResponses(ctx, courses)
}

// GetActiveCourses retrieves courses with the isActive flag set
func (c *courseService) GetActiveCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	courses, err := c.courseRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving active courses: %w", err)
	}
	return c.toResponses(ctx, courses)
}

// SearchCourses performs a case-insensitive substring search on course names.
// A blank term behaves like GetAllCourses.
func (c *courseService) SearchCourses(ctx context.Context, term string) ([]*dto.CourseResponse, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return c.GetAllCourses(ctx)
	}

	courses, err := c.courseRepo.Search(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return c.toResponses(ctx, courses)
}

// UpdateCourse applies field updates and, when the request explicitly carries
// a student id set (including an empty one), replaces the course's
// enrollments. An absent set leaves enrollments untouched.
func (c *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	existing, err := c.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if req.CourseCode != existing.CourseCode {
		collides, err := c.courseRepo.ExistsByCodeExcept(ctx, req.CourseCode, id)
		if err != nil {
			return nil, fmt.Errorf("error checking course code: %w", err)
		}
		if collides {
			return nil, apperrors.ErrCourseCodeAlreadyExists
		}
	}

	existing.CourseCode = req.CourseCode
	existing.CourseName = req.CourseName
	existing.Description = req.Description
	existing.Credits = req.Credits
	existing.Price = req.Price
	existing.StartDate = startDate
	existing.EndDate = endDate
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := c.courseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if req.StudentIDs != nil {
		if err := c.enrollmentRepo.ReplaceForCourse(ctx, id, *req.StudentIDs); err != nil {
			return nil, err
		}
	}

	return c.GetCourseByID(ctx, id)
}

// DeleteCourse deletes a course by ID. Enrollment rows are removed by the
// storage-level cascade; the counterpart students are never touched.
func (c *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := c.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	c.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}

// EnrollStudents enrolls every given student in the course as one atomic batch
func (c *courseService) EnrollStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	return c.enrollmentRepo.AddBatchForCourse(ctx, courseID, studentIDs)
}

func (c *courseService) toResponse(ctx context.Context, course *models.Course) (*dto.CourseResponse, error) {
	studentIDs, err := c.enrollmentRepo.StudentIDsForCourse(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course enrollments: %w", err)
	}
	if studentIDs == nil {
		studentIDs = []int64{}
	}

	return &dto.CourseResponse{
		ID:          course.ID,
		CourseCode:  course.CourseCode,
		CourseName:  course.CourseName,
		Description: course.Description,
		Credits:     course.Credits,
		Price:       course.Price,
		StartDate:   formatDate(course.StartDate),
		EndDate:     formatDate(course.EndDate),
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt.Format(dateLayout),
		UpdatedAt:   course.UpdatedAt.Format(dateLayout),
		StudentIDs:  studentIDs,
	}, nil
}

func (c *courseService) toResponses(ctx context.Context, courses []*models.Course) ([]*dto.CourseResponse, error) {
	responses := make([]*dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp, err := c.toResponse(ctx, course)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func parseDateRange(start, end *string) (*time.Time, *time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid startDate", apperrors.ErrValidationFailed)
	}
	endDate, err := parseDate(end)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid endDate", apperrors.ErrValidationFailed)
	}
	return startDate, endDate, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
