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

// StudentService handles student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context) ([]*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
	SearchStudents(ctx context.Context, term string) ([]*dto.StudentResponse, error)
	EnrollInCourses(ctx context.Context, studentID int64, courseIDs []int64) error
}

type studentService struct {
	studentRepo    StudentStore
	enrollmentRepo EnrollmentStore
	logger         zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, enrollmentRepo EnrollmentStore, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// CreateStudent persists a new student after checking email uniqueness. If the
// request carries course ids the enrollments are established afterwards; a
// resolution failure there surfaces as an error but the student row remains.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateOfBirth", apperrors.ErrValidationFailed)
	}

	exists, err := s.studentRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: dob,
		PhoneNumber: req.PhoneNumber,
	}

	// The storage unique constraint is the authoritative backstop for
	// concurrent creates racing past the pre-check.
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("email", student.Email).Msg("Student created")

	if len(req.CourseIDs) > 0 {
		if err := s.enrollmentRepo.AddBatchForStudent(ctx, student.ID, req.CourseIDs); err != nil {
			return nil, err
		}
	}

	return s.toResponse(ctx, student)
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, student)
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return s.toResponses(ctx, students)
}

// SearchStudents performs a case-insensitive substring search on first and
// last names. A blank term behaves like GetAllStudents.
func (s *studentService) SearchStudents(ctx context.Context, term string) ([]*dto.StudentResponse, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return s.GetAllStudents(ctx)
	}

	students, err := s.studentRepo.Search(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	return s.toResponses(ctx, students)
}

// UpdateStudent applies field updates and, when the request explicitly carries
// a course id set (including an empty one), replaces the student's
// enrollments. An absent set leaves enrollments untouched.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateOfBirth", apperrors.ErrValidationFailed)
	}

	if req.Email != existing.Email {
		collides, err := s.studentRepo.ExistsByEmailExcept(ctx, req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if collides {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Email = req.Email
	existing.DateOfBirth = dob
	existing.PhoneNumber = req.PhoneNumber

	if err := s.studentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if req.CourseIDs != nil {
		if err := s.enrollmentRepo.ReplaceForStudent(ctx, id, *req.CourseIDs); err != nil {
			return nil, err
		}
	}

	return s.GetStudentByID(ctx, id)
}

// DeleteStudent deletes a student by ID. Enrollment rows are removed by the
// storage-level cascade; the counterpart courses are never touched.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

// EnrollInCourses enrolls the student in every given course as one atomic batch
func (s *studentService) EnrollInCourses(ctx context.Context, studentID int64, courseIDs []int64) error {
	return s.enrollmentRepo.AddBatchForStudent(ctx, studentID, courseIDs)
}

func (s *studentService) toResponse(ctx context.Context, student *models.Student) (*dto.StudentResponse, error) {
	courseIDs, err := s.enrollmentRepo.CourseIDsForStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}
	if courseIDs == nil {
		courseIDs = []int64{}
	}

	return &dto.StudentResponse{
		ID:          student.ID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		DateOfBirth: student.DateOfBirth.Format(dateLayout),
		PhoneNumber: student.PhoneNumber,
		CreatedAt:   student.CreatedAt.Format(dateLayout),
		UpdatedAt:   student.UpdatedAt.Format(dateLayout),
		CourseIDs:   courseIDs,
	}, nil
}

func (s *studentService) toResponses(ctx context.Context, students []*models.Student) ([]*dto.StudentResponse, error) {
	responses := make([]*dto.StudentResponse, 0, len(students))
	for _, student := range students {
		resp, err := s.toResponse(ctx, student)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
