package services

import (
	"context"

	"github.com/yigit/studentms/internal/app/models"
)

// Services defined in this package:
// - StudentService: CRUD and search for students, owns email uniqueness
// - CourseService: CRUD and search for courses, owns course code uniqueness
// - EnrollmentService: first-class enroll/unenroll/list operations
// - VersionService: application version and runtime information

// StudentStore is the persistence surface the student service depends on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, term string) ([]*models.Student, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcept(ctx context.Context, email string, id int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the persistence surface the course service depends on.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetActive(ctx context.Context) ([]*models.Course, error)
	Search(ctx context.Context, term string) ([]*models.Course, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCodeExcept(ctx context.Context, code string, id int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore is the relationship manager surface. Implementations must
// keep both directions of the student<->course association consistent and make
// the batch operations atomic.
type EnrollmentStore interface {
	Add(ctx context.Context, studentID, courseID int64) error
	Remove(ctx context.Context, studentID, courseID int64) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	AddBatchForStudent(ctx context.Context, studentID int64, courseIDs []int64) error
	AddBatchForCourse(ctx context.Context, courseID int64, studentIDs []int64) error
	ReplaceForStudent(ctx context.Context, studentID int64, courseIDs []int64) error
	ReplaceForCourse(ctx context.Context, courseID int64, studentIDs []int64) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	ListAll(ctx context.Context) ([]*models.Enrollment, error)
	CourseIDsForStudent(ctx context.Context, studentID int64) ([]int64, error)
	StudentIDsForCourse(ctx context.Context, courseID int64) ([]int64, error)
	GetByPair(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
}

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"
