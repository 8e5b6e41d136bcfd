package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/dberrors"
	"github.com/yigit/studentms/internal/pkg/helpers"
)

// Constraint names from migrations/001_init.sql
const courseCodeConstraint = "courses_course_code_key"

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_code, course_name, description, credits, price, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseCode,
		course.CourseName,
		helpers.GetNullString(course.Description),
		course.Credits,
		course.Price,
		course.StartDate,
		course.EndDate,
		course.IsActive,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseCodeConstraint) {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, course_code, course_name, description, credits, price,
		       start_date, end_date, is_active, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CourseCode,
		&course.CourseName,
		&course.Description,
		&course.Credits,
		&course.Price,
		&course.StartDate,
		&course.EndDate,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetActive retrieves all courses with is_active = true
func (r *CourseRepository) GetActive(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` WHERE is_active = TRUE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Search retrieves courses whose name contains the term, case-insensitively.
// A blank term behaves like GetAll.
func (r *CourseRepository) Search(ctx context.Context, term string) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx,
		courseSelect+` WHERE course_name ILIKE '%' || $1 || '%' ORDER BY id`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// ExistsByCode checks if any course has the given course code
func (r *CourseRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1)`,
		code).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}

	return exists, nil
}

// ExistsByCodeExcept checks if a different course already uses the given code
func (r *CourseRepository) ExistsByCodeExcept(ctx context.Context, code string, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM courses WHERE course_code = $1 AND id != $2)`,
		code, id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code uniqueness: %w", err)
	}

	return exists, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_code = $1, course_name = $2, description = $3, credits = $4,
		    price = $5, start_date = $6, end_date = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.CourseCode,
		course.CourseName,
		helpers.GetNullString(course.Description),
		course.Credits,
		course.Price,
		course.StartDate,
		course.EndDate,
		course.IsActive,
		course.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, courseCodeConstraint) {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Enrollment rows cascade at the storage level.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

const courseSelect = `
	SELECT id, course_code, course_name, description, credits, price,
	       start_date, end_date, is_active, created_at, updated_at
	FROM courses`

func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseCode,
			&course.CourseName,
			&course.Description,
			&course.Credits,
			&course.Price,
			&course.StartDate,
			&course.EndDate,
			&course.IsActive,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
