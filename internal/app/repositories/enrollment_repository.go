package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/db"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// EnrollmentRepository owns the student<->course relationship. All mutations of
// the enrollments join table go through this type; both directions are queried
// against the same relation, so the two sides can never drift apart.
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
	}
}

// Add records an enrollment between a student and a course. Adding an
// already-present pair is a no-op.
func (r *EnrollmentRepository) Add(ctx context.Context, studentID, courseID int64) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, course_id) DO NOTHING
	`

	_, err := r.db.Pool.Exec(ctx, query, studentID, courseID)
	if err != nil {
		return fmt.Errorf("error adding enrollment: %w", err)
	}

	return nil
}

// Remove deletes an enrollment. Removing an absent pair is a no-op.
func (r *EnrollmentRepository) Remove(ctx context.Context, studentID, courseID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error removing enrollment: %w", err)
	}

	return nil
}

// Exists checks whether the given (student, course) pair is enrolled
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// AddBatchForStudent enrolls a student in every given course inside one
// transaction. Every course id must resolve; an unresolved id aborts the whole
// batch with no partial state.
func (r *EnrollmentRepository) AddBatchForStudent(ctx context.Context, studentID int64, courseIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := resolveStudentID(ctx, tx, studentID); err != nil {
			return err
		}
		if err := resolveCourseIDs(ctx, tx, courseIDs); err != nil {
			return err
		}
		return insertPairs(ctx, tx, studentID, courseIDs, true)
	})
}

// AddBatchForCourse enrolls every given student in a course inside one
// transaction, with the same all-or-nothing resolution as AddBatchForStudent.
func (r *EnrollmentRepository) AddBatchForCourse(ctx context.Context, courseID int64, studentIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := resolveCourseID(ctx, tx, courseID); err != nil {
			return err
		}
		if err := resolveStudentIDs(ctx, tx, studentIDs); err != nil {
			return err
		}
		return insertPairs(ctx, tx, courseID, studentIDs, false)
	})
}

// ReplaceForStudent clears the student's enrollments and re-adds exactly the
// given course set, atomically. If any course id fails to resolve the current
// set is left untouched.
func (r *EnrollmentRepository) ReplaceForStudent(ctx context.Context, studentID int64, courseIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := resolveStudentID(ctx, tx, studentID); err != nil {
			return err
		}
		if err := resolveCourseIDs(ctx, tx, courseIDs); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error clearing student enrollments: %w", err)
		}

		return insertPairs(ctx, tx, studentID, courseIDs, true)
	})
}

// ReplaceForCourse clears the course's enrollments and re-adds exactly the
// given student set, atomically.
func (r *EnrollmentRepository) ReplaceForCourse(ctx context.Context, courseID int64, studentIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := resolveCourseID(ctx, tx, courseID); err != nil {
			return err
		}
		if err := resolveStudentIDs(ctx, tx, studentIDs); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, courseID); err != nil {
			return fmt.Errorf("error clearing course enrollments: %w", err)
		}

		return insertPairs(ctx, tx, courseID, studentIDs, false)
	})
}

// enrollmentSelect joins both aggregates so each row carries display names.
const enrollmentSelect = `
	SELECT e.student_id, e.course_id, e.enrolled_at,
	       s.first_name || ' ' || s.last_name AS student_name,
	       c.course_name, c.course_code
	FROM enrollments e
	JOIN students s ON s.id = e.student_id
	JOIN courses c ON c.id = e.course_id`

// ListByStudent retrieves all enrollments for a student
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	rows, err := r.db.Pool.Query(ctx,
		enrollmentSelect+` WHERE e.student_id = $1 ORDER BY e.course_id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// ListByCourse retrieves all enrollments for a course
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	rows, err := r.db.Pool.Query(ctx,
		enrollmentSelect+` WHERE e.course_id = $1 ORDER BY e.student_id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// ListAll retrieves every enrollment
func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.Pool.Query(ctx,
		enrollmentSelect+` ORDER BY e.student_id, e.course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// CourseIDsForStudent retrieves the ids of all courses a student is enrolled in
func (r *EnrollmentRepository) CourseIDsForStudent(ctx context.Context, studentID int64) ([]int64, error) {
	return scanIDs(r.db.Pool.Query(ctx,
		`SELECT course_id FROM enrollments WHERE student_id = $1 ORDER BY course_id`, studentID))
}

// StudentIDsForCourse retrieves the ids of all students enrolled in a course
func (r *EnrollmentRepository) StudentIDsForCourse(ctx context.Context, courseID int64) ([]int64, error) {
	return scanIDs(r.db.Pool.Query(ctx,
		`SELECT student_id FROM enrollments WHERE course_id = $1 ORDER BY student_id`, courseID))
}

// GetByPair retrieves a single enrollment view for a (student, course) pair
func (r *EnrollmentRepository) GetByPair(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	var e models.Enrollment
	err := r.db.Pool.QueryRow(ctx,
		enrollmentSelect+` WHERE e.student_id = $1 AND e.course_id = $2`,
		studentID, courseID).Scan(
		&e.StudentID,
		&e.CourseID,
		&e.EnrolledAt,
		&e.StudentName,
		&e.CourseName,
		&e.CourseCode,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &e, nil
}

// resolveStudentID verifies the student exists within the transaction
func resolveStudentID(ctx context.Context, tx pgx.Tx, id int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("error resolving student: %w", err)
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// resolveCourseID verifies the course exists within the transaction
func resolveCourseID(ctx context.Context, tx pgx.Tx, id int64) error {
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("error resolving course: %w", err)
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// resolveCourseIDs verifies every course id exists. Missing ids abort the
// caller's transaction before any mutation happens.
func resolveCourseIDs(ctx context.Context, tx pgx.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var count int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(DISTINCT id) FROM courses WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		return fmt.Errorf("error resolving courses: %w", err)
	}
	if count != len(uniqueIDs(ids)) {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// resolveStudentIDs verifies every student id exists
func resolveStudentIDs(ctx context.Context, tx pgx.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var count int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(DISTINCT id) FROM students WHERE id = ANY($1)`, ids).Scan(&count); err != nil {
		return fmt.Errorf("error resolving students: %w", err)
	}
	if count != len(uniqueIDs(ids)) {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// insertPairs inserts one enrollment row per counterpart id. studentSide
// controls which position fixedID occupies.
func insertPairs(ctx context.Context, tx pgx.Tx, fixedID int64, counterpartIDs []int64, studentSide bool) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, course_id) DO NOTHING
	`

	for _, id := range counterpartIDs {
		studentID, courseID := fixedID, id
		if !studentSide {
			studentID, courseID = id, fixedID
		}
		if _, err := tx.Exec(ctx, query, studentID, courseID); err != nil {
			return fmt.Errorf("error inserting enrollment: %w", err)
		}
	}

	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func scanEnrollments(rows pgx.Rows) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(
			&e.StudentID,
			&e.CourseID,
			&e.EnrolledAt,
			&e.StudentName,
			&e.CourseName,
			&e.CourseCode,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

func scanIDs(rows pgx.Rows, err error) ([]int64, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
