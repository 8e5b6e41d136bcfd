package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentms/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	students *fakeStudentStore
	courses  *fakeCourseStore
	enrolls  *fakeEnrollmentStore
	svc      EnrollmentService
}

func newEnrollmentFixture() *enrollmentFixture {
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	enrolls := newFakeEnrollmentStore(students, courses)
	return &enrollmentFixture{
		students: students,
		courses:  courses,
		enrolls:  enrolls,
		svc:      NewEnrollmentService(students, courses, enrolls, zerolog.Nop()),
	}
}

func TestEnroll(t *testing.T) {
	fx := newEnrollmentFixture()
	student := fx.students.add("Alice", "Johnson", "alice@example.com")
	course := fx.courses.add("CS101", "Intro to Computer Science", true)

	resp, err := fx.svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, student.ID, resp.StudentID)
	assert.Equal(t, course.ID, resp.CourseID)
	assert.Equal(t, "Alice Johnson", resp.StudentName)
	assert.Equal(t, "Intro to Computer Science", resp.CourseName)
	assert.Equal(t, "CS101", resp.CourseCode)
	assert.NotEmpty(t, resp.EnrolledAt)
}

func TestEnrollIdempotent(t *testing.T) {
	fx := newEnrollmentFixture()
	student := fx.students.add("Alice", "Johnson", "alice@example.com")
	course := fx.courses.add("CS101", "Intro to Computer Science", true)

	first, err := fx.svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)
	second, err := fx.svc.Enroll(context.Background(), student.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, first.EnrolledAt, second.EnrolledAt)
	assert.Len(t, fx.enrolls.pairs, 1)
}

func TestEnrollUnknownStudent(t *testing.T) {
	fx := newEnrollmentFixture()
	course := fx.courses.add("CS101", "Intro to Computer Science", true)

	_, err := fx.svc.Enroll(context.Background(), 99, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, fx.enrolls.pairs)
}

func TestEnrollUnknownCourse(t *testing.T) {
	fx := newEnrollmentFixture()
	student := fx.students.add("Alice", "Johnson", "alice@example.com")

	_, err := fx.svc.Enroll(context.Background(), student.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Empty(t, fx.enrolls.pairs)
}

func TestUnenroll(t *testing.T) {
	fx := newEnrollmentFixture()
	student := fx.students.add("Alice", "Johnson", "alice@example.com")
	course := fx.courses.add("CS101", "Intro to Computer Science", true)
	require.NoError(t, fx.enrolls.Add(context.Background(), student.ID, course.ID))

	require.NoError(t, fx.svc.Unenroll(context.Background(), student.ID, course.ID))
	assert.Empty(t, fx.enrolls.pairs)

	// Removing an absent pair is a no-op, not an error.
	require.NoError(t, fx.svc.Unenroll(context.Background(), student.ID, course.ID))
}

func TestUnenrollUnknownCourse(t *testing.T) {
	fx := newEnrollmentFixture()
	student := fx.students.add("Alice", "Johnson", "alice@example.com")

	err := fx.svc.Unenroll(context.Background(), student.ID, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetStudentEnrollments(t *testing.T) {
	fx := newEnrollmentFixture()
	student := fx.students.add("Alice", "Johnson", "alice@example.com")
	c1 := fx.courses.add("CS101", "Intro to Computer Science", true)
	c2 := fx.courses.add("MATH201", "Calculus I for Engineers", true)
	require.NoError(t, fx.enrolls.Add(context.Background(), student.ID, c1.ID))
	require.NoError(t, fx.enrolls.Add(context.Background(), student.ID, c2.ID))

	got, err := fx.svc.GetStudentEnrollments(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CS101", got[0].CourseCode)
	assert.Equal(t, "MATH201", got[1].CourseCode)
}

func TestGetStudentEnrollmentsUnknownStudent(t *testing.T) {
	fx := newEnrollmentFixture()

	_, err := fx.svc.GetStudentEnrollments(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetCourseEnrollments(t *testing.T) {
	fx := newEnrollmentFixture()
	course := fx.courses.add("CS101", "Intro to Computer Science", true)
	s1 := fx.students.add("Alice", "Johnson", "alice@example.com")
	s2 := fx.students.add("Brian", "Smith", "brian@example.com")
	require.NoError(t, fx.enrolls.Add(context.Background(), s1.ID, course.ID))
	require.NoError(t, fx.enrolls.Add(context.Background(), s2.ID, course.ID))

	got, err := fx.svc.GetCourseEnrollments(context.Background(), course.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Johnson", got[0].StudentName)
	assert.Equal(t, "Brian Smith", got[1].StudentName)
}

func TestGetCourseEnrollmentsUnknownCourse(t *testing.T) {
	fx := newEnrollmentFixture()

	_, err := fx.svc.GetCourseEnrollments(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetAllEnrollments(t *testing.T) {
	fx := newEnrollmentFixture()
	s1 := fx.students.add("Alice", "Johnson", "alice@example.com")
	s2 := fx.students.add("Brian", "Smith", "brian@example.com")
	c1 := fx.courses.add("CS101", "Intro to Computer Science", true)
	require.NoError(t, fx.enrolls.Add(context.Background(), s1.ID, c1.ID))
	require.NoError(t, fx.enrolls.Add(context.Background(), s2.ID, c1.ID))

	got, err := fx.svc.GetAllEnrollments(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
