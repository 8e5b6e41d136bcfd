package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// In-memory store fakes used by the service tests. They mirror the behavior
// of the real repositories closely enough to exercise the service semantics:
// id assignment, sentinel errors and atomic batch resolution.

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
	failWith error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) add(firstName, lastName, email string) *models.Student {
	s := &models.Student{
		ID:          f.nextID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.students[s.ID] = s
	f.nextID++
	return s
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = f.nextID
	student.CreatedAt = time.Now()
	student.UpdatedAt = time.Now()
	f.students[student.ID] = student
	f.nextID++
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) Search(_ context.Context, term string) ([]*models.Student, error) {
	lowered := strings.ToLower(term)
	var out []*models.Student
	for _, s := range f.students {
		if strings.Contains(strings.ToLower(s.FirstName), lowered) ||
			strings.Contains(strings.ToLower(s.LastName), lowered) {
			copied := *s
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range f.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) ExistsByEmailExcept(_ context.Context, email string, id int64) (bool, error) {
	for _, s := range f.students {
		if s.Email == email && s.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	copied.UpdatedAt = time.Now()
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseStore) add(code, name string, active bool) *models.Course {
	c := &models.Course{
		ID:         f.nextID,
		CourseCode: code,
		CourseName: name,
		Credits:    3,
		Price:      100,
		IsActive:   active,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	f.courses[c.ID] = c
	f.nextID++
	return c
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.CourseCode == course.CourseCode {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	course.ID = f.nextID
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	f.courses[course.ID] = course
	f.nextID++
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseStore) GetActive(ctx context.Context) ([]*models.Course, error) {
	all, _ := f.GetAll(ctx)
	var out []*models.Course
	for _, c := range all {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) Search(_ context.Context, term string) ([]*models.Course, error) {
	lowered := strings.ToLower(term)
	var out []*models.Course
	for _, c := range f.courses {
		if strings.Contains(strings.ToLower(c.CourseName), lowered) {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseStore) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, c := range f.courses {
		if c.CourseCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) ExistsByCodeExcept(_ context.Context, code string, id int64) (bool, error) {
	for _, c := range f.courses {
		if c.CourseCode == code && c.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	copied.UpdatedAt = time.Now()
	f.courses[course.ID] = &copied
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

type enrollmentKey struct {
	studentID int64
	courseID  int64
}

type fakeEnrollmentStore struct {
	students *fakeStudentStore
	courses  *fakeCourseStore
	pairs    map[enrollmentKey]time.Time
}

func newFakeEnrollmentStore(students *fakeStudentStore, courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		students: students,
		courses:  courses,
		pairs:    make(map[enrollmentKey]time.Time),
	}
}

func (f *fakeEnrollmentStore) Add(_ context.Context, studentID, courseID int64) error {
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.pairs[key]; !ok {
		f.pairs[key] = time.Now()
	}
	return nil
}

func (f *fakeEnrollmentStore) Remove(_ context.Context, studentID, courseID int64) error {
	delete(f.pairs, enrollmentKey{studentID, courseID})
	return nil
}

func (f *fakeEnrollmentStore) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	_, ok := f.pairs[enrollmentKey{studentID, courseID}]
	return ok, nil
}

func (f *fakeEnrollmentStore) resolve(studentIDs, courseIDs []int64) error {
	for _, id := range studentIDs {
		if _, ok := f.students.students[id]; !ok {
			return apperrors.ErrStudentNotFound
		}
	}
	for _, id := range courseIDs {
		if _, ok := f.courses.courses[id]; !ok {
			return apperrors.ErrCourseNotFound
		}
	}
	return nil
}

func (f *fakeEnrollmentStore) AddBatchForStudent(ctx context.Context, studentID int64, courseIDs []int64) error {
	if err := f.resolve([]int64{studentID}, courseIDs); err != nil {
		return err
	}
	for _, courseID := range courseIDs {
		_ = f.Add(ctx, studentID, courseID)
	}
	return nil
}

func (f *fakeEnrollmentStore) AddBatchForCourse(ctx context.Context, courseID int64, studentIDs []int64) error {
	if err := f.resolve(studentIDs, []int64{courseID}); err != nil {
		return err
	}
	for _, studentID := range studentIDs {
		_ = f.Add(ctx, studentID, courseID)
	}
	return nil
}

func (f *fakeEnrollmentStore) ReplaceForStudent(ctx context.Context, studentID int64, courseIDs []int64) error {
	if err := f.resolve([]int64{studentID}, courseIDs); err != nil {
		return err
	}
	for key := range f.pairs {
		if key.studentID == studentID {
			delete(f.pairs, key)
		}
	}
	for _, courseID := range courseIDs {
		_ = f.Add(ctx, studentID, courseID)
	}
	return nil
}

func (f *fakeEnrollmentStore) ReplaceForCourse(ctx context.Context, courseID int64, studentIDs []int64) error {
	if err := f.resolve(studentIDs, []int64{courseID}); err != nil {
		return err
	}
	for key := range f.pairs {
		if key.courseID == courseID {
			delete(f.pairs, key)
		}
	}
	for _, studentID := range studentIDs {
		_ = f.Add(ctx, studentID, courseID)
	}
	return nil
}

func (f *fakeEnrollmentStore) view(key enrollmentKey) *models.Enrollment {
	e := &models.Enrollment{
		StudentID:  key.studentID,
		CourseID:   key.courseID,
		EnrolledAt: f.pairs[key],
	}
	if s, ok := f.students.students[key.studentID]; ok {
		e.StudentName = s.FirstName + " " + s.LastName
	}
	if c, ok := f.courses.courses[key.courseID]; ok {
		e.CourseName = c.CourseName
		e.CourseCode = c.CourseCode
	}
	return e
}

func (f *fakeEnrollmentStore) sortedKeys() []enrollmentKey {
	keys := make([]enrollmentKey, 0, len(f.pairs))
	for key := range f.pairs {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].studentID != keys[j].studentID {
			return keys[i].studentID < keys[j].studentID
		}
		return keys[i].courseID < keys[j].courseID
	})
	return keys
}

func (f *fakeEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, key := range f.sortedKeys() {
		if key.studentID == studentID {
			out = append(out, f.view(key))
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, key := range f.sortedKeys() {
		if key.courseID == courseID {
			out = append(out, f.view(key))
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListAll(_ context.Context) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, key := range f.sortedKeys() {
		out = append(out, f.view(key))
	}
	return out, nil
}

func (f *fakeEnrollmentStore) CourseIDsForStudent(_ context.Context, studentID int64) ([]int64, error) {
	var out []int64
	for _, key := range f.sortedKeys() {
		if key.studentID == studentID {
			out = append(out, key.courseID)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) StudentIDsForCourse(_ context.Context, courseID int64) ([]int64, error) {
	var out []int64
	for _, key := range f.sortedKeys() {
		if key.courseID == courseID {
			out = append(out, key.studentID)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) GetByPair(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.pairs[key]; !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return f.view(key), nil
}
