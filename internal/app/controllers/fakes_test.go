package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentms/internal/app/controllers"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/routes"
	"github.com/yigit/studentms/internal/app/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Service fakes with function fields so each test supplies only the behavior
// it needs. Unset methods panic, which surfaces unexpected calls immediately.

type fakeStudentService struct {
	createFn  func(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	getFn     func(ctx context.Context, id int64) (*dto.StudentResponse, error)
	getAllFn  func(ctx context.Context) ([]*dto.StudentResponse, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
	searchFn  func(ctx context.Context, term string) ([]*dto.StudentResponse, error)
	enrollFn  func(ctx context.Context, studentID int64, courseIDs []int64) error
}

func (f *fakeStudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeStudentService) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeStudentService) GetAllStudents(ctx context.Context) ([]*dto.StudentResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeStudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeStudentService) SearchStudents(ctx context.Context, term string) ([]*dto.StudentResponse, error) {
	return f.searchFn(ctx, term)
}

func (f *fakeStudentService) EnrollInCourses(ctx context.Context, studentID int64, courseIDs []int64) error {
	return f.enrollFn(ctx, studentID, courseIDs)
}

type fakeCourseService struct {
	createFn    func(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	getFn       func(ctx context.Context, id int64) (*dto.CourseResponse, error)
	getAllFn    func(ctx context.Context) ([]*dto.CourseResponse, error)
	getActiveFn func(ctx context.Context) ([]*dto.CourseResponse, error)
	updateFn    func(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	deleteFn    func(ctx context.Context, id int64) error
	searchFn    func(ctx context.Context, term string) ([]*dto.CourseResponse, error)
	enrollFn    func(ctx context.Context, courseID int64, studentIDs []int64) error
}

func (f *fakeCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeCourseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeCourseService) GetAllCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeCourseService) GetActiveCourses(ctx context.Context) ([]*dto.CourseResponse, error) {
	return f.getActiveFn(ctx)
}

func (f *fakeCourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeCourseService) SearchCourses(ctx context.Context, term string) ([]*dto.CourseResponse, error) {
	return f.searchFn(ctx, term)
}

func (f *fakeCourseService) EnrollStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	return f.enrollFn(ctx, courseID, studentIDs)
}

type fakeEnrollmentService struct {
	enrollFn      func(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentResponse, error)
	unenrollFn    func(ctx context.Context, studentID, courseID int64) error
	byStudentFn   func(ctx context.Context, studentID int64) ([]*dto.EnrollmentResponse, error)
	byCourseFn    func(ctx context.Context, courseID int64) ([]*dto.EnrollmentResponse, error)
	allFn         func(ctx context.Context) ([]*dto.EnrollmentResponse, error)
}

func (f *fakeEnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*dto.EnrollmentResponse, error) {
	return f.enrollFn(ctx, studentID, courseID)
}

func (f *fakeEnrollmentService) Unenroll(ctx context.Context, studentID, courseID int64) error {
	return f.unenrollFn(ctx, studentID, courseID)
}

func (f *fakeEnrollmentService) GetStudentEnrollments(ctx context.Context, studentID int64) ([]*dto.EnrollmentResponse, error) {
	return f.byStudentFn(ctx, studentID)
}

func (f *fakeEnrollmentService) GetCourseEnrollments(ctx context.Context, courseID int64) ([]*dto.EnrollmentResponse, error) {
	return f.byCourseFn(ctx, courseID)
}

func (f *fakeEnrollmentService) GetAllEnrollments(ctx context.Context) ([]*dto.EnrollmentResponse, error) {
	return f.allFn(ctx)
}

type testServices struct {
	students    *fakeStudentService
	courses     *fakeCourseService
	enrollments *fakeEnrollmentService
}

func newTestRouter(svcs testServices) *gin.Engine {
	if svcs.students == nil {
		svcs.students = &fakeStudentService{}
	}
	if svcs.courses == nil {
		svcs.courses = &fakeCourseService{}
	}
	if svcs.enrollments == nil {
		svcs.enrollments = &fakeEnrollmentService{}
	}

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewStudentController(svcs.students),
		controllers.NewCourseController(svcs.courses),
		controllers.NewEnrollmentController(svcs.enrollments),
		controllers.NewVersionController(services.NewVersionService()),
	)
	return router
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}
