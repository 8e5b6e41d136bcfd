package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

func TestCreateCourseEndpoint(t *testing.T) {
	courses := &fakeCourseService{
		createFn: func(_ context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
			return &dto.CourseResponse{
				ID:         1,
				CourseCode: req.CourseCode,
				CourseName: req.CourseName,
				Credits:    req.Credits,
				Price:      req.Price,
				IsActive:   true,
				StudentIDs: []int64{},
			}, nil
		},
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodPost, "/api/courses", map[string]interface{}{
		"courseCode": "CS101",
		"courseName": "Intro to Computer Science",
		"credits":    4,
		"price":      499.99,
	})

	require.Equal(t, http.StatusCreated, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "CS101", data["courseCode"])
	assert.Equal(t, true, data["isActive"])
}

func TestCreateCourseEndpointValidation(t *testing.T) {
	router := newTestRouter(testServices{})

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"short course code", map[string]interface{}{
			"courseCode": "CS", "courseName": "Intro to Computer Science", "credits": 4, "price": 499.99,
		}},
		{"short course name", map[string]interface{}{
			"courseCode": "CS101", "courseName": "Math", "credits": 4, "price": 499.99,
		}},
		{"credits out of range", map[string]interface{}{
			"courseCode": "CS101", "courseName": "Intro to Computer Science", "credits": 9, "price": 499.99,
		}},
		{"non-positive price", map[string]interface{}{
			"courseCode": "CS101", "courseName": "Intro to Computer Science", "credits": 4, "price": -1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := perform(t, router, http.MethodPost, "/api/courses", tt.body)
			require.Equal(t, http.StatusBadRequest, recorder.Code)
			envelope := decodeEnvelope(t, recorder)
			errDetail := envelope["error"].(map[string]interface{})
			assert.Equal(t, "VAL_001", errDetail["code"])
		})
	}
}

func TestCreateCourseEndpointDuplicateCode(t *testing.T) {
	courses := &fakeCourseService{
		createFn: func(_ context.Context, _ *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
			return nil, apperrors.ErrCourseCodeAlreadyExists
		},
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodPost, "/api/courses", map[string]interface{}{
		"courseCode": "CS101",
		"courseName": "Intro to Computer Science",
		"credits":    4,
		"price":      499.99,
	})

	require.Equal(t, http.StatusConflict, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "RES_002", errDetail["code"])
	assert.Equal(t, "courseCode", errDetail["field"])
}

func TestGetCourseByIDEndpointNotFound(t *testing.T) {
	courses := &fakeCourseService{
		getFn: func(_ context.Context, _ int64) (*dto.CourseResponse, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodGet, "/api/courses/42", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "RES_001", errDetail["code"])
	assert.Equal(t, "Course not found", errDetail["message"])
}

func TestGetActiveCoursesEndpoint(t *testing.T) {
	courses := &fakeCourseService{
		getActiveFn: func(_ context.Context) ([]*dto.CourseResponse, error) {
			return []*dto.CourseResponse{
				{ID: 1, CourseCode: "CS101", IsActive: true, StudentIDs: []int64{}},
			}, nil
		},
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodGet, "/api/courses/active", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeEnvelope(t, recorder)
	assert.Len(t, envelope["data"], 1)
}

func TestDeleteCourseEndpoint(t *testing.T) {
	courses := &fakeCourseService{
		deleteFn: func(_ context.Context, _ int64) error { return nil },
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodDelete, "/api/courses/3", nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestEnrollStudentsEndpoint(t *testing.T) {
	var gotCourse int64
	var gotStudents []int64
	courses := &fakeCourseService{
		enrollFn: func(_ context.Context, courseID int64, studentIDs []int64) error {
			gotCourse = courseID
			gotStudents = studentIDs
			return nil
		},
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodPost, "/api/courses/9/students", []int64{1, 2})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(9), gotCourse)
	assert.Equal(t, []int64{1, 2}, gotStudents)
}

func TestEnrollStudentsEndpointUnknownStudent(t *testing.T) {
	courses := &fakeCourseService{
		enrollFn: func(_ context.Context, _ int64, _ []int64) error {
			return apperrors.ErrStudentNotFound
		},
	}
	router := newTestRouter(testServices{courses: courses})

	recorder := perform(t, router, http.MethodPost, "/api/courses/9/students", []int64{99})
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
