package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required,min=3,max=10"`
	CourseName  string  `json:"courseName" binding:"required,min=5,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	Credits     int     `json:"credits" binding:"required,min=1,max=6"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	StartDate   *string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"isActive,omitempty"`
	StudentIDs  []int64 `json:"studentIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// UpdateCourseRequest represents course update data.
// StudentIDs follows the same present/absent semantics as
// UpdateStudentRequest.CourseIDs.
type UpdateCourseRequest struct {
	CourseCode  string   `json:"courseCode" binding:"required,min=3,max=10"`
	CourseName  string   `json:"courseName" binding:"required,min=5,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=500"`
	Credits     int      `json:"credits" binding:"required,min=1,max=6"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	StartDate   *string  `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string  `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool    `json:"isActive,omitempty"`
	StudentIDs  *[]int64 `json:"studentIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// CourseResponse represents course information returned to clients
type CourseResponse struct {
	ID          int64   `json:"id" example:"1"`
	CourseCode  string  `json:"courseCode" example:"CS101"`
	CourseName  string  `json:"courseName" example:"Introduction to Computer Science"`
	Description *string `json:"description,omitempty"`
	Credits     int     `json:"credits" example:"3"`
	Price       float64 `json:"price" example:"299.99"`
	StartDate   *string `json:"startDate,omitempty" example:"2025-09-01"`
	EndDate     *string `json:"endDate,omitempty" example:"2025-12-20"`
	IsActive    bool    `json:"isActive" example:"true"`
	CreatedAt   string  `json:"createdAt" example:"2025-01-15"`
	UpdatedAt   string  `json:"updatedAt" example:"2025-01-15"`
	StudentIDs  []int64 `json:"studentIds"`
}

// EnrollStudentsRequest is the body of the batch enrollment endpoint on the
// course side: a plain list of student ids.
type EnrollStudentsRequest []int64
