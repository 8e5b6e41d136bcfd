package dto

// EnrollmentRequest represents a single enroll operation
type EnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0"`
}

// EnrollmentResponse represents an enrollment view with denormalized names
type EnrollmentResponse struct {
	StudentID   int64  `json:"studentId" example:"1"`
	CourseID    int64  `json:"courseId" example:"1"`
	StudentName string `json:"studentName" example:"John Doe"`
	CourseName  string `json:"courseName" example:"Introduction to Computer Science"`
	CourseCode  string `json:"courseCode" example:"CS101"`
	EnrolledAt  string `json:"enrolledAt" example:"2025-01-15T10:00:00Z"`
}
