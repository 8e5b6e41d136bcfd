package models

import "time"

// Enrollment represents one (student, course) pairing in the enrollments join table.
// The pair is the identity; a student is enrolled in a course at most once.
type Enrollment struct {
	StudentID  int64     `json:"studentId" db:"student_id" example:"1"`
	CourseID   int64     `json:"courseId" db:"course_id" example:"1"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`

	// Denormalized display fields (populated by join queries)
	StudentName string `json:"studentName,omitempty" example:"John Doe"`
	CourseName  string `json:"courseName,omitempty" example:"Introduction to Computer Science"`
	CourseCode  string `json:"courseCode,omitempty" example:"CS101"`
}
