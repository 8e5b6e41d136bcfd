package models

import "time"

// Course represents a course offered in the catalog.
type Course struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	CourseCode  string     `json:"courseCode" db:"course_code" example:"CS101"` // Unique course code
	CourseName  string     `json:"courseName" db:"course_name" example:"Introduction to Computer Science"`
	Description *string    `json:"description,omitempty" db:"description"` // Nullable
	Credits     int        `json:"credits" db:"credits" example:"3"`       // 1 to 6 inclusive
	Price       float64    `json:"price" db:"price" example:"299.99"`      // Strictly positive
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`    // Nullable
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`        // Nullable
	IsActive    bool       `json:"isActive" db:"is_active"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	StudentIDs []int64 `json:"studentIds,omitempty"` // IDs of students enrolled in the course
}
