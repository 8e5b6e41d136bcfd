package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                  // Unique identifier for the student record
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`                // Student's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`                   // Student's last name
	Email       string     `json:"email" db:"email" example:"john.doe@email.com"`           // Unique email address
	DateOfBirth time.Time  `json:"dateOfBirth" db:"date_of_birth" example:"2000-05-15"`     // Date of birth
	PhoneNumber *string    `json:"phoneNumber,omitempty" db:"phone_number"`                 // Nullable
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	CourseIDs []int64 `json:"courseIds,omitempty"` // IDs of courses the student is enrolled in
}
