package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName   string  `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string  `json:"lastName" binding:"required,min=2,max=50"`
	Email       string  `json:"email" binding:"required,email"`
	DateOfBirth string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,min=7,max=20"`
	CourseIDs   []int64 `json:"courseIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// UpdateStudentRequest represents student update data.
// CourseIDs is a pointer so an explicitly supplied empty set (clear all
// enrollments) can be told apart from an absent field (leave untouched).
type UpdateStudentRequest struct {
	FirstName   string   `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string   `json:"lastName" binding:"required,min=2,max=50"`
	Email       string   `json:"email" binding:"required,email"`
	DateOfBirth string   `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	PhoneNumber *string  `json:"phoneNumber,omitempty" binding:"omitempty,min=7,max=20"`
	CourseIDs   *[]int64 `json:"courseIds,omitempty" binding:"omitempty,dive,gt=0"`
}

// StudentResponse represents student information returned to clients
type StudentResponse struct {
	ID          int64   `json:"id" example:"1"`
	FirstName   string  `json:"firstName" example:"John"`
	LastName    string  `json:"lastName" example:"Doe"`
	Email       string  `json:"email" example:"john.doe@email.com"`
	DateOfBirth string  `json:"dateOfBirth" example:"2000-05-15"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	CreatedAt   string  `json:"createdAt" example:"2025-01-15"`
	UpdatedAt   string  `json:"updatedAt" example:"2025-01-15"`
	CourseIDs   []int64 `json:"courseIds"`
}

// EnrollInCoursesRequest is the body of the batch enrollment endpoint:
// a plain list of course ids.
type EnrollInCoursesRequest []int64
