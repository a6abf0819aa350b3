package model

// CreateStudentRequest holds the raw arguments of the add command.
type CreateStudentRequest struct {
	Name           string `json:"name" validate:"required"`
	Year           string `json:"year" validate:"required,number"`
	Email          string `json:"email" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}
