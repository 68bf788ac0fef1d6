package models

// Student is the profile record behind the student information view. Updates
// replace the whole record.
type Student struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	DateOfBirth      string  `json:"date_of_birth"`
	Program          string  `json:"program"`
	Year             string  `json:"year"`
	GPA              float64 `json:"gpa"`
	EmergencyContact string  `json:"emergency_contact"`
}
