package models

// EnrolledCourse is the projection of a Course the student has joined,
// extended with personal progress.
type EnrolledCourse struct {
	CourseID   string `json:"course_id"`
	Name       string `json:"name"`
	Instructor string `json:"instructor"`
	Credits    int    `json:"credits"`
	Schedule   string `json:"schedule"`
	Room       string `json:"room"`
	Progress   int    `json:"progress"`
	Grade      string `json:"grade"`
}

// EnrollmentSummary totals the student's current registration.
type EnrollmentSummary struct {
	Courses      int `json:"courses"`
	TotalCredits int `json:"total_credits"`
}
