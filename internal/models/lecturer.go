package models

// LecturerStatus marks whether a lecturer takes new assignments.
type LecturerStatus string

// Possible lecturer statuses.
const (
	LecturerStatusActive   LecturerStatus = "ACTIVE"
	LecturerStatusInactive LecturerStatus = "INACTIVE"
)

// Lecturer is a faculty member eligible for course assignment. CourseIDs never
// exceeds MaxCourses.
type Lecturer struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Department      string         `json:"department"`
	Office          string         `json:"office"`
	Specialization  string         `json:"specialization"`
	ExperienceYears int            `json:"experience_years"`
	Status          LecturerStatus `json:"status"`
	CourseIDs       []string       `json:"course_ids"`
	MaxCourses      int            `json:"max_courses"`
}

// Load returns the current assigned-course count.
func (l Lecturer) Load() int {
	return len(l.CourseIDs)
}

// AtCapacity reports whether the lecturer cannot take another course.
func (l Lecturer) AtCapacity() bool {
	return l.Load() >= l.MaxCourses
}

// LecturerView decorates a Lecturer with its workload classification.
type LecturerView struct {
	Lecturer
	Workload Classification `json:"workload"`
}

// LecturerSummary aggregates the faculty roster for the assignment view.
type LecturerSummary struct {
	TotalLecturers    int `json:"total_lecturers"`
	ActiveLecturers   int `json:"active_lecturers"`
	AssignedCourses   int `json:"assigned_courses"`
	UnassignedCourses int `json:"unassigned_courses"`
	TotalCourses      int `json:"total_courses"`
}
