package models

// AssistantStatus marks whether a teaching assistant has open slots.
type AssistantStatus string

// Possible assistant statuses.
const (
	AssistantStatusAvailable AssistantStatus = "AVAILABLE"
	AssistantStatusBusy      AssistantStatus = "BUSY"
)

// TeachingAssistant is a graduate student supporting courses. CourseIDs never
// exceeds MaxCourses.
type TeachingAssistant struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Year         string          `json:"year"`
	Department   string          `json:"department"`
	GPA          float64         `json:"gpa"`
	Skills       []string        `json:"skills"`
	Status       AssistantStatus `json:"status"`
	CourseIDs    []string        `json:"course_ids"`
	MaxCourses   int             `json:"max_courses"`
	HoursPerWeek int             `json:"hours_per_week"`
}

// Load returns the current assigned-course count.
func (a TeachingAssistant) Load() int {
	return len(a.CourseIDs)
}

// AtCapacity reports whether the assistant cannot take another course.
func (a TeachingAssistant) AtCapacity() bool {
	return a.Load() >= a.MaxCourses
}

// AssistantView decorates a TeachingAssistant with its workload classification.
type AssistantView struct {
	TeachingAssistant
	Workload Classification `json:"workload"`
}

// StaffingRequirement records TA coverage for a course.
type StaffingRequirement struct {
	CourseID     string `json:"course_id"`
	CourseName   string `json:"course_name"`
	LecturerName string `json:"lecturer_name"`
	Students     int    `json:"students"`
	CurrentTAs   int    `json:"current_tas"`
	RequiredTAs  int    `json:"required_tas"`
	Schedule     string `json:"schedule"`
	LabHours     string `json:"lab_hours"`
}

// Gap returns how many assistants the course still needs.
func (r StaffingRequirement) Gap() int {
	if gap := r.RequiredTAs - r.CurrentTAs; gap > 0 {
		return gap
	}
	return 0
}

// StaffingView decorates a requirement with its derived status.
type StaffingView struct {
	StaffingRequirement
	Status StaffingStatus `json:"status"`
}

// AssistantSummary aggregates the TA roster for the staffing view.
type AssistantSummary struct {
	TotalAssistants     int `json:"total_assistants"`
	AvailableAssistants int `json:"available_assistants"`
	CoursesNeedingTAs   int `json:"courses_needing_tas"`
	TotalHoursPerWeek   int `json:"total_hours_per_week"`
}
