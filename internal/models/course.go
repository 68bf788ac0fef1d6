package models

// CourseStatus tracks whether a course has a lecturer.
type CourseStatus string

// Possible course lifecycle statuses.
const (
	CourseStatusUnassigned CourseStatus = "UNASSIGNED"
	CourseStatusAssigned   CourseStatus = "ASSIGNED"
)

// Course is a catalog entry offered in a term. Records are replaced whole on
// update, never mutated in place.
type Course struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Instructor    string       `json:"instructor"`
	Credits       int          `json:"credits"`
	Schedule      string       `json:"schedule"`
	Room          string       `json:"room"`
	Enrolled      int          `json:"enrolled"`
	Capacity      int          `json:"capacity"`
	Department    string       `json:"department"`
	Term          string       `json:"term"`
	Prerequisites []string     `json:"prerequisites"`
	Description   string       `json:"description"`
	LecturerID    *string      `json:"lecturer_id,omitempty"`
	Status        CourseStatus `json:"status"`
}

// Full reports whether no seats remain.
func (c Course) Full() bool {
	return c.Enrolled >= c.Capacity
}

// CourseFilter carries catalog search criteria. Empty text matches everything;
// "all" (or empty) department/term act as wildcards.
type CourseFilter struct {
	Query      string
	Department string
	Term       string
}

// CourseView decorates a Course with its derived seat-fill classification.
type CourseView struct {
	Course
	SeatFill Classification `json:"seat_fill"`
}

// CourseSummary counts catalog courses by assignment status.
type CourseSummary struct {
	Total      int `json:"total"`
	Assigned   int `json:"assigned"`
	Unassigned int `json:"unassigned"`
}
