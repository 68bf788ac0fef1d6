package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// AssignmentRepository applies staffing transitions. Every operation updates
// both sides of the relationship under the shared lock and re-checks the
// guards there, so a transition either lands whole or not at all.
type AssignmentRepository struct {
	db *DB
}

// NewAssignmentRepository constructs an AssignmentRepository.
func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// AssignLecturer flips the course to ASSIGNED and records the course on the
// lecturer. Fails with ErrNotFound for unknown ids and ErrConflict when the
// course already has a lecturer or the lecturer is at capacity.
func (r *AssignmentRepository) AssignLecturer(ctx context.Context, courseID, lecturerID string) (*models.Course, *models.Lecturer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ci := r.db.courseIndex(courseID)
	li := r.db.lecturerIndex(lecturerID)
	if ci < 0 || li < 0 {
		return nil, nil, ErrNotFound
	}

	course := copyCourse(r.db.courses[ci])
	lecturer := copyLecturer(r.db.lecturers[li])

	if course.Status == models.CourseStatusAssigned {
		return nil, nil, ErrConflict
	}
	if lecturer.AtCapacity() {
		return nil, nil, ErrConflict
	}

	course.LecturerID = &lecturer.ID
	course.Instructor = lecturer.Name
	course.Status = models.CourseStatusAssigned
	lecturer.CourseIDs = append(lecturer.CourseIDs, course.ID)

	r.db.courses[ci] = copyCourse(course)
	r.db.lecturers[li] = copyLecturer(lecturer)
	return &course, &lecturer, nil
}

// ReleaseLecturer reverts an assignment, freeing the lecturer's slot.
func (r *AssignmentRepository) ReleaseLecturer(ctx context.Context, courseID, lecturerID string) (*models.Course, *models.Lecturer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ci := r.db.courseIndex(courseID)
	li := r.db.lecturerIndex(lecturerID)
	if ci < 0 || li < 0 {
		return nil, nil, ErrNotFound
	}

	course := copyCourse(r.db.courses[ci])
	lecturer := copyLecturer(r.db.lecturers[li])

	if course.LecturerID == nil || *course.LecturerID != lecturerID {
		return nil, nil, ErrNotFound
	}

	course.LecturerID = nil
	course.Status = models.CourseStatusUnassigned
	lecturer.CourseIDs = removeString(lecturer.CourseIDs, courseID)

	r.db.courses[ci] = copyCourse(course)
	r.db.lecturers[li] = copyLecturer(lecturer)
	return &course, &lecturer, nil
}

// AssignAssistant increments the course's TA counter and records the course
// on the assistant, flipping the assistant to BUSY when it reaches its cap.
func (r *AssignmentRepository) AssignAssistant(ctx context.Context, courseID, assistantID string) (*models.StaffingRequirement, *models.TeachingAssistant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	si := r.db.staffingIndex(courseID)
	ai := r.db.assistantIndex(assistantID)
	if si < 0 || ai < 0 {
		return nil, nil, ErrNotFound
	}

	req := r.db.staffing[si]
	assistant := copyAssistant(r.db.assistants[ai])

	if containsString(assistant.CourseIDs, courseID) {
		return nil, nil, ErrConflict
	}
	if assistant.AtCapacity() || req.CurrentTAs >= req.RequiredTAs {
		return nil, nil, ErrConflict
	}

	req.CurrentTAs++
	assistant.CourseIDs = append(assistant.CourseIDs, courseID)
	if assistant.AtCapacity() {
		assistant.Status = models.AssistantStatusBusy
	}

	r.db.staffing[si] = req
	r.db.assistants[ai] = copyAssistant(assistant)
	return &req, &assistant, nil
}

// ReleaseAssistant reverts a TA assignment, freeing both the course slot and
// the assistant's capacity.
func (r *AssignmentRepository) ReleaseAssistant(ctx context.Context, courseID, assistantID string) (*models.StaffingRequirement, *models.TeachingAssistant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	si := r.db.staffingIndex(courseID)
	ai := r.db.assistantIndex(assistantID)
	if si < 0 || ai < 0 {
		return nil, nil, ErrNotFound
	}

	req := r.db.staffing[si]
	assistant := copyAssistant(r.db.assistants[ai])

	if !containsString(assistant.CourseIDs, courseID) {
		return nil, nil, ErrNotFound
	}

	if req.CurrentTAs > 0 {
		req.CurrentTAs--
	}
	assistant.CourseIDs = removeString(assistant.CourseIDs, courseID)
	if !assistant.AtCapacity() {
		assistant.Status = models.AssistantStatusAvailable
	}

	r.db.staffing[si] = req
	r.db.assistants[ai] = copyAssistant(assistant)
	return &req, &assistant, nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
