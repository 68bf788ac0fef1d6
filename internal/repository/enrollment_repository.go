package repository

import (
	"context"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// EnrollmentRepository manages the student's enrolled-course set. Enroll and
// Drop touch both the enrollment list and the course seat counter under one
// lock, so either both sides change or neither does.
type EnrollmentRepository struct {
	db *DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns the enrolled courses in seeded order.
func (r *EnrollmentRepository) List(ctx context.Context) ([]models.EnrolledCourse, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]models.EnrolledCourse, len(r.db.enrolled))
	copy(out, r.db.enrolled)
	return out, nil
}

// FindByCourse returns the enrollment for the given course.
func (r *EnrollmentRepository) FindByCourse(ctx context.Context, courseID string) (*models.EnrolledCourse, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.enrolledIndex(courseID)
	if idx < 0 {
		return nil, ErrNotFound
	}
	e := r.db.enrolled[idx]
	return &e, nil
}

// Enroll joins the course: the seat counter increments and the enrollment is
// appended. Fails with ErrConflict when already enrolled or the course is
// full, ErrNotFound when the course is unknown.
func (r *EnrollmentRepository) Enroll(ctx context.Context, courseID string) (*models.EnrolledCourse, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.enrolledIndex(courseID) >= 0 {
		return nil, ErrConflict
	}
	idx := r.db.courseIndex(courseID)
	if idx < 0 {
		return nil, ErrNotFound
	}
	course := r.db.courses[idx]
	if course.Full() {
		return nil, ErrConflict
	}

	course.Enrolled++
	r.db.courses[idx] = course

	enrolled := models.EnrolledCourse{
		CourseID:   course.ID,
		Name:       course.Name,
		Instructor: course.Instructor,
		Credits:    course.Credits,
		Schedule:   course.Schedule,
		Room:       course.Room,
	}
	r.db.enrolled = append(r.db.enrolled, enrolled)
	return &enrolled, nil
}

// Drop removes the enrollment and frees the seat. Lecturer and TA counters
// are left untouched.
func (r *EnrollmentRepository) Drop(ctx context.Context, courseID string) (*models.EnrolledCourse, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := r.db.enrolledIndex(courseID)
	if idx < 0 {
		return nil, ErrNotFound
	}
	dropped := r.db.enrolled[idx]
	r.db.enrolled = append(r.db.enrolled[:idx], r.db.enrolled[idx+1:]...)

	if ci := r.db.courseIndex(courseID); ci >= 0 && r.db.courses[ci].Enrolled > 0 {
		course := r.db.courses[ci]
		course.Enrolled--
		r.db.courses[ci] = course
	}
	return &dropped, nil
}
