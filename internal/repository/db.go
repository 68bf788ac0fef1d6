package repository

import (
	"errors"
	"sync"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

// Sentinel errors returned by the in-memory stores. Services translate them
// into API errors.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflict")
)

// DB owns every catalog for a session. Catalogs are seeded once at process
// start and kept in insertion order; all access goes through the repositories,
// which share the single lock so cross-catalog updates stay atomic.
type DB struct {
	mu sync.RWMutex

	courses    []models.Course
	enrolled   []models.EnrolledCourse
	lecturers  []models.Lecturer
	assistants []models.TeachingAssistant
	staffing   []models.StaffingRequirement
	fees       []models.Fee
	payments   []models.Payment
	students   []models.Student
}

// Open returns an empty DB. Use Seed for the stock session data.
func Open() *DB {
	return &DB{}
}

func (db *DB) courseIndex(id string) int {
	for i := range db.courses {
		if db.courses[i].ID == id {
			return i
		}
	}
	return -1
}

func (db *DB) lecturerIndex(id string) int {
	for i := range db.lecturers {
		if db.lecturers[i].ID == id {
			return i
		}
	}
	return -1
}

func (db *DB) assistantIndex(id string) int {
	for i := range db.assistants {
		if db.assistants[i].ID == id {
			return i
		}
	}
	return -1
}

func (db *DB) staffingIndex(courseID string) int {
	for i := range db.staffing {
		if db.staffing[i].CourseID == courseID {
			return i
		}
	}
	return -1
}

func (db *DB) enrolledIndex(courseID string) int {
	for i := range db.enrolled {
		if db.enrolled[i].CourseID == courseID {
			return i
		}
	}
	return -1
}

func (db *DB) feeIndex(category string) int {
	for i := range db.fees {
		if db.fees[i].Category == category {
			return i
		}
	}
	return -1
}

func (db *DB) paymentIndex(id string) int {
	for i := range db.payments {
		if db.payments[i].ID == id {
			return i
		}
	}
	return -1
}

func (db *DB) studentIndex(id string) int {
	for i := range db.students {
		if db.students[i].ID == id {
			return i
		}
	}
	return -1
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyCourse(c models.Course) models.Course {
	c.Prerequisites = copyStrings(c.Prerequisites)
	if c.LecturerID != nil {
		id := *c.LecturerID
		c.LecturerID = &id
	}
	return c
}

func copyLecturer(l models.Lecturer) models.Lecturer {
	l.CourseIDs = copyStrings(l.CourseIDs)
	return l
}

func copyAssistant(a models.TeachingAssistant) models.TeachingAssistant {
	a.CourseIDs = copyStrings(a.CourseIDs)
	a.Skills = copyStrings(a.Skills)
	return a
}
