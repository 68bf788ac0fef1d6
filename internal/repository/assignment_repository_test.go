package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-nexus-api/internal/models"
)

func TestAssignLecturerConcurrentSingleWinner(t *testing.T) {
	db := Seed()
	repo := NewAssignmentRepository(db)

	lecturers := []string{"LEC001", "LEC002", "LEC003", "LEC004"}
	var wg sync.WaitGroup
	errs := make([]error, len(lecturers))
	for i, id := range lecturers {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, _, errs[i] = repo.AssignLecturer(context.Background(), "CS402", id)
		}(i, id)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrConflict)
		}
	}
	assert.Equal(t, 1, successes)

	course, err := NewCourseRepository(db).FindByID(context.Background(), "CS402")
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusAssigned, course.Status)
	require.NotNil(t, course.LecturerID)

	// exactly the winning lecturer carries the course
	carriers := 0
	all, err := NewLecturerRepository(db).List(context.Background())
	require.NoError(t, err)
	for _, l := range all {
		for _, cid := range l.CourseIDs {
			if cid == "CS402" {
				carriers++
				assert.Equal(t, *course.LecturerID, l.ID)
			}
		}
	}
	assert.Equal(t, 1, carriers)
}

func TestAssignAssistantRespectsRequirementCap(t *testing.T) {
	db := Seed()
	repo := NewAssignmentRepository(db)

	// CS302 requires one TA; two candidates race for the slot
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"TA001", "TA002"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, _, errs[i] = repo.AssignAssistant(context.Background(), "CS302", id)
		}(i, id)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes)

	req, err := NewAssistantRepository(db).FindStaffingByCourse(context.Background(), "CS302")
	require.NoError(t, err)
	assert.Equal(t, 1, req.CurrentTAs)
}

func TestReleaseLecturerRequiresMatchingAssignment(t *testing.T) {
	db := Seed()
	repo := NewAssignmentRepository(db)

	// CS401 is assigned to LEC004; another lecturer cannot release it
	_, _, err := repo.ReleaseLecturer(context.Background(), "CS401", "LEC001")
	assert.ErrorIs(t, err, ErrNotFound)

	course, lecturer, err := repo.ReleaseLecturer(context.Background(), "CS401", "LEC004")
	require.NoError(t, err)
	assert.Equal(t, models.CourseStatusUnassigned, course.Status)
	assert.NotContains(t, lecturer.CourseIDs, "CS401")
}

func TestRepositoryReadsReturnCopies(t *testing.T) {
	db := Seed()
	lecturers := NewLecturerRepository(db)

	first, err := lecturers.FindByID(context.Background(), "LEC001")
	require.NoError(t, err)
	first.CourseIDs = append(first.CourseIDs, "CS999")

	second, err := lecturers.FindByID(context.Background(), "LEC001")
	require.NoError(t, err)
	assert.NotContains(t, second.CourseIDs, "CS999")
}
