package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/pkg/config"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		name    string
		current int
		max     int
		want    models.Band
	}{
		{"high at four of five", 4, 5, models.BandHigh},
		{"medium at three of five", 3, 5, models.BandMedium},
		{"low at two of five", 2, 5, models.BandLow},
		{"low at zero", 0, 5, models.BandLow},
		{"high at full", 5, 5, models.BandHigh},
		{"high boundary inclusive", 8, 10, models.BandHigh},
		{"medium boundary inclusive", 6, 10, models.BandMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cls, err := Classify(tc.current, tc.max, DefaultLoadBands)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cls.Band)
			assert.Equal(t, tc.current, cls.Current)
			assert.Equal(t, tc.max, cls.Max)
		})
	}
}

func TestClassifyInvalidCapacity(t *testing.T) {
	_, err := Classify(1, 0, DefaultLoadBands)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrInvalidCapacity.Code, appErr.Code)

	_, err = Classify(1, -3, DefaultLoadBands)
	require.Error(t, err)

	_, err = Classify(-1, 5, DefaultLoadBands)
	require.Error(t, err)
}

func TestClassifyOverCapacityStaysHigh(t *testing.T) {
	cls, err := Classify(7, 5, DefaultLoadBands)
	require.NoError(t, err)
	assert.Equal(t, models.BandHigh, cls.Band)
	assert.InDelta(t, 1.4, cls.Ratio, 1e-9)
}

func TestBandsFromConfig(t *testing.T) {
	cfg := config.WorkloadConfig{LoadHighRatio: 0.75, SeatMediumRatio: 0.5}

	load := LoadBandsFromConfig(cfg)
	assert.Equal(t, 0.75, load.High)
	assert.Equal(t, DefaultLoadBands.Medium, load.Medium)

	seat := SeatBandsFromConfig(cfg)
	assert.Equal(t, DefaultSeatBands.High, seat.High)
	assert.Equal(t, 0.5, seat.Medium)
}

func TestStaffingStatusFor(t *testing.T) {
	assert.Equal(t, models.StaffingFullyStaffed, StaffingStatusFor(2, 2))
	assert.Equal(t, models.StaffingFullyStaffed, StaffingStatusFor(3, 2))
	assert.Equal(t, models.StaffingFullyStaffed, StaffingStatusFor(0, 0))
	assert.Equal(t, models.StaffingUrgent, StaffingStatusFor(0, 1))
	assert.Equal(t, models.StaffingNeedsTA, StaffingStatusFor(1, 2))
}

func TestSummarizeFees(t *testing.T) {
	fees := []models.Fee{
		{Category: "Tuition Fee", Amount: 15000, Paid: 15000},
		{Category: "Sports Fee", Amount: 1000, Paid: 0},
	}
	summary := SummarizeFees(fees)
	assert.Equal(t, float64(16000), summary.TotalAmount)
	assert.Equal(t, float64(15000), summary.TotalPaid)
	assert.Equal(t, float64(1000), summary.TotalOutstanding)
	assert.Equal(t, 94, summary.PercentPaid)
}

func TestSummarizeFeesEmptyLedger(t *testing.T) {
	summary := SummarizeFees(nil)
	assert.Zero(t, summary.TotalAmount)
	assert.Zero(t, summary.TotalPaid)
	assert.Zero(t, summary.TotalOutstanding)
	assert.Zero(t, summary.PercentPaid)
}

func TestSummarizeEnrollment(t *testing.T) {
	enrolled := []models.EnrolledCourse{
		{CourseID: "CS301", Credits: 4},
		{CourseID: "CS302", Credits: 3},
		{CourseID: "MATH201", Credits: 3},
	}
	summary := SummarizeEnrollment(enrolled)
	assert.Equal(t, 3, summary.Courses)
	assert.Equal(t, 10, summary.TotalCredits)

	assert.Zero(t, SummarizeEnrollment(nil).Courses)
}
