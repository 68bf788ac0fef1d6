package service

import (
	"math"

	"github.com/noah-isme/campus-nexus-api/internal/models"
	"github.com/noah-isme/campus-nexus-api/pkg/config"
	appErrors "github.com/noah-isme/campus-nexus-api/pkg/errors"
)

// Default band cutoffs; overridable through config.
var (
	DefaultLoadBands = models.Bands{High: 0.8, Medium: 0.6}
	DefaultSeatBands = models.Bands{High: 0.9, Medium: 0.7}
)

// LoadBandsFromConfig resolves the staff workload cutoffs.
func LoadBandsFromConfig(cfg config.WorkloadConfig) models.Bands {
	bands := DefaultLoadBands
	if cfg.LoadHighRatio > 0 {
		bands.High = cfg.LoadHighRatio
	}
	if cfg.LoadMediumRatio > 0 {
		bands.Medium = cfg.LoadMediumRatio
	}
	return bands
}

// SeatBandsFromConfig resolves the seat occupancy cutoffs.
func SeatBandsFromConfig(cfg config.WorkloadConfig) models.Bands {
	bands := DefaultSeatBands
	if cfg.SeatHighRatio > 0 {
		bands.High = cfg.SeatHighRatio
	}
	if cfg.SeatMediumRatio > 0 {
		bands.Medium = cfg.SeatMediumRatio
	}
	return bands
}

// Classify relates a current load to its maximum. max must be positive and
// current non-negative; the ratio therefore never degenerates to NaN or Inf.
func Classify(current, max int, bands models.Bands) (models.Classification, error) {
	if max <= 0 {
		return models.Classification{}, appErrors.Clone(appErrors.ErrInvalidCapacity, "maximum load must be positive")
	}
	if current < 0 {
		return models.Classification{}, appErrors.Clone(appErrors.ErrInvalidCapacity, "current load must not be negative")
	}

	ratio := float64(current) / float64(max)
	band := models.BandLow
	switch {
	case ratio >= bands.High:
		band = models.BandHigh
	case ratio >= bands.Medium:
		band = models.BandMedium
	}

	return models.Classification{Current: current, Max: max, Ratio: ratio, Band: band}, nil
}

// StaffingStatusFor derives the TA coverage state of a course: URGENT when no
// TA covers a course that needs one, FULLY_STAFFED once the requirement is
// met, NEEDS_TA in between.
func StaffingStatusFor(current, required int) models.StaffingStatus {
	switch {
	case current >= required:
		return models.StaffingFullyStaffed
	case current == 0:
		return models.StaffingUrgent
	default:
		return models.StaffingNeedsTA
	}
}

// SummarizeFees folds the fee ledger into its totals. An empty ledger yields
// all zeros; the percentage is defined as 0 rather than dividing by zero.
func SummarizeFees(fees []models.Fee) models.FeeSummary {
	var summary models.FeeSummary
	for _, fee := range fees {
		summary.TotalAmount += fee.Amount
		summary.TotalPaid += fee.Paid
	}
	summary.TotalOutstanding = summary.TotalAmount - summary.TotalPaid
	if summary.TotalAmount > 0 {
		summary.PercentPaid = int(math.Round(summary.TotalPaid / summary.TotalAmount * 100))
	}
	return summary
}

// SummarizeEnrollment folds the enrolled-course list into counts and credits.
func SummarizeEnrollment(enrolled []models.EnrolledCourse) models.EnrollmentSummary {
	summary := models.EnrollmentSummary{Courses: len(enrolled)}
	for _, course := range enrolled {
		summary.TotalCredits += course.Credits
	}
	return summary
}
