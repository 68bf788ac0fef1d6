package models

// Band is a coarse three-level classification derived from a load ratio. It
// drives status colouring in the consuming UI but carries no rendering detail.
type Band string

const (
	BandLow    Band = "LOW"
	BandMedium Band = "MEDIUM"
	BandHigh   Band = "HIGH"
)

// Bands holds the ratio cutoffs for a classification context. Staff workload
// and course seat occupancy use distinct instances.
type Bands struct {
	High   float64
	Medium float64
}

// Classification is the result of relating a current load to its maximum.
type Classification struct {
	Current int     `json:"current"`
	Max     int     `json:"max"`
	Ratio   float64 `json:"ratio"`
	Band    Band    `json:"band"`
}

// StaffingStatus is the derived TA coverage state of a course.
type StaffingStatus string

const (
	StaffingFullyStaffed StaffingStatus = "FULLY_STAFFED"
	StaffingNeedsTA      StaffingStatus = "NEEDS_TA"
	StaffingUrgent       StaffingStatus = "URGENT"
)
