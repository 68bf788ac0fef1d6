package models

// FeeStatus is derived from the paid/amount relation, never stored.
type FeeStatus string

// Possible fee statuses.
const (
	FeeStatusPaid    FeeStatus = "PAID"
	FeeStatusPartial FeeStatus = "PARTIAL"
	FeeStatusPending FeeStatus = "PENDING"
)

// Fee is one ledger line of the student's fee structure. 0 <= Paid <= Amount.
type Fee struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Paid     float64 `json:"paid"`
	DueDate  string  `json:"due_date"`
}

// Outstanding returns the unpaid remainder.
func (f Fee) Outstanding() float64 {
	return f.Amount - f.Paid
}

// StatusWith derives the fee status. partialFloor is the minimum paid amount
// for a fee to count as PARTIAL rather than PENDING.
func (f Fee) StatusWith(partialFloor float64) FeeStatus {
	switch {
	case f.Paid >= f.Amount:
		return FeeStatusPaid
	case f.Paid > partialFloor:
		return FeeStatusPartial
	default:
		return FeeStatusPending
	}
}

// FeeView decorates a Fee with its derived status.
type FeeView struct {
	Fee
	Status FeeStatus `json:"status"`
}

// FeeSummary is the pure reduction over the fee ledger. PercentPaid is a
// rounded whole percentage and defined as 0 for an empty ledger.
type FeeSummary struct {
	TotalAmount      float64 `json:"total_amount"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`
	PercentPaid      int     `json:"percent_paid"`
}
