package models

// PaymentStatus tracks settlement of a recorded payment.
type PaymentStatus string

// Possible payment statuses.
const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusPending   PaymentStatus = "PENDING"
)

// Payment is one entry in the payment history ledger. Receipt is empty until
// the payment settles.
type Payment struct {
	ID       string        `json:"id"`
	Date     string        `json:"date"`
	Category string        `json:"category"`
	Amount   float64       `json:"amount"`
	Method   string        `json:"method"`
	Status   PaymentStatus `json:"status"`
	Receipt  string        `json:"receipt,omitempty"`
}
