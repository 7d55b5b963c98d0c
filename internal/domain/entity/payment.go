package entity

import "time"

// Payment records a settled transaction. CartIDs lists the cart entries the
// payment covered; those entries are removed from the cart store as part of
// the settlement workflow.
type Payment struct {
	ID            string
	UserEmail     string
	Amount        float64
	Currency      string
	TransactionID string // Identifier returned by the payment processor.
	CartIDs       []string
	MedicineNames []string
	Status        string
	PaidAt        time.Time
}
