package entity

import "time"

// RequestStatus represents the lifecycle state of a seller onboarding request.
type RequestStatus string

const (
	// RequestPending is the initial state of a freshly submitted request.
	RequestPending RequestStatus = "pending"
	// RequestApproved means an admin accepted the request and the user was promoted.
	RequestApproved RequestStatus = "approved"
	// RequestRejected means an admin declined the request.
	RequestRejected RequestStatus = "rejected"
)

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends the request lifecycle.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// SellerRequest is a user's application to be promoted to the seller role.
// At most one pending request may exist per email; demoting a user back to
// the plain user role erases their request history outright.
type SellerRequest struct {
	ID          string
	Email       string        // Email of the requesting user.
	Name        string        // Display name at the time of the request.
	Message     string        // Free-text justification written by the user.
	Status      RequestStatus
	RequestedAt time.Time
	ProcessedAt *time.Time // Set when an admin approves or rejects the request.
}
