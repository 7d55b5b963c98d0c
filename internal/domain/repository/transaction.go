package repository

import "context"

// TransactionManager defines the interface for managing document store transactions.
// It lets the use case layer run the cascading multi-write workflows (seller
// promotion, payment settlement) atomically without depending on the mongo driver.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is aborted. Otherwise, it's committed.
	// All repository operations obtained from the factory share the same session.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// SellerRequestRepo returns a SellerRequestRepository bound to the current transaction.
	SellerRequestRepo() SellerRequestRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository

	// PaymentRepo returns a PaymentRepository bound to the current transaction.
	PaymentRepo() PaymentRepository
}
