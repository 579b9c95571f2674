package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tensorlabs/amaanat/internal/domain"
)

// AccountRepository defines the interface for loan account data operations
type AccountRepository interface {
	// Create inserts a new account
	Create(ctx context.Context, acct *domain.LoanAccount) error

	// GetByID retrieves an account by its id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanAccount, error)

	// GetByAccountNumber retrieves an account by its 16-digit account number
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.LoanAccount, error)

	// Update updates an account
	Update(ctx context.Context, acct *domain.LoanAccount) error

	// Delete removes an account
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns accounts newest first, optionally filtered by a
	// case-insensitive substring match on account number or borrower name
	List(ctx context.Context, search string) ([]domain.LoanAccount, error)
}
