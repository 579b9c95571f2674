package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tensorlabs/amaanat/internal/domain"
	"github.com/tensorlabs/amaanat/internal/reminder"
	"github.com/tensorlabs/amaanat/internal/repository"
	customError "github.com/tensorlabs/amaanat/pkg/errors"
)

// AccountService owns the loan account register: CRUD, search and the
// dashboard rollup.
type AccountService struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Create stores a new account. The account number must be unused.
func (s *AccountService) Create(ctx context.Context, request *domain.SaveAccountRequest) (*domain.LoanAccount, error) {
	existing, err := s.repo.GetByAccountNumber(ctx, request.AccountNumber)
	if err == nil && existing != nil {
		return nil, customError.WrapAccountAlreadyExists(request.AccountNumber)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	now := time.Now()
	acct := &domain.LoanAccount{
		ID:               uuid.New(),
		AccountNumber:    request.AccountNumber,
		BorrowerName:     request.BorrowerName,
		BorrowerMobile:   request.BorrowerMobile,
		Amount:           request.Amount,
		BankName:         request.BankName,
		DueDate:          request.DueDate,
		Guarantor1Name:   request.Guarantor1Name,
		Guarantor1Mobile: request.Guarantor1Mobile,
		Guarantor2Name:   request.Guarantor2Name,
		Guarantor2Mobile: request.Guarantor2Mobile,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return acct, nil
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*domain.LoanAccount, error) {
	acct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapAccountNotFound(id.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return acct, nil
}

// Update overwrites all editable fields of an existing account.
func (s *AccountService) Update(ctx context.Context, id uuid.UUID, request *domain.SaveAccountRequest) (*domain.LoanAccount, error) {
	acct, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	acct.AccountNumber = request.AccountNumber
	acct.BorrowerName = request.BorrowerName
	acct.BorrowerMobile = request.BorrowerMobile
	acct.Amount = request.Amount
	acct.BankName = request.BankName
	acct.DueDate = request.DueDate
	acct.Guarantor1Name = request.Guarantor1Name
	acct.Guarantor1Mobile = request.Guarantor1Mobile
	acct.Guarantor2Name = request.Guarantor2Name
	acct.Guarantor2Mobile = request.Guarantor2Mobile

	if err := s.repo.Update(ctx, acct); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return acct, nil
}

func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// List returns accounts newest first. A non-empty search matches account
// number or borrower name, case-insensitive.
func (s *AccountService) List(ctx context.Context, search string) ([]domain.LoanAccount, error) {
	accounts, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return accounts, nil
}

// Stats summarizes the register at the given reference date. Principal
// amounts that do not parse as numbers are skipped, not errors: amounts are
// free-text strings everywhere else in the system.
func (s *AccountService) Stats(ctx context.Context, ref time.Time) (*domain.PortfolioStats, error) {
	accounts, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	stats := &domain.PortfolioStats{TotalAccounts: len(accounts)}
	for _, acct := range accounts {
		switch offset := reminder.DayOffset(acct.DueDate, ref); {
		case offset < 0:
			stats.Overdue++
		case offset == 0:
			stats.DueToday++
		default:
			stats.Upcoming++
		}

		if amount, err := decimal.NewFromString(acct.Amount); err == nil {
			stats.TotalPrincipal = stats.TotalPrincipal.Add(amount)
		}
	}

	return stats, nil
}
