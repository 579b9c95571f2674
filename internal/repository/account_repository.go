package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tensorlabs/amaanat/internal/domain"
)

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, acct *domain.LoanAccount) error {
	query := `
		INSERT INTO accounts (id, account_number, borrower_name, borrower_mobile, amount, bank_name, due_date,
			guarantor1_name, guarantor1_mobile, guarantor2_name, guarantor2_mobile, created_at, updated_at)
		VALUES (:id, :account_number, :borrower_name, :borrower_mobile, :amount, :bank_name, :due_date,
			:guarantor1_name, :guarantor1_mobile, :guarantor2_name, :guarantor2_mobile, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, acct)
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LoanAccount, error) {
	query := `
		SELECT id, account_number, borrower_name, borrower_mobile, amount, bank_name, due_date,
			guarantor1_name, guarantor1_mobile, guarantor2_name, guarantor2_mobile, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var acct domain.LoanAccount
	if err := r.db.GetContext(ctx, &acct, query, id); err != nil {
		return nil, err
	}

	return &acct, nil
}

func (r *accountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.LoanAccount, error) {
	query := `
		SELECT id, account_number, borrower_name, borrower_mobile, amount, bank_name, due_date,
			guarantor1_name, guarantor1_mobile, guarantor2_name, guarantor2_mobile, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
	`

	var acct domain.LoanAccount
	if err := r.db.GetContext(ctx, &acct, query, accountNumber); err != nil {
		return nil, err
	}

	return &acct, nil
}

func (r *accountRepository) Update(ctx context.Context, acct *domain.LoanAccount) error {
	acct.UpdatedAt = time.Now()

	query := `
		UPDATE accounts
		SET account_number = :account_number, borrower_name = :borrower_name, borrower_mobile = :borrower_mobile,
			amount = :amount, bank_name = :bank_name, due_date = :due_date,
			guarantor1_name = :guarantor1_name, guarantor1_mobile = :guarantor1_mobile,
			guarantor2_name = :guarantor2_name, guarantor2_mobile = :guarantor2_mobile,
			updated_at = :updated_at
		WHERE id = :id
	`

	_, err := r.db.NamedExecContext(ctx, query, acct)
	return err
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *accountRepository) List(ctx context.Context, search string) ([]domain.LoanAccount, error) {
	query := `
		SELECT id, account_number, borrower_name, borrower_mobile, amount, bank_name, due_date,
			guarantor1_name, guarantor1_mobile, guarantor2_name, guarantor2_mobile, created_at, updated_at
		FROM accounts
	`

	var accounts []domain.LoanAccount
	var err error

	if search == "" {
		err = r.db.SelectContext(ctx, &accounts, query+` ORDER BY created_at DESC`)
	} else {
		query += ` WHERE account_number ILIKE '%' || $1 || '%' OR borrower_name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &accounts, query, search)
	}
	if err != nil {
		return nil, err
	}

	return accounts, nil
}
