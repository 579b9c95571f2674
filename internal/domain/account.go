package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoanAccount represents one tracked loan: the borrower plus up to two
// guarantors. Amount and DueDate are stored as the exact strings entered by
// the user; DueDate uses the d/M/yyyy form (no leading zeros) and may be
// empty.
type LoanAccount struct {
	ID               uuid.UUID `json:"id" db:"id"`
	AccountNumber    string    `json:"account_number" db:"account_number"`
	BorrowerName     string    `json:"borrower_name" db:"borrower_name"`
	BorrowerMobile   string    `json:"borrower_mobile" db:"borrower_mobile"`
	Amount           string    `json:"amount" db:"amount"`
	BankName         string    `json:"bank_name" db:"bank_name"`
	DueDate          string    `json:"due_date" db:"due_date"`
	Guarantor1Name   string    `json:"guarantor1_name" db:"guarantor1_name"`
	Guarantor1Mobile string    `json:"guarantor1_mobile" db:"guarantor1_mobile"`
	Guarantor2Name   string    `json:"guarantor2_name" db:"guarantor2_name"`
	Guarantor2Mobile string    `json:"guarantor2_mobile" db:"guarantor2_mobile"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// DTOs for requests and responses

type SaveAccountRequest struct {
	AccountNumber    string `json:"account_number" validate:"required,len=16,numeric"`
	BorrowerName     string `json:"borrower_name" validate:"required"`
	BorrowerMobile   string `json:"borrower_mobile" validate:"omitempty,len=10,numeric"`
	Amount           string `json:"amount" validate:"required"`
	BankName         string `json:"bank_name" validate:"required"`
	DueDate          string `json:"due_date" validate:"omitempty,duedate"`
	Guarantor1Name   string `json:"guarantor1_name"`
	Guarantor1Mobile string `json:"guarantor1_mobile"`
	Guarantor2Name   string `json:"guarantor2_name"`
	Guarantor2Mobile string `json:"guarantor2_mobile"`
}

type ListAccountsResponse struct {
	Accounts []LoanAccount `json:"accounts"`
	Total    int           `json:"total"`
}
