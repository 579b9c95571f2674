package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipients holds the phone numbers selected for a reminder. Borrower is
// empty when the borrower mobile is not a valid 10-digit number; Guarantors
// keeps guarantor-1-before-guarantor-2 order.
type Recipients struct {
	Borrower   string   `json:"borrower,omitempty"`
	Guarantors []string `json:"guarantors"`
}

// ReminderOutcome is the full result of evaluating an account against a
// reference date. It is computed fresh on every request and never persisted.
type ReminderOutcome struct {
	DayOffset           int      `json:"day_offset"`
	DueDateKnown        bool     `json:"due_date_known"`
	BorrowerRecipient   string   `json:"borrower_recipient,omitempty"`
	BorrowerMessage     string   `json:"borrower_message"`
	GuarantorRecipients []string `json:"guarantor_recipients"`
	GuarantorMessage    string   `json:"guarantor_message"`
}

// DeliveryReport aggregates the per-recipient outcomes of one dispatch.
type DeliveryReport struct {
	AccountID uuid.UUID `json:"account_id"`
	Sent      int       `json:"sent"`
	Failed    int       `json:"failed"`
	Deduped   bool      `json:"deduped"`
}

// DispatchSummary is the scheduler-facing rollup of a DispatchDue run.
type DispatchSummary struct {
	Accounts int `json:"accounts"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Deduped  int `json:"deduped"`
}

// PortfolioStats summarizes the register for the dashboard.
type PortfolioStats struct {
	TotalAccounts  int             `json:"total_accounts"`
	Overdue        int             `json:"overdue"`
	DueToday       int             `json:"due_today"`
	Upcoming       int             `json:"upcoming"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
}
