// Package reminder is the due-date reminder message engine: pure functions
// that take a loan account and a reference date and produce recipient lists
// and message bodies. It has no side effects and calls into no other layer.
package reminder

import (
	"fmt"
	"time"

	"github.com/tensorlabs/amaanat/internal/domain"
)

// DueDateLayout is the exact textual form due dates are stored and parsed in:
// unpadded day and month, 4-digit year, ASCII slashes (e.g. "5/3/2026").
// Existing records depend on this pattern; do not change it.
const DueDateLayout = "2/1/2006"

const mobileLength = 10

// ParseDueDate parses due-date text under DueDateLayout.
func ParseDueDate(text string) (time.Time, error) {
	return time.Parse(DueDateLayout, text)
}

// DayOffset returns the whole number of days between the due date and the
// reference date: negative when overdue, zero when due today, positive when
// days remain. Empty or unparseable due-date text yields 0, so accounts
// without a usable due date fall into the due-today branch.
func DayOffset(dueDateText string, ref time.Time) int {
	if dueDateText == "" {
		return 0
	}
	due, err := ParseDueDate(dueDateText)
	if err != nil {
		return 0
	}
	return int(midnight(due).Sub(midnight(ref)) / (24 * time.Hour))
}

// midnight rebuilds t's calendar date at UTC midnight so that the difference
// of two results is always an exact multiple of 24h.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BorrowerMessage renders the reminder text addressed to the borrower. All
// account fields are interpolated verbatim.
func BorrowerMessage(acct domain.LoanAccount, ref time.Time) string {
	offset := DayOffset(acct.DueDate, ref)
	switch {
	case offset < 0:
		return fmt.Sprintf("ALERT: Dear %s, your Loan A/c %s is OVERDUE by %d days. Pending Amt: Rs.%s. Please deposit immediately. - %s",
			acct.BorrowerName, acct.AccountNumber, -offset, acct.Amount, acct.BankName)
	case offset == 0:
		return fmt.Sprintf("URGENT: Dear %s, today is the LAST DATE to pay your loan installment of Rs.%s for A/c %s. Visit branch now. - %s",
			acct.BorrowerName, acct.Amount, acct.AccountNumber, acct.BankName)
	default:
		return fmt.Sprintf("REMINDER: Dear %s, loan payment of Rs.%s for A/c %s is due on %s. - %s",
			acct.BorrowerName, acct.Amount, acct.AccountNumber, acct.DueDate, acct.BankName)
	}
}

// GuarantorMessage renders the reminder text addressed to the guarantors.
// The same string is sent to every active guarantor of the account.
func GuarantorMessage(acct domain.LoanAccount, ref time.Time) string {
	offset := DayOffset(acct.DueDate, ref)
	switch {
	case offset < 0:
		return fmt.Sprintf("WARNING: You stood Guarantee for %s (A/c %s). They FAILED to pay. As Guarantor, you are liable to pay Rs.%s immediately. - %s",
			acct.BorrowerName, acct.AccountNumber, acct.Amount, acct.BankName)
	case offset == 0:
		return fmt.Sprintf("ATTENTION: You are Guarantor for %s. Their loan installment of Rs.%s is DUE TODAY. Ensure payment to avoid action. - %s",
			acct.BorrowerName, acct.Amount, acct.BankName)
	default:
		return fmt.Sprintf("NOTICE: As Guarantor for %s, informing you that loan payment of Rs.%s is due on %s. - %s",
			acct.BorrowerName, acct.Amount, acct.DueDate, acct.BankName)
	}
}

// SelectRecipients picks the phone numbers a reminder can be delivered to.
// A number qualifies only when its length is exactly 10; anything else is
// dropped silently. Selection is independent of message rendering.
func SelectRecipients(acct domain.LoanAccount) domain.Recipients {
	var r domain.Recipients
	if len(acct.BorrowerMobile) == mobileLength {
		r.Borrower = acct.BorrowerMobile
	}
	if len(acct.Guarantor1Mobile) == mobileLength {
		r.Guarantors = append(r.Guarantors, acct.Guarantor1Mobile)
	}
	if len(acct.Guarantor2Mobile) == mobileLength {
		r.Guarantors = append(r.Guarantors, acct.Guarantor2Mobile)
	}
	return r
}

// Evaluate bundles offset computation, both renderings and recipient
// selection into one outcome. DueDateKnown reports whether the due date
// actually parsed; it never changes which template is selected.
func Evaluate(acct domain.LoanAccount, ref time.Time) domain.ReminderOutcome {
	recipients := SelectRecipients(acct)
	_, parseErr := ParseDueDate(acct.DueDate)
	return domain.ReminderOutcome{
		DayOffset:           DayOffset(acct.DueDate, ref),
		DueDateKnown:        acct.DueDate != "" && parseErr == nil,
		BorrowerRecipient:   recipients.Borrower,
		BorrowerMessage:     BorrowerMessage(acct, ref),
		GuarantorRecipients: recipients.Guarantors,
		GuarantorMessage:    GuarantorMessage(acct, ref),
	}
}
