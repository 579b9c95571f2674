// Package export writes the account register as an XLSX workbook.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tensorlabs/amaanat/internal/domain"
)

const sheetName = "Accounts"

type column struct {
	Header string
	Value  func(domain.LoanAccount) string
}

var columns = []column{
	{"Account Number", func(a domain.LoanAccount) string { return a.AccountNumber }},
	{"Borrower Name", func(a domain.LoanAccount) string { return a.BorrowerName }},
	{"Borrower Mobile", func(a domain.LoanAccount) string { return a.BorrowerMobile }},
	{"Amount", func(a domain.LoanAccount) string { return a.Amount }},
	{"Bank", func(a domain.LoanAccount) string { return a.BankName }},
	{"Due Date", func(a domain.LoanAccount) string { return a.DueDate }},
	{"Guarantor 1", func(a domain.LoanAccount) string { return a.Guarantor1Name }},
	{"Guarantor 1 Mobile", func(a domain.LoanAccount) string { return a.Guarantor1Mobile }},
	{"Guarantor 2", func(a domain.LoanAccount) string { return a.Guarantor2Name }},
	{"Guarantor 2 Mobile", func(a domain.LoanAccount) string { return a.Guarantor2Mobile }},
}

// WriteRegister streams the accounts as an XLSX workbook. Field values are
// written as text cells exactly as stored; account numbers and mobiles must
// not be coerced into numbers and lose leading zeros.
func WriteRegister(w io.Writer, accounts []domain.LoanAccount) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return err
		}
	}

	for row, acct := range accounts {
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheetName, cell, col.Value(acct)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
