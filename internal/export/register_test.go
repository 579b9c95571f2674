package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tensorlabs/amaanat/internal/domain"
)

func TestWriteRegister(t *testing.T) {
	accounts := []domain.LoanAccount{
		{
			AccountNumber:    "0034567890123456",
			BorrowerName:     "Ali",
			BorrowerMobile:   "9999999999",
			Amount:           "5000",
			BankName:         "J&K Bank",
			DueDate:          "1/1/2026",
			Guarantor1Name:   "Bashir",
			Guarantor1Mobile: "8888888888",
		},
		{
			AccountNumber: "1111222233334444",
			BorrowerName:  "Aslam",
			Amount:        "12000",
			BankName:      "SBI",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, accounts))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Accounts")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Account Number", rows[0][0])
	assert.Equal(t, "Due Date", rows[0][5])

	// leading zeros survive: values are text cells, not numbers
	assert.Equal(t, "0034567890123456", rows[1][0])
	assert.Equal(t, "Ali", rows[1][1])
	assert.Equal(t, "1/1/2026", rows[1][5])
	assert.Equal(t, "Bashir", rows[1][6])

	assert.Equal(t, "Aslam", rows[2][1])
}

func TestWriteRegister_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Accounts")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
