package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tensorlabs/amaanat/internal/domain"
	customError "github.com/tensorlabs/amaanat/pkg/errors"
)

func saveRequest() *domain.SaveAccountRequest {
	return &domain.SaveAccountRequest{
		AccountNumber:  "1234567890123456",
		BorrowerName:   "Ali",
		BorrowerMobile: "9999999999",
		Amount:         "5000",
		BankName:       "J&K Bank",
		DueDate:        "1/1/2026",
	}
}

func TestCreateAccount_Success(t *testing.T) {
	mockRepo := &MockAccountRepository{}

	mockRepo.On("GetByAccountNumber", mock.Anything, "1234567890123456").Return(nil, sql.ErrNoRows)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(acct *domain.LoanAccount) bool {
		return acct.AccountNumber == "1234567890123456" && acct.ID != uuid.Nil
	})).Return(nil)

	svc := NewAccountService(mockRepo)
	acct, err := svc.Create(context.Background(), saveRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Ali", acct.BorrowerName)
	assert.Equal(t, "1/1/2026", acct.DueDate)
	mockRepo.AssertExpectations(t)
}

func TestCreateAccount_DuplicateNumber(t *testing.T) {
	mockRepo := &MockAccountRepository{}
	existing := &domain.LoanAccount{ID: uuid.New(), AccountNumber: "1234567890123456"}

	mockRepo.On("GetByAccountNumber", mock.Anything, "1234567890123456").Return(existing, nil)

	svc := NewAccountService(mockRepo)
	_, err := svc.Create(context.Background(), saveRequest())

	assert.ErrorIs(t, err, customError.ErrAccountAlreadyExists)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdateAccount(t *testing.T) {
	mockRepo := &MockAccountRepository{}
	id := uuid.New()
	existing := &domain.LoanAccount{ID: id, AccountNumber: "1234567890123456", BorrowerName: "Ali"}

	mockRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(acct *domain.LoanAccount) bool {
		return acct.ID == id && acct.BorrowerName == "Aslam"
	})).Return(nil)

	req := saveRequest()
	req.BorrowerName = "Aslam"

	svc := NewAccountService(mockRepo)
	acct, err := svc.Update(context.Background(), id, req)

	assert.NoError(t, err)
	assert.Equal(t, "Aslam", acct.BorrowerName)
	mockRepo.AssertExpectations(t)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	mockRepo := &MockAccountRepository{}
	id := uuid.New()

	mockRepo.On("GetByID", mock.Anything, id).Return(nil, sql.ErrNoRows)

	svc := NewAccountService(mockRepo)
	err := svc.Delete(context.Background(), id)

	assert.ErrorIs(t, err, customError.ErrAccountNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestStats(t *testing.T) {
	mockRepo := &MockAccountRepository{}
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	accounts := []domain.LoanAccount{
		{Amount: "5000", DueDate: "1/1/2020"},         // overdue
		{Amount: "2500.50", DueDate: "1/1/2024"},      // due today
		{Amount: "not-a-number", DueDate: "1/6/2024"}, // upcoming, amount skipped
		{Amount: "1000", DueDate: ""},                 // no due date counts as due today
	}
	mockRepo.On("List", mock.Anything, "").Return(accounts, nil)

	svc := NewAccountService(mockRepo)
	stats, err := svc.Stats(context.Background(), ref)

	assert.NoError(t, err)
	assert.Equal(t, 4, stats.TotalAccounts)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 2, stats.DueToday)
	assert.Equal(t, 1, stats.Upcoming)
	assert.True(t, stats.TotalPrincipal.Equal(decimal.RequireFromString("8500.50")))
}

func TestList_PassesSearchThrough(t *testing.T) {
	mockRepo := &MockAccountRepository{}
	mockRepo.On("List", mock.Anything, "ali").Return([]domain.LoanAccount{{BorrowerName: "Ali"}}, nil)

	svc := NewAccountService(mockRepo)
	accounts, err := svc.List(context.Background(), "ali")

	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	mockRepo.AssertExpectations(t)
}
