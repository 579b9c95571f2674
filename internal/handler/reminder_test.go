package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tensorlabs/amaanat/internal/domain"
	customError "github.com/tensorlabs/amaanat/pkg/errors"
)

type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) Preview(ctx context.Context, id uuid.UUID, ref time.Time) (*domain.ReminderOutcome, error) {
	args := m.Called(ctx, id, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReminderOutcome), args.Error(1)
}

func (m *MockReminderService) Dispatch(ctx context.Context, id uuid.UUID, ref time.Time) (*domain.DeliveryReport, error) {
	args := m.Called(ctx, id, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryReport), args.Error(1)
}

func reminderRouter(h *ReminderHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/accounts/{accountId}/reminder", h.Preview).Methods("GET")
	api.HandleFunc("/accounts/{accountId}/reminder/send", h.Send).Methods("POST")
	return router
}

func TestReminderHandler_Preview_WithExplicitDate(t *testing.T) {
	mockService := &MockReminderService{}
	id := uuid.New()
	outcome := &domain.ReminderOutcome{
		DayOffset:         -5,
		DueDateKnown:      true,
		BorrowerRecipient: "9999999999",
		BorrowerMessage:   "ALERT: ...",
		GuarantorMessage:  "WARNING: ...",
	}

	expected := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("Preview", mock.Anything, id, expected).Return(outcome, nil)

	router := reminderRouter(NewReminderHandler(mockService))
	w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/"+id.String()+"/reminder?date=1/1/2024", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var wrapper struct {
		Data domain.ReminderOutcome `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrapper))
	assert.Equal(t, -5, wrapper.Data.DayOffset)
	assert.True(t, wrapper.Data.DueDateKnown)
	mockService.AssertExpectations(t)
}

func TestReminderHandler_Preview_BadDate(t *testing.T) {
	mockService := &MockReminderService{}
	id := uuid.New()

	router := reminderRouter(NewReminderHandler(mockService))
	w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/"+id.String()+"/reminder?date=2024-01-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Preview")
}

func TestReminderHandler_Preview_NotFound(t *testing.T) {
	mockService := &MockReminderService{}
	id := uuid.New()
	mockService.On("Preview", mock.Anything, id, mock.Anything).
		Return(nil, customError.WrapAccountNotFound(id.String()))

	router := reminderRouter(NewReminderHandler(mockService))
	w := doJSON(t, router, http.MethodGet, "/api/v1/accounts/"+id.String()+"/reminder", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReminderHandler_Send(t *testing.T) {
	mockService := &MockReminderService{}
	id := uuid.New()
	report := &domain.DeliveryReport{AccountID: id, Sent: 3, Failed: 0}

	mockService.On("Dispatch", mock.Anything, id, mock.Anything).Return(report, nil)

	router := reminderRouter(NewReminderHandler(mockService))
	w := doJSON(t, router, http.MethodPost, "/api/v1/accounts/"+id.String()+"/reminder/send", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var wrapper struct {
		Data domain.DeliveryReport `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrapper))
	assert.Equal(t, 3, wrapper.Data.Sent)
	mockService.AssertExpectations(t)
}
