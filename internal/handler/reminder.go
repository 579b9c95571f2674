package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tensorlabs/amaanat/internal/domain"
	"github.com/tensorlabs/amaanat/internal/reminder"
	customError "github.com/tensorlabs/amaanat/pkg/errors"
	"github.com/tensorlabs/amaanat/pkg/response"
)

// ReminderService is the slice of the reminder service the HTTP layer needs.
type ReminderService interface {
	Preview(ctx context.Context, id uuid.UUID, ref time.Time) (*domain.ReminderOutcome, error)
	Dispatch(ctx context.Context, id uuid.UUID, ref time.Time) (*domain.DeliveryReport, error)
}

type ReminderHandler struct {
	service ReminderService
}

func NewReminderHandler(service ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// Preview returns the rendered messages and recipient lists for an account
// without sending anything. An optional ?date=d/M/yyyy query overrides the
// reference date, which defaults to now.
func (h *ReminderHandler) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	ref, ok := referenceDate(w, r)
	if !ok {
		return
	}

	outcome, err := h.service.Preview(r.Context(), id, ref)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, outcome)
}

// Send dispatches the reminder to every valid recipient and reports the
// delivery counts.
func (h *ReminderHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	report, err := h.service.Dispatch(r.Context(), id, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, report)
}

func referenceDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	text := r.URL.Query().Get("date")
	if text == "" {
		return time.Now(), true
	}

	ref, err := reminder.ParseDueDate(text)
	if err != nil {
		response.BadRequest(w, "Invalid reference date", customError.WrapInvalidDueDate(text))
		return time.Time{}, false
	}
	return ref, true
}
