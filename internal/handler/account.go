package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tensorlabs/amaanat/internal/domain"
	"github.com/tensorlabs/amaanat/internal/export"
	"github.com/tensorlabs/amaanat/internal/reminder"
	customError "github.com/tensorlabs/amaanat/pkg/errors"
	"github.com/tensorlabs/amaanat/pkg/response"
)

// AccountService is the slice of the account service the HTTP layer needs.
type AccountService interface {
	Create(ctx context.Context, request *domain.SaveAccountRequest) (*domain.LoanAccount, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.LoanAccount, error)
	Update(ctx context.Context, id uuid.UUID, request *domain.SaveAccountRequest) (*domain.LoanAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]domain.LoanAccount, error)
	Stats(ctx context.Context, ref time.Time) (*domain.PortfolioStats, error)
}

type AccountHandler struct {
	service   AccountService
	validator *validator.Validate
}

func NewAccountHandler(service AccountService) *AccountHandler {
	v := validator.New()
	// due dates travel as d/M/yyyy text; reject anything else at the edge
	_ = v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
		_, err := reminder.ParseDueDate(fl.Field().String())
		return err == nil
	})

	return &AccountHandler{
		service:   service,
		validator: v,
	}
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.SaveAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	acct, err := h.service.Create(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, acct)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	acct, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, acct)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var request domain.SaveAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	acct, err := h.service.Update(r.Context(), id, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, acct)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, map[string]string{"deleted": id.String()})
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, domain.ListAccountsResponse{Accounts: accounts, Total: len(accounts)})
}

func (h *AccountHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context(), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, stats)
}

// Export streams the full register as an XLSX workbook.
func (h *AccountHandler) Export(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context(), "")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="accounts-%s.xlsx"`, time.Now().Format("2006-01-02")))

	if err := export.WriteRegister(w, accounts); err != nil {
		// headers are already gone; all we can do is log via the middleware
		return
	}
}

// accountID pulls the {accountId} path variable. Writes the error response
// itself when the id is not a UUID.
func accountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["accountId"])
	if err != nil {
		response.BadRequest(w, "Invalid account id", err)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, customError.ErrAccountNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, customError.ErrAccountAlreadyExists):
		response.Conflict(w, "Account already exists", err)
	case errors.Is(err, customError.ErrInvalidDueDate):
		response.BadRequest(w, "Invalid due date", err)
	default:
		response.InternalServerError(w, "Internal server error", err)
	}
}
