package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/dto"
	"github.com/GlebRadaev/domainstore/internal/service/balanceservice"
	"github.com/GlebRadaev/domainstore/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	Balance(ctx context.Context, mode domain.RegistrarMode) (decimal.Decimal, error)
	Refill(ctx context.Context, mode domain.RegistrarMode, amount decimal.Decimal, note string) (*domain.BalanceTransaction, error)
	Transactions(ctx context.Context, limit int) ([]domain.BalanceTransaction, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

func mode(r *http.Request) domain.RegistrarMode {
	m := r.URL.Query().Get("mode")
	if m == "" {
		return domain.ModeLive
	}
	return domain.RegistrarMode(m)
}

// GetBalance godoc
//
//	@Summary		Get registrar balance
//	@Description	Reports the prepaid balance available at the registrar for the given mode.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			mode	query		string	false	"Registrar mode (test or live)"	default(live)
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown registrar mode"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		502		{object}	utils.Response	"Registrar balance check failed"
//	@Router			/api/admin/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	m := mode(r)
	available, err := h.balanceService.Balance(r.Context(), m)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidMode):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadGateway, balanceservice.ErrBalanceUnavailable.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Mode:      string(m),
		Available: available,
	})
}

// Refill godoc
//
//	@Summary		Refill registrar balance
//	@Description	Tops up the registrar prepaid balance and records a manual refill in the ledger.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RefillRequestDTO	true	"Refill request"
//	@Success		201		{object}	dto.BalanceTransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Refill amount must be positive"
//	@Failure		502		{object}	utils.Response	"Registrar refused the refill"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/balance/refill [post]
func (h *BalanceHandler) Refill(w http.ResponseWriter, r *http.Request) {
	var req dto.RefillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m := domain.RegistrarMode(req.Mode)
	if req.Mode == "" {
		m = domain.ModeLive
	}
	tx, err := h.balanceService.Refill(r.Context(), m, req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidMode):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, balanceservice.ErrRefillFailed), errors.Is(err, balanceservice.ErrBalanceUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromTransaction(*tx))
}

// Transactions godoc
//
//	@Summary		List balance transactions
//	@Description	Returns the most recent ledger entries, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum entries"	default(100)
//	@Success		200		{array}		dto.BalanceTransactionDTO
//	@Success		204		{string}	string			"No transactions"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/balance/transactions [get]
func (h *BalanceHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	txs, err := h.balanceService.Transactions(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(txs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	resp := make([]dto.BalanceTransactionDTO, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, dto.FromTransaction(tx))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
