package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obralink/obralink/internal/currency"
	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/dto"
	"github.com/obralink/obralink/internal/service/walletservice"
	"github.com/obralink/obralink/pkg/auth"
	"github.com/obralink/obralink/pkg/utils"
	"github.com/obralink/obralink/pkg/validate"
)

type Service interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
	GetEscrowSummary(ctx context.Context, userID int) (*walletservice.EscrowSummary, error)
}

type RateService interface {
	GetRate() *currency.Rate
}

type WalletHandler struct {
	walletService Service
	rateService   RateService
}

func New(walletService Service, rateService RateService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		rateService:   rateService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet balance
//	@Description	Retrieve the authenticated user's wallet, creating it on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetOrCreateWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		ID:      wallet.ID,
		Balance: wallet.Balance.StringFixed(2),
	})
}

// Deposit godoc
//
//	@Summary		Top up wallet
//	@Description	Credit the wallet from a payment card. The card number must pass the Luhn check.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := validate.IsLuna(req.Card)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	wallet, err := h.walletService.Deposit(r.Context(), userID, amount)
	if err != nil {
		if errors.Is(err, walletservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		ID:      wallet.ID,
		Balance: wallet.Balance.StringFixed(2),
	})
}

// GetEscrowSummary godoc
//
//	@Summary		Get escrow summary
//	@Description	Wallet balance plus the total currently locked in escrow from this wallet.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.EscrowSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/escrow [get]
func (h *WalletHandler) GetEscrowSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.walletService.GetEscrowSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EscrowSummaryResponseDTO{
		Balance: summary.Wallet.Balance.StringFixed(2),
		Locked:  summary.Locked.StringFixed(2),
	})
}

// GetRate godoc
//
//	@Summary		Current USD exchange rate
//	@Description	Display-only quote from the configured provider, cached for a few minutes.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RateResponseDTO
//	@Router			/api/wallet/rate [get]
func (h *WalletHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	rate := h.rateService.GetRate()
	utils.RespondWithJSON(w, http.StatusOK, dto.RateResponseDTO{
		Buy:       rate.Buy.StringFixed(2),
		Sell:      rate.Sell.StringFixed(2),
		Source:    rate.Source,
		FetchedAt: rate.FetchedAt.Format(time.RFC3339),
	})
}
