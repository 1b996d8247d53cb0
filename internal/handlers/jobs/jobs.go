package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/dto"
	"github.com/obralink/obralink/internal/service/escrowservice"
	"github.com/obralink/obralink/internal/service/jobservice"
	"github.com/obralink/obralink/internal/service/walletservice"
	"github.com/obralink/obralink/pkg/auth"
	"github.com/obralink/obralink/pkg/utils"
)

type JobService interface {
	CreateJob(ctx context.Context, creatorID int, title, description string, budget decimal.Decimal) (*domain.JobOffer, error)
	GetJob(ctx context.Context, jobID int) (*domain.JobOffer, error)
	ListJobs(ctx context.Context, status string) ([]domain.JobOffer, error)
	ListBids(ctx context.Context, jobID int) ([]domain.Bid, error)
	GetWinningBid(ctx context.Context, jobID int) (*domain.Bid, error)
	SubmitBid(ctx context.Context, jobID, professionalID int, amount decimal.Decimal, estimatedDays int, pitch string) (*domain.Bid, error)
}

type EscrowService interface {
	LockInitialDeposit(ctx context.Context, jobID, bidID, clientWalletID int) (*domain.EscrowTransaction, error)
	ReleaseInitialPayment(ctx context.Context, jobID, bidID int) (*domain.EscrowTransaction, error)
	LockRemainingAmount(ctx context.Context, jobID, bidID, clientWalletID int) (*domain.EscrowTransaction, error)
	ReleaseFinalPayment(ctx context.Context, jobID, bidID int) (*domain.EscrowTransaction, *domain.EscrowTransaction, error)
	RefundToClient(ctx context.Context, jobID, bidID int, reason string) ([]domain.EscrowTransaction, error)
	TransactionsForJob(ctx context.Context, jobID, bidID int) ([]domain.EscrowTransaction, error)
}

type WalletService interface {
	GetOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type JobHandler struct {
	jobService    JobService
	escrowService EscrowService
	walletService WalletService
}

func New(jobService JobService, escrowService EscrowService, walletService WalletService) *JobHandler {
	return &JobHandler{
		jobService:    jobService,
		escrowService: escrowService,
		walletService: walletService,
	}
}

func toJobDTO(job *domain.JobOffer) dto.JobResponseDTO {
	resp := dto.JobResponseDTO{
		ID:          job.ID,
		CreatorID:   job.CreatorID,
		Title:       job.Title,
		Description: job.Description,
		Budget:      job.Budget.StringFixed(2),
		Status:      job.Status,
		IsDelayed:   job.IsDelayed,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
	}
	if job.StartConfirmedAt != nil {
		resp.StartConfirmedAt = job.StartConfirmedAt.Format(time.RFC3339)
	}
	if job.ExpectedCompletionAt != nil {
		resp.ExpectedCompletionAt = job.ExpectedCompletionAt.Format(time.RFC3339)
	}
	return resp
}

func toBidDTO(bid *domain.Bid) dto.BidResponseDTO {
	return dto.BidResponseDTO{
		ID:             bid.ID,
		JobID:          bid.JobID,
		ProfessionalID: bid.ProfessionalID,
		Amount:         bid.Amount.StringFixed(2),
		EstimatedDays:  bid.EstimatedDays,
		Pitch:          bid.Pitch,
		IsActive:       bid.IsActive,
		IsWinner:       bid.IsWinner,
		CreatedAt:      bid.CreatedAt.Format(time.RFC3339),
	}
}

func toTxDTO(tx *domain.EscrowTransaction) dto.EscrowTransactionResponseDTO {
	resp := dto.EscrowTransactionResponseDTO{
		ID:          tx.ID,
		JobID:       tx.JobID,
		BidID:       tx.BidID,
		Type:        tx.Type,
		Status:      tx.Status,
		Amount:      tx.Amount.StringFixed(2),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.ReleasedAt != nil {
		resp.ReleasedAt = tx.ReleasedAt.Format(time.RFC3339)
	}
	return resp
}

func jobIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "jobID"))
}

func respondEscrowError(w http.ResponseWriter, err error) {
	var wrongStatus *escrowservice.WrongJobStatusError
	var insufficient *walletservice.InsufficientFundsError
	switch {
	case errors.Is(err, escrowservice.ErrJobNotFound), errors.Is(err, escrowservice.ErrBidNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &wrongStatus):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &insufficient):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, escrowservice.ErrDuplicateDeposit),
		errors.Is(err, escrowservice.ErrDuplicateRelease),
		errors.Is(err, escrowservice.ErrNoLockedFunds):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, escrowservice.ErrInvalidBid), errors.Is(err, escrowservice.ErrNotWinningBid):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// creatorOnly loads the job and checks the caller owns it.
func (h *JobHandler) creatorOnly(w http.ResponseWriter, r *http.Request) (*domain.JobOffer, bool) {
	jobID, err := jobIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return nil, false
	}
	job, err := h.jobService.GetJob(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, jobservice.ErrJobNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}
	if job == nil {
		utils.RespondWithError(w, http.StatusNotFound, jobservice.ErrJobNotFound.Error())
		return nil, false
	}
	userID := r.Context().Value(auth.UserIDKey).(int)
	if job.CreatorID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Only the job creator can perform this action")
		return nil, false
	}
	return job, true
}

// CreateJob godoc
//
//	@Summary		Publish a job offer
//	@Description	Create an OPEN job offer. Only PERSONA and CONSORCIO accounts can publish.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateJobRequestDTO	true	"Job offer payload"
//	@Success		200		{object}	dto.JobResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Professionals cannot publish jobs"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)
	if role == domain.RoleOficio {
		utils.RespondWithError(w, http.StatusForbidden, "Professionals cannot publish jobs")
		return
	}

	var req dto.CreateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	budget, err := decimal.NewFromString(req.Budget)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid budget")
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), userID, req.Title, req.Description, budget)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// ListJobs godoc
//
//	@Summary		List job offers
//	@Description	List job offers, optionally filtered by status (OPEN, IN_PROGRESS, CLOSED, CANCELLED)
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{array}		dto.JobResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [get]
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListJobs(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.JobResponseDTO, len(jobs))
	for i := range jobs {
		response[i] = toJobDTO(&jobs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetJob godoc
//
//	@Summary		Get a job offer
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{object}	dto.JobResponseDTO
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	job, err := h.jobService.GetJob(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, jobservice.ErrJobNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if job == nil {
		utils.RespondWithError(w, http.StatusNotFound, jobservice.ErrJobNotFound.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// SubmitBid godoc
//
//	@Summary		Submit a bid
//	@Description	Place a bid on an OPEN job. Only OFICIO accounts can bid, one active bid per job.
//	@Tags			Bids
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Param			request	body		dto.SubmitBidRequestDTO	true	"Bid payload"
//	@Success		200		{object}	dto.BidResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Only professionals can bid"
//	@Failure		409		{object}	utils.Response	"Job not open or bid already placed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/bids [post]
func (h *JobHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)
	if role != domain.RoleOficio {
		utils.RespondWithError(w, http.StatusForbidden, "Only professionals can bid")
		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	var req dto.SubmitBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	bid, err := h.jobService.SubmitBid(r.Context(), jobID, userID, amount, req.EstimatedDays, req.Pitch)
	if err != nil {
		switch {
		case errors.Is(err, jobservice.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, jobservice.ErrJobNotOpen), errors.Is(err, jobservice.ErrBidAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, jobservice.ErrInvalidBid):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBidDTO(bid))
}

// ListBids godoc
//
//	@Summary		List bids on a job
//	@Tags			Bids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{array}		dto.BidResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/bids [get]
func (h *JobHandler) ListBids(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	bids, err := h.jobService.ListBids(r.Context(), jobID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.BidResponseDTO, len(bids))
	for i := range bids {
		response[i] = toBidDTO(&bids[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AcceptBid godoc
//
//	@Summary		Accept a bid
//	@Description	Choose the winning bid. Locks 30% of the bid amount from the client wallet into escrow and moves the job to IN_PROGRESS.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Param			request	body		dto.AcceptBidRequestDTO	true	"Winning bid"
//	@Success		200		{object}	dto.EscrowTransactionResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Not the job creator"
//	@Failure		409		{object}	utils.Response	"Job not open or deposit already locked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/accept [post]
func (h *JobHandler) AcceptBid(w http.ResponseWriter, r *http.Request) {
	job, ok := h.creatorOnly(w, r)
	if !ok {
		return
	}
	var req dto.AcceptBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, err := h.walletService.GetOrCreateWallet(r.Context(), job.CreatorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	deposit, err := h.escrowService.LockInitialDeposit(r.Context(), job.ID, req.BidID, wallet.ID)
	if err != nil {
		respondEscrowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTxDTO(deposit))
}

// StartWork godoc
//
//	@Summary		Confirm work has started
//	@Description	Releases the locked 30% to the professional and locks the remaining 70% from the client wallet in one step.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{array}		dto.EscrowTransactionResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Not the job creator"
//	@Failure		409		{object}	utils.Response	"Job not in progress or funds already released"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/start [post]
func (h *JobHandler) StartWork(w http.ResponseWriter, r *http.Request) {
	job, ok := h.creatorOnly(w, r)
	if !ok {
		return
	}
	winner, err := h.jobService.GetWinningBid(r.Context(), job.ID)
	if err != nil {
		respondJobError(w, err)
		return
	}

	release, err := h.escrowService.ReleaseInitialPayment(r.Context(), job.ID, winner.ID)
	if err != nil {
		respondEscrowError(w, err)
		return
	}

	wallet, err := h.walletService.GetOrCreateWallet(r.Context(), job.CreatorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	deposit, err := h.escrowService.LockRemainingAmount(r.Context(), job.ID, winner.ID, wallet.ID)
	if err != nil {
		respondEscrowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, []dto.EscrowTransactionResponseDTO{
		toTxDTO(release), toTxDTO(deposit),
	})
}

// CompleteJob godoc
//
//	@Summary		Confirm completion
//	@Description	Releases the remaining 70% minus the 5% platform fee to the professional and closes the job.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{array}		dto.EscrowTransactionResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the job creator"
//	@Failure		409		{object}	utils.Response	"Job not in progress or funds already released"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/complete [post]
func (h *JobHandler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.creatorOnly(w, r)
	if !ok {
		return
	}
	winner, err := h.jobService.GetWinningBid(r.Context(), job.ID)
	if err != nil {
		respondJobError(w, err)
		return
	}

	release, fee, err := h.escrowService.ReleaseFinalPayment(r.Context(), job.ID, winner.ID)
	if err != nil {
		respondEscrowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, []dto.EscrowTransactionResponseDTO{
		toTxDTO(release), toTxDTO(fee),
	})
}

// RefundJob godoc
//
//	@Summary		Refund locked funds
//	@Description	Returns every still-locked deposit to the client wallet and cancels the job.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Param			request	body		dto.RefundRequestDTO	true	"Refund reason"
//	@Success		200		{array}		dto.EscrowTransactionResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the job creator"
//	@Failure		409		{object}	utils.Response	"Job not in progress or no locked funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/refund [post]
func (h *JobHandler) RefundJob(w http.ResponseWriter, r *http.Request) {
	job, ok := h.creatorOnly(w, r)
	if !ok {
		return
	}
	var req dto.RefundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	winner, err := h.jobService.GetWinningBid(r.Context(), job.ID)
	if err != nil {
		respondJobError(w, err)
		return
	}

	refunds, err := h.escrowService.RefundToClient(r.Context(), job.ID, winner.ID, req.Reason)
	if err != nil {
		respondEscrowError(w, err)
		return
	}
	response := make([]dto.EscrowTransactionResponseDTO, len(refunds))
	for i := range refunds {
		response[i] = toTxDTO(&refunds[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		Escrow history for a job
//	@Description	List every escrow ledger row recorded for the job's winning bid, oldest first.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{array}		dto.EscrowTransactionResponseDTO
//	@Failure		404		{object}	utils.Response	"Job or winning bid not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID}/transactions [get]
func (h *JobHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	jobID, err := jobIDParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}
	winner, err := h.jobService.GetWinningBid(r.Context(), jobID)
	if err != nil {
		respondJobError(w, err)
		return
	}
	txs, err := h.escrowService.TransactionsForJob(r.Context(), jobID, winner.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.EscrowTransactionResponseDTO, len(txs))
	for i := range txs {
		response[i] = toTxDTO(&txs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, jobservice.ErrJobNotFound), errors.Is(err, jobservice.ErrBidNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
