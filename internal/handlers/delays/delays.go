package delays

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/obralink/obralink/internal/domain"
	"github.com/obralink/obralink/internal/dto"
	"github.com/obralink/obralink/internal/service/delayservice"
	"github.com/obralink/obralink/internal/service/jobservice"
	"github.com/obralink/obralink/pkg/auth"
	"github.com/obralink/obralink/pkg/utils"
)

type Service interface {
	CreateDelayReport(ctx context.Context, bidID, professionalID int, reason string) (*domain.DelayRegistry, error)
	AcceptDelay(ctx context.Context, registryID, reviewerID int) (*domain.DelayRegistry, error)
	RejectDelay(ctx context.Context, registryID, reviewerID int) (*domain.DelayRegistry, error)
	GetDelayReport(ctx context.Context, registryID int) (*domain.DelayRegistry, error)
	ListByProfessional(ctx context.Context, professionalID int) ([]domain.DelayRegistry, error)
	ListByCreator(ctx context.Context, creatorID int) ([]domain.DelayRegistry, error)
}

type Jobs interface {
	GetJob(ctx context.Context, jobID int) (*domain.JobOffer, error)
	GetBid(ctx context.Context, bidID int) (*domain.Bid, error)
}

type DelayHandler struct {
	delayService Service
	jobs         Jobs
}

func New(delayService Service, jobs Jobs) *DelayHandler {
	return &DelayHandler{
		delayService: delayService,
		jobs:         jobs,
	}
}

func toDelayDTO(registry *domain.DelayRegistry) dto.DelayResponseDTO {
	return dto.DelayResponseDTO{
		ID:               registry.ID,
		BidID:            registry.BidID,
		DaysDelayed:      registry.DaysDelayed,
		Reason:           registry.Reason,
		Status:           registry.Status,
		AcceptedByClient: registry.AcceptedByClient,
		PenaltyApplied:   registry.PenaltyApplied,
		CreatedAt:        registry.CreatedAt.Format(time.RFC3339),
	}
}

func respondDelayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, delayservice.ErrRegistryNotFound), errors.Is(err, delayservice.ErrBidNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, delayservice.ErrAlreadyPending), errors.Is(err, delayservice.ErrAlreadyReviewed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, delayservice.ErrNotWinningBid),
		errors.Is(err, delayservice.ErrJobNotDelayed),
		errors.Is(err, delayservice.ErrNotReporter):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ReportDelay godoc
//
//	@Summary		Report a delay
//	@Description	The winning professional files a justification for a missed deadline. The delay in days is frozen at filing time.
//	@Tags			Delays
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReportDelayRequestDTO	true	"Delay report payload"
//	@Success		200		{object}	dto.DelayResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"A pending report already exists"
//	@Failure		422		{object}	utils.Response	"Job is not delayed or bid is not the winner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/delays [post]
func (h *DelayHandler) ReportDelay(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ReportDelayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	registry, err := h.delayService.CreateDelayReport(r.Context(), req.BidID, userID, req.Reason)
	if err != nil {
		respondDelayError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDelayDTO(registry))
}

// ListDelays godoc
//
//	@Summary		List delay reports
//	@Description	Professionals see their own reports, clients see reports on their jobs.
//	@Tags			Delays
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DelayResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/delays [get]
func (h *DelayHandler) ListDelays(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	var (
		registries []domain.DelayRegistry
		err        error
	)
	if role == domain.RoleOficio {
		registries, err = h.delayService.ListByProfessional(r.Context(), userID)
	} else {
		registries, err = h.delayService.ListByCreator(r.Context(), userID)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DelayResponseDTO, len(registries))
	for i := range registries {
		response[i] = toDelayDTO(&registries[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// reviewerOnly checks the caller created the job the delayed bid belongs to.
func (h *DelayHandler) reviewerOnly(w http.ResponseWriter, r *http.Request) (int, bool) {
	registryID, err := strconv.Atoi(chi.URLParam(r, "registryID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid registry id")
		return 0, false
	}
	registry, err := h.delayService.GetDelayReport(r.Context(), registryID)
	if err != nil {
		respondDelayError(w, err)
		return 0, false
	}
	bid, err := h.jobs.GetBid(r.Context(), registry.BidID)
	if err != nil || bid == nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return 0, false
	}
	job, err := h.jobs.GetJob(r.Context(), bid.JobID)
	if err != nil {
		if errors.Is(err, jobservice.ErrJobNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		} else {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return 0, false
	}
	if job == nil {
		utils.RespondWithError(w, http.StatusNotFound, jobservice.ErrJobNotFound.Error())
		return 0, false
	}
	userID := r.Context().Value(auth.UserIDKey).(int)
	if job.CreatorID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Only the job creator can review this report")
		return 0, false
	}
	return registryID, true
}

// AcceptDelay godoc
//
//	@Summary		Accept a delay report
//	@Description	The job creator accepts the justification. No reputation penalty is applied.
//	@Tags			Delays
//	@Security		BearerAuth
//	@Produce		json
//	@Param			registryID	path		int	true	"Delay registry ID"
//	@Success		200			{object}	dto.DelayResponseDTO
//	@Failure		403			{object}	utils.Response	"Not the job creator"
//	@Failure		409			{object}	utils.Response	"Report already reviewed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/delays/{registryID}/accept [post]
func (h *DelayHandler) AcceptDelay(w http.ResponseWriter, r *http.Request) {
	registryID, ok := h.reviewerOnly(w, r)
	if !ok {
		return
	}
	userID := r.Context().Value(auth.UserIDKey).(int)

	registry, err := h.delayService.AcceptDelay(r.Context(), registryID, userID)
	if err != nil {
		respondDelayError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDelayDTO(registry))
}

// RejectDelay godoc
//
//	@Summary		Reject a delay report
//	@Description	The job creator rejects the justification. The professional's score drops by 0.1 per delayed day, capped at 1.0, exactly once.
//	@Tags			Delays
//	@Security		BearerAuth
//	@Produce		json
//	@Param			registryID	path		int	true	"Delay registry ID"
//	@Success		200			{object}	dto.DelayResponseDTO
//	@Failure		403			{object}	utils.Response	"Not the job creator"
//	@Failure		409			{object}	utils.Response	"Report already reviewed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/delays/{registryID}/reject [post]
func (h *DelayHandler) RejectDelay(w http.ResponseWriter, r *http.Request) {
	registryID, ok := h.reviewerOnly(w, r)
	if !ok {
		return
	}
	userID := r.Context().Value(auth.UserIDKey).(int)

	registry, err := h.delayService.RejectDelay(r.Context(), registryID, userID)
	if err != nil {
		respondDelayError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDelayDTO(registry))
}
