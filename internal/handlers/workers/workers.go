package workers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/dto"
	"github.com/GlebRadaev/crewmart/internal/handlers/httperr"
	"github.com/GlebRadaev/crewmart/pkg/auth"
	"github.com/GlebRadaev/crewmart/pkg/utils"
)

//go:generate mockgen -source=workers.go -destination=mock_workers.go -package=workers

type Service interface {
	Contact(ctx context.Context, identity int64, displayName, jobID string) (*domain.Worker, error)
	Profile(ctx context.Context, identity int64) (*domain.Worker, error)
	AcceptTerms(ctx context.Context, identity int64) error
	UpdateJobID(ctx context.Context, identity int64, jobID string) error
	Payouts(ctx context.Context, identity int64) ([]domain.Payout, error)
}

type WorkerHandler struct {
	workerService Service
}

func New(workerService Service) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
	}
}

// Contact godoc
//
//	@Summary		Register on first contact
//	@Description	Creates the worker profile for the calling identity or returns the existing one.
//	@Tags			Workers
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ContactRequestDTO	true	"Display name and in-job identifier"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WorkerDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/workers/contact [post]
func (h *WorkerHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	worker, err := h.workerService.Contact(r.Context(), auth.Identity(r.Context()), req.DisplayName, req.JobID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWorkerDTO(worker))
}

// Profile godoc
//
//	@Summary		Own profile
//	@Tags			Workers
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WorkerDTO
//	@Failure		404	{object}	utils.Response	"Worker not registered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/workers/me [get]
func (h *WorkerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	worker, err := h.workerService.Profile(r.Context(), auth.Identity(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWorkerDTO(worker))
}

// AcceptTerms godoc
//
//	@Summary		Accept the terms
//	@Tags			Workers
//	@Security		BearerAuth
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Banned or restricted"
//	@Failure		404	{object}	utils.Response	"Worker not registered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/workers/me/terms [post]
func (h *WorkerHandler) AcceptTerms(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.AcceptTerms(r.Context(), auth.Identity(r.Context())); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateJobID godoc
//
//	@Summary		Change the in-job identifier
//	@Tags			Workers
//	@Accept			json
//	@Param			request	body	dto.JobIDRequestDTO	true	"New in-job identifier"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid identifier"
//	@Failure		403	{object}	utils.Response	"Worker may not act"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/workers/me/job-id [put]
func (h *WorkerHandler) UpdateJobID(w http.ResponseWriter, r *http.Request) {
	var req dto.JobIDRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.workerService.UpdateJobID(r.Context(), auth.Identity(r.Context()), req.JobID); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Payouts godoc
//
//	@Summary		Payout history
//	@Tags			Workers
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutDTO
//	@Failure		404	{object}	utils.Response	"Worker not registered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/workers/me/payouts [get]
func (h *WorkerHandler) Payouts(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.workerService.Payouts(r.Context(), auth.Identity(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTOs(payouts))
}
