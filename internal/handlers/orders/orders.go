package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/dto"
	"github.com/GlebRadaev/crewmart/internal/handlers/httperr"
	"github.com/GlebRadaev/crewmart/pkg/auth"
	"github.com/GlebRadaev/crewmart/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	ListOpen(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, reference string) (*domain.OrderDetails, error)
	Start(ctx context.Context, reference string, identity int64) (*domain.Award, error)
	Complete(ctx context.Context, reference string, identity int64) (*domain.Order, error)
	CompleteSolo(ctx context.Context, reference string, identity int64) (*domain.Payout, error)
	Payout(ctx context.Context, reference string, identity int64) (*domain.Payout, error)
	Rate(ctx context.Context, reference string, identity int64, rating int) (*domain.Order, error)
}

type PoolService interface {
	Apply(ctx context.Context, reference string, identity int64, jobID string) ([]domain.Application, error)
	CancelByMember(ctx context.Context, reference string, identity int64) error
}

type OrderHandler struct {
	orderService Service
	poolService  PoolService
}

func New(orderService Service, poolService PoolService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		poolService:  poolService,
	}
}

// ListOpen godoc
//
//	@Summary		List open orders
//	@Description	Orders still collecting applications.
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOpen(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// Get godoc
//
//	@Summary		Order details
//	@Description	Order with its application pool while pending, with its roster afterwards.
//	@Tags			Orders
//	@Produce		json
//	@Param			ref	path	string	true	"Order reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderDetailsDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	details, err := h.orderService.Get(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDetailsDTO(details))
}

// Apply godoc
//
//	@Summary		Apply to an order
//	@Description	Adds the worker's bid to the pool and returns the whole pool.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			ref		path	string				true	"Order reference"
//	@Param			request	body	dto.ApplyRequestDTO	false	"In-job identifier, profile value when omitted"
//	@Security		BearerAuth
//	@Success		201	{array}		dto.ApplicationDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		403	{object}	utils.Response	"Worker may not act"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Already applied, pool full, order not pending or no group"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/applications [post]
func (h *OrderHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pool, err := h.poolService.Apply(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context()), req.JobID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewApplicationDTOs(pool))
}

// Cancel godoc
//
//	@Summary		Cancel applications
//	@Description	Clears the whole pool of a pending order. Only a worker holding a bid may do it.
//	@Tags			Orders
//	@Param			ref	path	string	true	"Order reference"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not in the pool"
//	@Failure		409	{object}	utils.Response	"Order not pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/applications [delete]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.poolService.CancelByMember(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context())); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Start godoc
//
//	@Summary		Start an order
//	@Description	Resolves the pool into a roster of one group and commits the order.
//	@Tags			Orders
//	@Produce		json
//	@Param			ref	path	string	true	"Order reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AwardDTO
//	@Failure		403	{object}	utils.Response	"Not in the pool"
//	@Failure		409	{object}	utils.Response	"Order not pending or not enough applications from one group"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/start [post]
func (h *OrderHandler) Start(w http.ResponseWriter, r *http.Request) {
	award, err := h.orderService.Start(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAwardDTO(award))
}

// Complete godoc
//
//	@Summary		Complete an order
//	@Tags			Orders
//	@Produce		json
//	@Param			ref	path	string	true	"Order reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderDTO
//	@Failure		403	{object}	utils.Response	"Not on the roster"
//	@Failure		409	{object}	utils.Response	"Order not committed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/complete [post]
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Complete(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(order))
}

// CompleteSolo godoc
//
//	@Summary		Complete an order and get paid
//	@Description	Completes the order and pays the requester at once.
//	@Tags			Orders
//	@Produce		json
//	@Param			ref	path	string	true	"Order reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		403	{object}	utils.Response	"Not on the roster"
//	@Failure		409	{object}	utils.Response	"Order not committed or already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/complete-solo [post]
func (h *OrderHandler) CompleteSolo(w http.ResponseWriter, r *http.Request) {
	payout, err := h.orderService.CompleteSolo(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTO(payout))
}

// Payout godoc
//
//	@Summary		Request payout
//	@Tags			Orders
//	@Produce		json
//	@Param			ref	path	string	true	"Order reference"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayoutDTO
//	@Failure		403	{object}	utils.Response	"Not on the roster"
//	@Failure		409	{object}	utils.Response	"Order not completed or already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/payout [post]
func (h *OrderHandler) Payout(w http.ResponseWriter, r *http.Request) {
	payout, err := h.orderService.Payout(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutDTO(payout))
}

// Rate godoc
//
//	@Summary		Rate a completed order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			ref		path	string					true	"Order reference"
//	@Param			request	body	dto.RatingRequestDTO	true	"Rating from 1 to 5"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderDTO
//	@Failure		400	{object}	utils.Response	"Invalid rating"
//	@Failure		403	{object}	utils.Response	"Not on the roster"
//	@Failure		409	{object}	utils.Response	"Order not completed or already rated"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{ref}/rating [post]
func (h *OrderHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req dto.RatingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Rate(r.Context(), chi.URLParam(r, "ref"), auth.Identity(r.Context()), req.Rating)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(order))
}
