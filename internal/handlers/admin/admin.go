package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/dto"
	"github.com/GlebRadaev/crewmart/internal/handlers/httperr"
	"github.com/GlebRadaev/crewmart/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type OrderService interface {
	Create(ctx context.Context, reference, description string, amount decimal.Decimal) (*domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
}

type PoolService interface {
	Cancel(ctx context.Context, reference string) error
}

type ScanService interface {
	Scan(ctx context.Context, now time.Time, threshold time.Duration) ([]domain.Order, error)
}

type GroupService interface {
	Create(ctx context.Context, name string) (*domain.Group, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.Group, error)
}

type WorkerService interface {
	AssignGroup(ctx context.Context, identity int64, groupName string) (*domain.Group, error)
	ClearGroup(ctx context.Context, identity int64) error
	Remove(ctx context.Context, identity int64) error
}

type AccessService interface {
	Ban(ctx context.Context, identity int64, until *time.Time) error
	LiftBan(ctx context.Context, identity int64) error
	Restrict(ctx context.Context, identity int64, until time.Time) error
	LiftRestriction(ctx context.Context, identity int64) error
}

type AdminHandler struct {
	orders  OrderService
	pool    PoolService
	scanner ScanService
	groups  GroupService
	workers WorkerService
	access  AccessService
	now     func() time.Time
}

func New(orders OrderService, pool PoolService, scanner ScanService, groups GroupService, workers WorkerService, access AccessService) *AdminHandler {
	return &AdminHandler{
		orders:  orders,
		pool:    pool,
		scanner: scanner,
		groups:  groups,
		workers: workers,
		access:  access,
		now:     time.Now,
	}
}

func identityParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	identity, err := strconv.ParseInt(chi.URLParam(r, "identity"), 10, 64)
	if err != nil || identity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid worker identity")
		return 0, false
	}
	return identity, true
}

// CreateOrder godoc
//
//	@Summary		Publish an order
//	@Description	Publishes a new order and broadcasts it to every worker.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderDTO
//	@Failure		400	{object}	utils.Response	"Invalid reference or amount"
//	@Failure		409	{object}	utils.Response	"Reference already used"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders [post]
func (h *AdminHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orders.Create(r.Context(), req.Reference, req.Description, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderDTO(order))
}

// ListOrders godoc
//
//	@Summary	List orders
//	@Tags		Admin
//	@Produce	json
//	@Param		status	query	string	false	"PENDING, COMMITTED or COMPLETED"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.OrderDTO
//	@Failure	400	{object}	utils.Response	"Unknown status"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.OrderPending, domain.OrderCommitted, domain.OrderCompleted:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	orders, err := h.orders.List(r.Context(), status)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

// StaleOrders godoc
//
//	@Summary		Orders stuck in progress
//	@Description	Committed orders older than the threshold. Falls back to the configured threshold.
//	@Tags			Admin
//	@Produce		json
//	@Param			threshold	query	string	false	"Duration, e.g. 12h"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.StaleOrderDTO
//	@Failure		400	{object}	utils.Response	"Invalid threshold"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/stale [get]
func (h *AdminHandler) StaleOrders(w http.ResponseWriter, r *http.Request) {
	var threshold time.Duration
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid threshold")
			return
		}
		threshold = d
	}

	now := h.now()
	orders, err := h.scanner.Scan(r.Context(), now, threshold)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewStaleOrderDTOs(orders, now))
}

// CancelApplications godoc
//
//	@Summary	Clear the application pool of an order
//	@Tags		Admin
//	@Param		ref	path	string	true	"Order reference"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Failure	409	{object}	utils.Response	"Order is not pending"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/orders/{ref}/applications [delete]
func (h *AdminHandler) CancelApplications(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Cancel(r.Context(), chi.URLParam(r, "ref")); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateGroup godoc
//
//	@Summary	Create a group
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.GroupRequestDTO	true	"Group name"
//	@Security	BearerAuth
//	@Success	201	{object}	dto.GroupDTO
//	@Failure	400	{object}	utils.Response	"Invalid name"
//	@Failure	409	{object}	utils.Response	"Group exists"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/groups [post]
func (h *AdminHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.GroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.groups.Create(r.Context(), req.Name)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGroupDTO(group))
}

// ListGroups godoc
//
//	@Summary	List groups with rating aggregates
//	@Tags		Admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.GroupDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/groups [get]
func (h *AdminHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.List(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGroupDTOs(groups))
}

// DeleteGroup godoc
//
//	@Summary	Delete a group
//	@Tags		Admin
//	@Param		name	path	string	true	"Group name"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Group not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/groups/{name} [delete]
func (h *AdminHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.groups.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignGroup godoc
//
//	@Summary	Assign a worker to a group
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		identity	path	int					true	"Worker identity"
//	@Param		request		body	dto.GroupRequestDTO	true	"Group name"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.GroupDTO
//	@Failure	400	{object}	utils.Response	"Invalid request"
//	@Failure	404	{object}	utils.Response	"Worker or group not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/workers/{identity}/group [put]
func (h *AdminHandler) AssignGroup(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	var req dto.GroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.workers.AssignGroup(r.Context(), identity, req.Name)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGroupDTO(group))
}

// ClearGroup godoc
//
//	@Summary	Remove a worker from its group
//	@Tags		Admin
//	@Param		identity	path	int	true	"Worker identity"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Worker not found"
//	@Router		/api/admin/workers/{identity}/group [delete]
func (h *AdminHandler) ClearGroup(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	if err := h.workers.ClearGroup(r.Context(), identity); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Ban godoc
//
//	@Summary		Ban a worker
//	@Description	Without until the ban is permanent.
//	@Tags			Admin
//	@Accept			json
//	@Param			identity	path	int					true	"Worker identity"
//	@Param			request		body	dto.BanRequestDTO	false	"Ban end"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		404	{object}	utils.Response	"Worker not found"
//	@Router			/api/admin/workers/{identity}/ban [post]
func (h *AdminHandler) Ban(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	var req dto.BanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.access.Ban(r.Context(), identity, req.Until); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LiftBan godoc
//
//	@Summary	Lift a ban
//	@Tags		Admin
//	@Param		identity	path	int	true	"Worker identity"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Worker not found"
//	@Router		/api/admin/workers/{identity}/ban [delete]
func (h *AdminHandler) LiftBan(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	if err := h.access.LiftBan(r.Context(), identity); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restrict godoc
//
//	@Summary	Restrict a worker until a time
//	@Tags		Admin
//	@Accept		json
//	@Param		identity	path	int						true	"Worker identity"
//	@Param		request		body	dto.RestrictRequestDTO	true	"Restriction end"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Restriction must end in the future"
//	@Failure	404	{object}	utils.Response	"Worker not found"
//	@Router		/api/admin/workers/{identity}/restriction [post]
func (h *AdminHandler) Restrict(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	var req dto.RestrictRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.access.Restrict(r.Context(), identity, req.Until); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LiftRestriction godoc
//
//	@Summary	Lift a restriction
//	@Tags		Admin
//	@Param		identity	path	int	true	"Worker identity"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Worker not found"
//	@Router		/api/admin/workers/{identity}/restriction [delete]
func (h *AdminHandler) LiftRestriction(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	if err := h.access.LiftRestriction(r.Context(), identity); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveWorker godoc
//
//	@Summary	Delete a worker profile
//	@Tags		Admin
//	@Param		identity	path	int	true	"Worker identity"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Worker not found"
//	@Router		/api/admin/workers/{identity} [delete]
func (h *AdminHandler) RemoveWorker(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityParam(w, r)
	if !ok {
		return
	}
	if err := h.workers.Remove(r.Context(), identity); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
