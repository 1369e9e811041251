package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/crewmart/docs"
	adminhandlers "github.com/GlebRadaev/crewmart/internal/handlers/admin"
	ordershandlers "github.com/GlebRadaev/crewmart/internal/handlers/orders"
	workershandlers "github.com/GlebRadaev/crewmart/internal/handlers/workers"
	"github.com/GlebRadaev/crewmart/internal/service"
	"github.com/GlebRadaev/crewmart/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OrderHandler interface {
	ListOpen(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	CompleteSolo(w http.ResponseWriter, r *http.Request)
	Payout(w http.ResponseWriter, r *http.Request)
	Rate(w http.ResponseWriter, r *http.Request)
}

type WorkerHandler interface {
	Contact(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	AcceptTerms(w http.ResponseWriter, r *http.Request)
	UpdateJobID(w http.ResponseWriter, r *http.Request)
	Payouts(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	StaleOrders(w http.ResponseWriter, r *http.Request)
	CancelApplications(w http.ResponseWriter, r *http.Request)
	CreateGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)
	AssignGroup(w http.ResponseWriter, r *http.Request)
	ClearGroup(w http.ResponseWriter, r *http.Request)
	Ban(w http.ResponseWriter, r *http.Request)
	LiftBan(w http.ResponseWriter, r *http.Request)
	Restrict(w http.ResponseWriter, r *http.Request)
	LiftRestriction(w http.ResponseWriter, r *http.Request)
	RemoveWorker(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler  OrderHandler
	WorkerHandler WorkerHandler
	AdminHandler  AdminHandler
	Auth          *auth.Middleware
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		OrderHandler:  ordershandlers.New(s.OrderService, s.ApplicationService),
		WorkerHandler: workershandlers.New(s.WorkerService),
		AdminHandler: adminhandlers.New(
			s.OrderService,
			s.ApplicationService,
			s.Scanner,
			s.GroupService,
			s.WorkerService,
			s.AccessService,
		),
		Auth: auth.NewMiddleware(jwtService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(h.Auth.AuthMiddleware)

		r.Route("/workers", func(r chi.Router) {
			r.Post("/contact", h.WorkerHandler.Contact)
			r.Get("/me", h.WorkerHandler.Profile)
			r.Post("/me/terms", h.WorkerHandler.AcceptTerms)
			r.Put("/me/job-id", h.WorkerHandler.UpdateJobID)
			r.Get("/me/payouts", h.WorkerHandler.Payouts)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.OrderHandler.ListOpen)
			r.Route("/{ref}", func(r chi.Router) {
				r.Get("/", h.OrderHandler.Get)
				r.Post("/applications", h.OrderHandler.Apply)
				r.Delete("/applications", h.OrderHandler.Cancel)
				r.Post("/start", h.OrderHandler.Start)
				r.Post("/complete", h.OrderHandler.Complete)
				r.Post("/complete-solo", h.OrderHandler.CompleteSolo)
				r.Post("/payout", h.OrderHandler.Payout)
				r.Post("/rating", h.OrderHandler.Rate)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly)

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.AdminHandler.CreateOrder)
				r.Get("/", h.AdminHandler.ListOrders)
				r.Get("/stale", h.AdminHandler.StaleOrders)
				r.Delete("/{ref}/applications", h.AdminHandler.CancelApplications)
			})
			r.Route("/groups", func(r chi.Router) {
				r.Post("/", h.AdminHandler.CreateGroup)
				r.Get("/", h.AdminHandler.ListGroups)
				r.Delete("/{name}", h.AdminHandler.DeleteGroup)
			})
			r.Route("/workers/{identity}", func(r chi.Router) {
				r.Delete("/", h.AdminHandler.RemoveWorker)
				r.Put("/group", h.AdminHandler.AssignGroup)
				r.Delete("/group", h.AdminHandler.ClearGroup)
				r.Post("/ban", h.AdminHandler.Ban)
				r.Delete("/ban", h.AdminHandler.LiftBan)
				r.Post("/restriction", h.AdminHandler.Restrict)
				r.Delete("/restriction", h.AdminHandler.LiftRestriction)
			})
		})
	})

	return r
}
