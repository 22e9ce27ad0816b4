package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/sokha-dev/staffportal/docs"
	"github.com/sokha-dev/staffportal/internal/domain"
	authhandlers "github.com/sokha-dev/staffportal/internal/handlers/auth"
	requesthandlers "github.com/sokha-dev/staffportal/internal/handlers/requests"
	usershandlers "github.com/sokha-dev/staffportal/internal/handlers/users"
	"github.com/sokha-dev/staffportal/internal/service"
	pkgauth "github.com/sokha-dev/staffportal/pkg/auth"
	"github.com/sokha-dev/staffportal/pkg/utils"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Token(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	SubmitReimbursement(w http.ResponseWriter, r *http.Request)
	SubmitPayment(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	AdminRequests(w http.ResponseWriter, r *http.Request)
	PendingSummary(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	PaidRecords(w http.ResponseWriter, r *http.Request)
	Attachment(w http.ResponseWriter, r *http.Request)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AuthHandler    AuthHandler
	UserHandler    UserHandler
	RequestHandler RequestHandler

	middleware *pkgauth.Middleware
	db         Pinger
}

func New(s *service.Services, m *pkgauth.Middleware, db Pinger) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		UserHandler:    usershandlers.New(s.UserService),
		RequestHandler: requesthandlers.New(s.RequestService),
		middleware:     m,
		db:             db,
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
	r.Post("/token", h.AuthHandler.Token)
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(h.middleware.Authenticate)

		r.Get("/history_requests", h.RequestHandler.History)
		r.Get("/attachments/{filename}", h.RequestHandler.Attachment)

		r.Group(func(r chi.Router) {
			r.Use(h.middleware.RequireRole(domain.RoleStaff))
			r.Post("/submit_reimbursement", h.RequestHandler.SubmitReimbursement)
			r.Post("/submit_payment", h.RequestHandler.SubmitPayment)
			r.Get("/my_requests", h.RequestHandler.MyRequests)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.middleware.RequireRole(domain.RoleAdmin))
			r.Post("/create_user", h.UserHandler.Create)
			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", h.UserHandler.List)
				r.Delete("/users/{username}", h.UserHandler.Delete)
				r.Get("/requests", h.RequestHandler.AdminRequests)
				r.Patch("/requests/{id}", h.RequestHandler.UpdateStatus)
				r.Get("/pending_summary", h.RequestHandler.PendingSummary)
				r.Get("/paid_records", h.RequestHandler.PaidRecords)
			})
		})
	})

	return r
}

// Health godoc
//
//	@Summary	Liveness check against the database
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	utils.Response	"ok"
//	@Failure	500	{object}	utils.Response	"Health check failed"
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Health check failed: "+err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
