package handlers

import (
	"net/http"

	_ "github.com/akosarev/fundmart/docs"
	campaignhandlers "github.com/akosarev/fundmart/internal/handlers/campaigns"
	notificationhandlers "github.com/akosarev/fundmart/internal/handlers/notifications"
	releasehandlers "github.com/akosarev/fundmart/internal/handlers/release"
	"github.com/akosarev/fundmart/internal/service"
	"github.com/akosarev/fundmart/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type CampaignHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	AddDonation(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type ReleaseHandler interface {
	SuspendReallocate(w http.ResponseWriter, r *http.Request)
	ReleaseMoney(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CampaignHandler     CampaignHandler
	ReleaseHandler      ReleaseHandler
	NotificationHandler NotificationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		CampaignHandler:     campaignhandlers.New(s.CampaignService),
		ReleaseHandler:      releasehandlers.New(s.ReleaseService),
		NotificationHandler: notificationhandlers.New(s.NotifyService),
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
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/{id}", h.CampaignHandler.Get)
			r.Post("/{id}/donations", h.CampaignHandler.AddDonation)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/", h.CampaignHandler.Create)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
				r.Post("/{id}/review", h.CampaignHandler.Review)
				r.Post("/{id}/reconcile", h.CampaignHandler.Reconcile)
			})
		})

		r.Route("/release", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
				r.Post("/suspendreallocate", h.ReleaseHandler.SuspendReallocate)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/releasemoney/{id}", h.ReleaseHandler.ReleaseMoney)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/", h.NotificationHandler.List)
			r.Patch("/{id}/read", h.NotificationHandler.MarkRead)
			r.Delete("/{id}", h.NotificationHandler.Delete)
		})
	})

	return r
}
