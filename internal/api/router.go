package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"

	"care_connect/internal/api/handler"
	"care_connect/internal/api/middleware"
	"care_connect/internal/app/service"
	"care_connect/internal/common/security"
)

// NewRouter wires the HTTP surface. Signup and login are public;
// everything else sits behind the bearer-token authenticator, with
// admin-gated subgroups registered by the individual handlers.
func NewRouter(
	logger *zap.Logger,
	issuer *security.TokenIssuer,
	authService *service.AuthService,
	orphanageService *service.OrphanageService,
	visitService *service.VisitService,
	alertService *service.AlertService,
	orgService *service.OrganizationService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies "Authorization: Bearer T" and puts claims in context.
	r.Use(jwtauth.Verifier(issuer.JWTAuth()))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterRoutes(r)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)

		orphanageHandler := handler.NewOrphanageHandler(orphanageService)
		protected.Route("/orphanages", orphanageHandler.RegisterRoutes)

		visitHandler := handler.NewVisitHandler(visitService)
		protected.Route("/visits", visitHandler.RegisterRoutes)

		alertHandler := handler.NewAlertHandler(alertService)
		protected.Route("/alerts", alertHandler.RegisterRoutes)

		orgHandler := handler.NewOrganizationHandler(orgService)
		protected.Route("/organizations", orgHandler.RegisterRoutes)
	})

	return r
}
