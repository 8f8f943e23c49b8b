package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/eod-app/eod-lambda/internal/auth"
	"github.com/eod-app/eod-lambda/internal/challenge"
	"github.com/eod-app/eod-lambda/internal/entitlement"
	"github.com/eod-app/eod-lambda/internal/middlewares"
	"github.com/eod-app/eod-lambda/internal/notification"
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	"github.com/eod-app/eod-lambda/internal/trend"
)

type RouterConfig struct {
	AuthHandler         *auth.Handler
	QuestionHandler     *question.Handler
	ResponseHandler     *response.Handler
	TrendHandler        *trend.Handler
	ChallengeHandler    *challenge.Handler
	EntitlementHandler  *entitlement.Handler
	NotificationHandler *notification.Handler
	EntitlementService  entitlement.Service
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/device", cfg.AuthHandler.RegisterDevice)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/entitlement/status", cfg.EntitlementHandler.Status)

		r.Group(func(r chi.Router) {
			r.Use(entitlement.Middleware(cfg.EntitlementService))

			r.Mount("/questions", question.Routes(cfg.QuestionHandler))
			r.Mount("/checkin", response.Routes(cfg.ResponseHandler))
			r.Mount("/trends", trend.Routes(cfg.TrendHandler))
			r.Mount("/challenges", challenge.Routes(cfg.ChallengeHandler))
			r.Mount("/settings", notification.Routes(cfg.NotificationHandler))
		})
	})
	return r
}
