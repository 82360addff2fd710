package router

import (
	"github.com/denmor86/blinds-loyalty/internal/config"
	"github.com/denmor86/blinds-loyalty/internal/network/handlers"
	"github.com/denmor86/blinds-loyalty/internal/network/middleware"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config     config.Config
	Identity   services.IdentityService
	Loyalty    services.LoyaltyService
	Purchases  services.PurchaseService
	PriceMatch services.PriceMatchService
}

func NewRouter(config config.Config, identity services.IdentityService, loyalty services.LoyaltyService,
	purchases services.PurchaseService, priceMatch services.PriceMatchService) *Router {
	return &Router{
		Config:     config,
		Identity:   identity,
		Loyalty:    loyalty,
		Purchases:  purchases,
		PriceMatch: priceMatch,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.Config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Identity))
		})

		r.Route("/loyalty", func(r chi.Router) {
			r.Get("/tiers", handlers.GetTiersHandler(router.Loyalty))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(middleware.Authenticator)
				r.Get("/account", handlers.GetAccountHandler(router.Loyalty))
				r.Post("/account", handlers.EnrollHandler(router.Loyalty))
				r.Get("/transactions", handlers.GetTransactionsHandler(router.Loyalty))
				r.Get("/rewards", handlers.GetRewardsHandler(router.Loyalty))
				r.Post("/rewards", handlers.RedeemRewardHandler(router.Loyalty))
				r.Get("/redemptions", handlers.GetRedemptionsHandler(router.Loyalty))
				r.Post("/purchases", handlers.RegisterPurchaseHandler(router.Purchases))
			})
		})

		// токен необязателен: заявку может оставить и гость
		r.With(jwtauth.Verifier(ja)).Post("/price-match", handlers.SubmitPriceMatchHandler(router.PriceMatch))

		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(middleware.Authenticator)
			r.Use(middleware.RequireAdmin)
			r.Get("/price-match", handlers.ListPriceMatchHandler(router.PriceMatch))
			r.Patch("/price-match/{id}", handlers.ReviewPriceMatchHandler(router.PriceMatch))
			r.Post("/rewards", handlers.CreateRewardHandler(router.Loyalty))
			r.Delete("/rewards/{id}", handlers.RetireRewardHandler(router.Loyalty))
		})
	})
	return r
}
