package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/capdigital/capsite-api/internal/config"
	"github.com/capdigital/capsite-api/internal/infra/database"
	"github.com/capdigital/capsite-api/internal/infra/http/handlers"
	"github.com/capdigital/capsite-api/internal/infra/http/middleware"
	"github.com/capdigital/capsite-api/internal/infra/mail"
	"github.com/capdigital/capsite-api/internal/infra/session"
	"github.com/capdigital/capsite-api/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Parse()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Adapters
	codec := session.NewCodec(cfg.SessionSecret, cfg.SessionMaxAge)
	mailSender := mail.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.NotifyFrom, cfg.NotifyTo,
	)

	// 3. UseCases
	loginUC := usecase.NewLoginUseCase(userRepo, codec)
	submitUC := usecase.NewSubmitLeadUseCase(leadRepo, mailSender)
	manageUC := usecase.NewManageLeadsUseCase(leadRepo)

	// 4. Handlers
	authHandler := handlers.NewAuthHandler(loginUC, cfg.SessionMaxAge, cfg.IsProduction())
	contactHandler := handlers.NewContactHandler(submitUC)
	leadHandler := handlers.NewLeadHandler(manageUC)
	healthHandler := handlers.NewHealthHandler(db, cfg.SMTPHost)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	requireAuth := middleware.RequireAuth(codec, userRepo)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/login", authHandler.HandleLogin)
	r.Post("/auth/logout", authHandler.HandleLogout)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/auth/me", authHandler.HandleMe)
	})

	r.Post("/leads/submit", contactHandler.HandleSubmit)
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/leads", leadHandler.HandleList)
		r.Patch("/leads", leadHandler.HandleUpdate)
		r.Delete("/leads", leadHandler.HandleDelete)
	})

	addr := ":" + cfg.Port
	log.Printf("🔥 Server capsite-api rodando na porta %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
