package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"oneline/internal/db"
	"oneline/internal/handlers"
	mw "oneline/internal/middleware"
	"oneline/internal/services"
	"oneline/internal/storage"
)

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func main() {
	_ = godotenv.Load()

	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	port := getenv("PORT", "8080")
	databaseURL := os.Getenv("DATABASE_URL")

	// DATABASE_URL selects the variant: set, the server is the multi-user
	// cloud build; unset, it keeps a single on-disk journal.
	var store storage.Store
	var authHandler *handlers.AuthHandler
	var authMW *mw.AuthMiddleware

	if databaseURL != "" {
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			logger.Fatal("JWT_SECRET is required when DATABASE_URL is set")
		}
		enc, err := services.NewEncryptionService(
			[]byte(os.Getenv("ENCRYPTION_KEY")), []byte(os.Getenv("BLIND_INDEX_KEY")))
		if err != nil {
			logger.Fatal("encryption keys invalid", zap.Error(err))
		}

		dbConn, err := sqlx.Open("pgx", databaseURL)
		if err != nil {
			logger.Fatal("failed to open db", zap.Error(err))
		}
		dbConn.SetMaxOpenConns(10)
		dbConn.SetConnMaxLifetime(2 * time.Hour)
		if err = dbConn.Ping(); err != nil {
			logger.Fatal("failed to ping db", zap.Error(err))
		}
		if err := db.RunMigrations(dbConn); err != nil {
			logger.Fatal("failed migrations", zap.Error(err))
		}

		pg := storage.NewPostgres(dbConn, enc)
		store = pg
		authHandler = handlers.NewAuthHandler(pg.DB(), enc, []byte(jwtSecret))
		authMW = mw.NewAuthMiddleware([]byte(jwtSecret))
		logger.Info("cloud variant: postgres storage")
	} else {
		dataDir := getenv("ONELINE_DATA_DIR", storage.DefaultDataDir())
		local, err := storage.OpenLocal(dataDir)
		if err != nil {
			logger.Fatal("failed to open local store", zap.Error(err))
		}
		store = local
		logger.Info("local variant: diskv storage", zap.String("dir", dataDir))
	}
	defer store.Close()

	mailer := services.NewResendMailer(os.Getenv("RESEND_API_KEY"))
	reminderSvc := services.NewReminderService(store, mailer, logger)

	entriesHandler := handlers.NewEntriesHandler(store)
	pixelsHandler := handlers.NewPixelsHandler(store)
	settingsHandler := handlers.NewSettingsHandler(store)
	importHandler := handlers.NewImportHandler(store)
	remindersHandler := handlers.NewRemindersHandler(reminderSvc, os.Getenv("SERVICE_KEY"))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.ZapRequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Service-Key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		if authHandler != nil {
			api.Post("/auth/signup", authHandler.Signup)
			api.Post("/auth/login", authHandler.Login)
		}
		api.Post("/reminders/run", remindersHandler.Run)

		api.Group(func(pr chi.Router) {
			if authMW != nil {
				pr.Use(authMW.RequireAuth)
			} else {
				pr.Use(mw.LocalUser)
			}
			pr.Get("/entries", entriesHandler.List)
			pr.Post("/entries", entriesHandler.Upsert)
			pr.Delete("/entries", entriesHandler.Clear)
			pr.Get("/entries/export", entriesHandler.Export)
			pr.Get("/entries/today", entriesHandler.Today)
			pr.Get("/entries/{date}", entriesHandler.ByDate)
			pr.Get("/pixels", pixelsHandler.Get)
			pr.Get("/settings", settingsHandler.Get)
			pr.Put("/settings", settingsHandler.Replace)
			if authMW != nil {
				pr.Post("/import", importHandler.Import)
			}
		})
	})

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
