package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	_ "github.com/veridianhealth/riskengine/docs"
	"github.com/veridianhealth/riskengine/internal/catalog"
	"github.com/veridianhealth/riskengine/internal/core"
	transporthttp "github.com/veridianhealth/riskengine/internal/http"
	"github.com/veridianhealth/riskengine/internal/http/handlers"
	"github.com/veridianhealth/riskengine/internal/http/health"
	"github.com/veridianhealth/riskengine/internal/jobs"
	"github.com/veridianhealth/riskengine/internal/middleware"
	"github.com/veridianhealth/riskengine/internal/narrative"
	"github.com/veridianhealth/riskengine/internal/platform/config"
	"github.com/veridianhealth/riskengine/internal/platform/logging"
	"github.com/veridianhealth/riskengine/internal/platform/metrics"
	"github.com/veridianhealth/riskengine/internal/store/dynamo"
	"github.com/veridianhealth/riskengine/internal/store/mongo"
)

// @title Risk Engine API
// @version 1.0
// @description Insurance risk assessment and policy recommendation engine.
// @BasePath /api/v1
func main() {
	cfg := config.MustLoad()
	logger := logging.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- Stores ----
	var (
		patients core.PatientRepo
		plans    core.PlanRepo
		pinger   health.Pinger
	)

	switch cfg.DBType {
	case "dynamodb":
		client, err := dynamo.NewClient(ctx, dynamo.Config{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			log.Fatalf("failed to connect to DynamoDB: %v", err)
		}
		patients = dynamo.NewPatientRepo(client.DB)
		plans = dynamo.NewPlanRepo(client.DB)
		pinger = client
		logger.Info("connected to DynamoDB", "region", cfg.AWSRegion)

	case "mongo":
		client, err := mongo.NewClient(cfg)
		if err != nil {
			log.Fatalf("failed to connect to MongoDB: %v", err)
		}
		defer client.Close(context.Background())

		if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
			log.Fatalf("failed to ensure indexes: %v", err)
		}

		opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
		patients = mongo.NewPatientRepo(client.DB, opTimeout)
		plans = mongo.NewPlanRepo(client.DB, opTimeout)
		pinger = client
		logger.Info("connected to MongoDB", "db", cfg.MongoDB)

	default:
		log.Fatalf("unknown DB_TYPE %q (want mongo or dynamodb)", cfg.DBType)
	}

	// ---- Plan catalog ----
	// A file catalog overrides the store for plan selection; /plans still
	// serves whichever source the engine selects from.
	planSource := plans
	if cfg.CatalogFile != "" {
		static, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatalf("failed to load plan catalog %s: %v", cfg.CatalogFile, err)
		}
		planSource = static
		logger.Info("plan catalog loaded from file", "path", cfg.CatalogFile)
	}

	// ---- Narrative generators ----
	var primary, fallback core.NarrativeGenerator
	if cfg.NarrativeBaseURL != "" {
		timeout := time.Duration(cfg.NarrativeTimeoutSec) * time.Second
		primary = narrative.New(narrative.Config{
			BaseURL: cfg.NarrativeBaseURL,
			APIKey:  cfg.NarrativeAPIKey,
			Model:   cfg.NarrativePrimaryModel,
			Timeout: timeout,
		})
		fallback = narrative.New(narrative.Config{
			BaseURL: cfg.NarrativeBaseURL,
			APIKey:  cfg.NarrativeAPIKey,
			Model:   cfg.NarrativeFallbackModel,
			Timeout: timeout,
		})
	} else {
		logger.Info("narrative generation disabled, deterministic summaries only")
	}

	// ---- Services ----
	recSvc := core.NewRecommendationService(patients, planSource, primary, fallback, logger)
	cohortSvc := core.NewCohortService(patients, logger)

	// ---- Background workers ----
	portfolio := jobs.NewPortfolioWorker(cohortSvc,
		time.Duration(cfg.PortfolioIntervalSec)*time.Second, logger)
	go portfolio.Start(ctx)

	// ---- Router ----
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPM, time.Minute)
	defer rateLimiter.Stop()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
	r.Use(rateLimiter.Middleware)
	r.Use(middleware.SimpleAPIKey(cfg.APIKey))

	healthRouter := health.New(logger, pinger, time.Duration(cfg.MongoOpTimeoutMs)*time.Millisecond)
	r.Handle("/health", healthRouter)
	r.Handle("/readyz", healthRouter)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "swagger spec unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	api := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewRecommendationHandler(recSvc, logger),
			handlers.NewPatientHandler(patients, recSvc, logger),
			handlers.NewPlanHandler(planSource, logger),
			handlers.NewCohortHandler(cohortSvc, logger),
		},
	})
	r.Mount("/api/v1", api)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
