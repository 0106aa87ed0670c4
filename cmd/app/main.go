package main

import (
	"homecare-service/internal/config"
	patientCreate "homecare-service/internal/http-server/handlers/patients/create"
	patientGet "homecare-service/internal/http-server/handlers/patients/get"
	patientUpdate "homecare-service/internal/http-server/handlers/patients/update"
	patientDelete "homecare-service/internal/http-server/handlers/patients/delete"
	employeeCreate "homecare-service/internal/http-server/handlers/employees/create"
	employeeGet "homecare-service/internal/http-server/handlers/employees/get"
	employeeUpdate "homecare-service/internal/http-server/handlers/employees/update"
	employeeDelete "homecare-service/internal/http-server/handlers/employees/delete"
	contractCreate "homecare-service/internal/http-server/handlers/contracts/create"
	contractGet "homecare-service/internal/http-server/handlers/contracts/get"
	contractUpdate "homecare-service/internal/http-server/handlers/contracts/update"
	financeCreate "homecare-service/internal/http-server/handlers/finance/create"
	financeGet "homecare-service/internal/http-server/handlers/finance/get"
	shiftGenerate "homecare-service/internal/http-server/handlers/shifts/generate"
	shiftGet "homecare-service/internal/http-server/handlers/shifts/get"
	shiftUpdate "homecare-service/internal/http-server/handlers/shifts/update"
	shiftDelete "homecare-service/internal/http-server/handlers/shifts/delete"
	monitoringCreate "homecare-service/internal/http-server/handlers/monitoring/create"
	monitoringGet "homecare-service/internal/http-server/handlers/monitoring/get"
	monitoringClose "homecare-service/internal/http-server/handlers/monitoring/close"
	monitoringSummary "homecare-service/internal/http-server/handlers/monitoring/summary"
	timecardCheckin "homecare-service/internal/http-server/handlers/timecard/checkin"
	timecardCheckout "homecare-service/internal/http-server/handlers/timecard/checkout"
	timecardGet "homecare-service/internal/http-server/handlers/timecard/get"
	"homecare-service/internal/jobs"
	"homecare-service/internal/lock"
	svc "homecare-service/internal/service"
	"homecare-service/internal/storage/postgres"
	"homecare-service/internal/summarizer"
	slogpretty "homecare-service/pkg/handlers/slogPretty"
	"homecare-service/pkg/middleware/mwLogger"
	"homecare-service/pkg/sl"
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting API", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	locker, err := lock.NewRedisLock(cfg.RedisAddr)
	if err != nil {
		log.Error("Failed to init redis lock", sl.Err(err))
		os.Exit(1)
	}

	summaryClient := summarizer.New(cfg.SummaryAPI.URL, cfg.SummaryAPI.APIKey, cfg.SummaryAPI.Timeout)

	service := svc.NewService(storage, locker, summaryClient)

	sweeper, err := jobs.StartOverdueSweep(log, cfg.Jobs.OverdueSchedule, storage)
	if err != nil {
		log.Error("Failed to start overdue sweep", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(CORS)

	// Patients
	router.Post("/patients", patientCreate.New(log, service))
	router.Get("/patients", patientGet.New(log, service))
	router.Get("/patients/{id}", patientGet.New(log, service))
	router.Put("/patients/{id}", patientUpdate.New(log, service))
	router.Delete("/patients/{id}", patientDelete.New(log, service))

	// Employees
	router.Post("/employees", employeeCreate.New(log, service))
	router.Get("/employees", employeeGet.New(log, service))
	router.Get("/employees/{id}", employeeGet.New(log, service))
	router.Put("/employees/{id}", employeeUpdate.New(log, service))
	router.Delete("/employees/{id}", employeeDelete.New(log, service))

	// Contracts
	router.Post("/contracts", contractCreate.New(log, service))
	router.Get("/contracts", contractGet.New(log, service))
	router.Get("/contracts/{id}", contractGet.New(log, service))
	router.Put("/contracts/{id}", contractUpdate.New(log, service))

	// Finance
	router.Post("/finance", financeCreate.New(log, service))
	router.Get("/finance", financeGet.New(log, service))
	router.Get("/finance/{id}", financeGet.New(log, service))

	// Shifts
	router.Post("/shifts/generate", shiftGenerate.New(log, service))
	router.Get("/shifts", shiftGet.New(log, service))
	router.Get("/shifts/{id}", shiftGet.New(log, service))
	router.Put("/shifts/{id}", shiftUpdate.New(log, service))
	router.Delete("/shifts/{id}", shiftDelete.New(log, service))

	// Monthly Monitoring
	router.Post("/monitorings", monitoringCreate.New(log, service))
	router.Get("/monitorings", monitoringGet.New(log, service))
	router.Get("/monitorings/{id}", monitoringGet.New(log, service))
	router.Put("/monitorings/{id}/close", monitoringClose.New(log, service))
	router.Post("/monitorings/{id}/summary", monitoringSummary.New(log, service))

	// Timecard
	router.Post("/timecard/checkin", timecardCheckin.New(log, service))
	router.Put("/timecard/{employee_id}/checkout", timecardCheckout.New(log, service))
	router.Get("/timecard", timecardGet.New(log, service))
	router.Get("/timecard/{id}", timecardGet.New(log, service))

	serv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.Address))
		if err := serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if sweeper != nil {
		<-sweeper.Stop().Done()
		log.Info("Overdue sweep stopped")
	}

	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Error("Failed to close storage", sl.Err(err))
		} else {
			log.Info("Storage closed")
		}
	} else {
		log.Debug("Storage is nil, nothing to close")
	}

	if locker != nil {
		if err := locker.Close(); err != nil {
			log.Error("Failed to close locker", sl.Err(err))
		} else {
			log.Info("Locker closed")
		}
	}

	log.Info("Shutdown finished, server stopped")

}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
