package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"worshipslides/internal/config"
	"worshipslides/internal/httpx"
	"worshipslides/internal/platform/logging"
	"worshipslides/internal/platform/slidegen"
	"worshipslides/internal/refdata"
	"worshipslides/internal/slides"
)

// formOverhead is allowed on top of MaxUploadBytes for the other form fields.
const formOverhead = 1 << 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refService := refdata.NewService(refdata.NewFileRepo(cfg.DataDir, cfg.AssetsDir), cfg.DefaultVersion, logger)
	generator := slidegen.NewClient(cfg.APIBase, cfg.GeneratorTimeout, cfg.GeneratorRPS)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(ctx, cfg, refService, generator, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.GeneratorTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Addr),
			zap.String("data_dir", cfg.DataDir),
			zap.String("api_base", cfg.APIBase))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// newRouter wires every endpoint behind the shared middleware chain. The
// per-client rate limiter only guards generation, which calls out to the
// slide generator; its janitor stops when ctx is done.
func newRouter(ctx context.Context, cfg config.Config, refService *refdata.Service, generator slides.Generator, logger *zap.Logger) http.Handler {
	refHandler := refdata.NewHTTPHandler(refService, logger)
	builder := slides.NewBuilder(slides.NewResolver(refService, cfg.DefaultBackground), cfg.DefaultHymnal)
	slideHandler := slides.NewHTTPHandler(refService, builder, generator, cfg.MaxUploadBytes, logger)
	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /api/list-hymns", refHandler.ListHymns)
	router.HandleFunc("GET /api/list-books", refHandler.ListBooks)
	router.HandleFunc("GET /api/list-chapters", refHandler.ListChapters)
	router.HandleFunc("GET /api/list-verses", refHandler.ListVerses)
	router.HandleFunc("GET /api/hymns/{number}", refHandler.GetHymn)
	router.HandleFunc("GET /api/chapters", refHandler.GetChapter)
	router.HandleFunc("GET /api/backgrounds", refHandler.ListBackgrounds)

	router.Handle("POST /api/slides/hymn", limiter.Middleware(http.HandlerFunc(slideHandler.GenerateHymn)))
	router.Handle("POST /api/slides/call-to-worship", limiter.Middleware(http.HandlerFunc(slideHandler.GenerateCallToWorship)))
	router.Handle("POST /api/slides/scripture", limiter.Middleware(http.HandlerFunc(slideHandler.GenerateScripture)))

	router.Handle("GET /images/", http.FileServerFS(os.DirFS(cfg.AssetsDir)))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxUploadBytes+formOverhead),
	)
}
