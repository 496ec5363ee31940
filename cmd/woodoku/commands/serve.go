package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/woodoku/internal/adapters/http"
	"svw.info/woodoku/internal/hint"
	"svw.info/woodoku/internal/infrastructure/catalog"
	"svw.info/woodoku/internal/solver"
	"svw.info/woodoku/internal/usecase"
)

var (
	serveAddr     string
	serveLogLevel string
	serveCatalog  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON game server",
	Long: `Run the HTTP server that hosts game sessions.

Endpoints:
  POST /api/new     start a game, optional {"seed": n}
  GET  /api/state   ?id=<session>
  POST /api/place   {"id", "slot", "row", "col"}
  POST /api/hint    {"id", "maxTier": "greedy"|"lookahead"}
  GET  /api/shapes  the shape catalog
  POST /api/end     {"id"}

Flags override the values from --config.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "debug|info|warn|error")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Shape catalog YAML (built-in when empty)")

	rootCmd.AddCommand(serveCmd)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes and duration of each request.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = serveLogLevel
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Game.Catalog = serveCatalog
	}
	logger := newLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire providers → use cases → HTTP adapter
	cat := catalog.NewFS(cfg.Game.Catalog)
	hin := hint.NewPlacement(solver.NewHandSolver())
	uc := usecase.NewService(cat, hin, logger, usecase.Settings{
		HandSize: cfg.Game.HandSize,
		Seed:     cfg.Game.Seed,
		Rules:    cfg.Scoring,
	})
	shapes, err := uc.Shapes(ctx)
	if err != nil {
		logger.Error("catalog", "path", cat.Path(), "err", err)
		return err
	}

	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.Server.Addr, "catalog", cat.Path(), "shapes", len(shapes), "hand", cfg.Game.HandSize)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		return err
	}
	logger.Info("stopped", "sessions", uc.Len())
	return nil
}
