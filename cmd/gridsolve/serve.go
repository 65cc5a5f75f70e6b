package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/scott-cotton/cli"

	httpadapter "svw.info/gridsolve/internal/adapters/http"
	"svw.info/gridsolve/internal/config"
	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/infrastructure/storage"
	"svw.info/gridsolve/internal/search"
	"svw.info/gridsolve/internal/usecase"
	"svw.info/gridsolve/internal/validator"
)

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

// requestLogger logs method, path, status, bytes, and duration.
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

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	_ = args

	sc, err := config.Load(cfg.Config)
	if err != nil {
		return err
	}
	if cfg.Addr != "" {
		sc.Addr = cfg.Addr
	}
	if cfg.Data != "" {
		sc.DataDir = cfg.Data
	}
	if cfg.LogLevel != "" {
		sc.LogLevel = cfg.LogLevel
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(sc.LogLevel)}))
	if err := os.MkdirAll(sc.DataDir, 0o755); err != nil {
		return err
	}

	// Wire providers → use cases → HTTP adapter
	uc := usecase.NewService(
		search.NewEngine(),
		validator.New(),
		hint.NewLadder(),
		storage.NewFS(sc.DataDir),
	)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              sc.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", sc.Addr, "data", sc.DataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return cli.ExitCodeErr(1)
	}
	return nil
}
