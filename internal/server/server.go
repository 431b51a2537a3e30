package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/matchfeed-web/internal/config"
	httpserver "github.com/preston-bernstein/matchfeed-web/internal/http"
	"github.com/preston-bernstein/matchfeed-web/internal/http/handlers"
	"github.com/preston-bernstein/matchfeed-web/internal/http/middleware"
	"github.com/preston-bernstein/matchfeed-web/internal/logging"
	"github.com/preston-bernstein/matchfeed-web/internal/metrics"
	"github.com/preston-bernstein/matchfeed-web/internal/shell"
	"github.com/preston-bernstein/matchfeed-web/internal/theme"
	"github.com/preston-bernstein/matchfeed-web/internal/web"
)

const (
	stylesheetPath = "/styles.css"
	contractPath   = "/contract"
)

var metricsSetup = metrics.Setup

// Server hosts the application document and its assets.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	app           *shell.App
	host          host
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New assembles the host document, app and HTTP surface. Nothing is mounted
// or listening until Run.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	tokens, err := theme.Load(cfg.Shell.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	doc, err := shell.ParseDocument(web.HostDocument())
	if err != nil {
		return nil, &shell.StartupError{Stage: shell.StageDocument, Err: err}
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	opts := shell.Options{
		AnchorID:       cfg.Shell.AnchorID,
		StylesheetHref: stylesheetPath,
		Logger:         logger,
		Recorder:       recorder,
	}
	if cfg.Shell.OfflineEnabled {
		opts.WorkerScriptPath = shell.WorkerScriptPath
	}
	app := shell.New(doc, rootFactory(cfg.Shell), opts)
	h, worker := newHost(cfg.Shell.OfflineEnabled)
	statusFn := func() handlers.Status {
		return handlers.Status{Mounted: app.Mounted(), Loaded: h.Loaded()}
	}
	handler := handlers.NewHandler(doc, tokens.CSS(), worker, logger, statusFn)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		app:           app,
		host:          h,
		httpServer:    buildHTTPServer(cfg, handler, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

func rootFactory(cfg config.ShellConfig) shell.RootFactory {
	return func() (shell.Component, error) {
		tmpl, err := web.RootTemplate()
		if err != nil {
			return nil, err
		}
		return shell.TemplateComponent{
			Template: tmpl,
			Data:     web.RootData{Title: cfg.Title, ContractPath: contractPath},
		}, nil
	}
}

func buildHTTPServer(cfg config.Config, handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handler, cfg.CORSOrigins)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)
	return &netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// Run mounts the app, starts listening, signals host load and then blocks
// until ctx is done. A startup failure is returned without serving.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	if err := shell.Boot(ctx, s.app, s.host); err != nil {
		var startupErr *shell.StartupError
		if errors.As(err, &startupErr) {
			logging.Error(s.logger, "startup failed", err, slog.String(logging.FieldStage, string(startupErr.Stage)))
		}
		s.stopTelemetry()
		return err
	}

	s.startMetrics()
	if err := s.httpServer.Listen(); err != nil {
		logging.Error(s.logger, "http listen failed", err, slog.String("addr", s.httpServer.Addr()))
		s.gracefulShutdown()
		return fmt.Errorf("listen: %w", err)
	}
	s.startServer(stop)
	s.host.Fire()
	logging.Info(s.logger, "host loaded", slog.String("addr", s.httpServer.Addr()))

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
	return nil
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any("err", err))
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any("err", err))
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}
	logging.Info(s.logger, "shutdown complete")
}

func (s *Server) stopTelemetry() {
	if s.metricsStop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.metricsStop(ctx)
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}
	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("err", err))
		return metrics.NewRecorder(), nil, nil
	}
	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = &netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", slog.Any("err", err))
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
