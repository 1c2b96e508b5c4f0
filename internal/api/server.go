package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/traffic-crm-reporting/internal/api/handler"
	"github.com/vfg2006/traffic-crm-reporting/internal/api/handler/router"
	"github.com/vfg2006/traffic-crm-reporting/internal/config"
	"github.com/vfg2006/traffic-crm-reporting/internal/usecases/authenticating"
	"github.com/vfg2006/traffic-crm-reporting/internal/usecases/reporting"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
	"github.com/vfg2006/traffic-crm-reporting/pkg/metrics"
	"github.com/vfg2006/traffic-crm-reporting/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.AttributionReporter,
	authenticator authenticating.Authenticator,
	m *metrics.Metrics,
) (*Server, error) {
	if reportingService == nil {
		return nil, fmt.Errorf("api: reporting service is required")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reportingService, authenticator, m),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta rotas e a cadeia de middlewares globais
func NewHandler(
	config *config.Config,
	reportingService reporting.AttributionReporter,
	authenticator authenticating.Authenticator,
	m *metrics.Metrics,
) http.Handler {
	authEnabled := config.AuthEnabled() && authenticator != nil

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Reporting(reportingService, authEnabled)...),
	}
	if m != nil {
		configs = append(configs, router.WithRoutes(handler.Metrics(m)...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}
	if authEnabled {
		middlewares = append(middlewares, middleware.AuthMiddleware(authenticator))
	} else {
		log.L.Warn("AUTH_SECRET vazio: autenticação desabilitada")
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
