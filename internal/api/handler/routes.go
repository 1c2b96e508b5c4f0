package handler

import (
	"net/http"

	"github.com/vfg2006/traffic-crm-reporting/internal/api/handler/router"
	"github.com/vfg2006/traffic-crm-reporting/internal/usecases/reporting"
	"github.com/vfg2006/traffic-crm-reporting/pkg/metrics"
	"github.com/vfg2006/traffic-crm-reporting/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Reporting expõe o relatório de atribuição. Com autenticação ligada o token precisa carregar o tenant.
func Reporting(service reporting.AttributionReporter, authEnabled bool) []router.Route {
	var middlewares []func(http.Handler) http.Handler
	if authEnabled {
		middlewares = append(middlewares, middleware.RequireTenant())
	}

	return []router.Route{
		{
			Path:        "/reporting/attribution",
			Method:      http.MethodGet,
			Handler:     GetAttributionReport(service),
			Middlewares: middlewares,
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}
