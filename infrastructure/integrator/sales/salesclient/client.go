package salesclient

import (
	"context"
	"net/http"

	salesdomain "github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/sales/domain"
	"github.com/vfg2006/traffic-crm-reporting/internal/config"
)

type Client interface {
	GetLeadsAndDeals(ctx context.Context, params AttributionParams) (*salesdomain.LeadsDealsResponse, error)
}

type SalesClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente HTTP do serviço de vendas
func NewClient(cfg *config.Config) Client {
	return &SalesClient{
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
		baseURL: cfg.Sales.URL,
	}
}
