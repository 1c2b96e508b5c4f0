package costclient

import (
	"context"
	"net/http"

	costdomain "github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter/domain"
	"github.com/vfg2006/traffic-crm-reporting/internal/config"
)

type Client interface {
	GetCosts(ctx context.Context, params CostParams) ([]costdomain.Cost, error)
}

type CostClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	return &CostClient{
		httpClient: &http.Client{
			Timeout: cfg.Upstream.Timeout,
		},
		baseURL: cfg.CostImporter.URL,
	}
}
