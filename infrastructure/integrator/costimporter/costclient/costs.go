package costclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	costdomain "github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CostParams struct {
	StartDate string
	EndDate   string
	Channel   string
	TenantID  string
}

func (c *CostClient) GetCosts(ctx context.Context, params CostParams) ([]costdomain.Cost, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/costs")

	query := endpoint.Query()
	query.Set("startDate", params.StartDate)
	query.Set("endDate", params.EndDate)
	if params.Channel != "" {
		query.Set("channel", params.Channel)
	}
	if params.TenantID != "" {
		query.Set("tenantId", params.TenantID)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errors.Errorf("requisição falhou com status %s: %s", resp.Status, body)
	}

	var response []costdomain.Cost
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
