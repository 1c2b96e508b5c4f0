package costimporter

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter/costclient"
	costdomain "github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter/domain"
	"github.com/vfg2006/traffic-crm-reporting/internal/config"
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_costimporter.go -package=mocks

type CostIntegrator interface {
	FetchCosts(ctx context.Context, query domain.ReportQuery) ([]domain.CostRecord, error)
}

type CostImporterService struct {
	timeout time.Duration
	Client  costclient.Client
}

func New(cfg *config.Config, client costclient.Client) CostIntegrator {
	return &CostImporterService{
		timeout: cfg.Upstream.Timeout,
		Client:  client,
	}
}

// FetchCosts busca os custos de marketing do período no cost-importer
func (s *CostImporterService) FetchCosts(ctx context.Context, query domain.ReportQuery) ([]domain.CostRecord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	params := costclient.CostParams{
		StartDate: query.StartDate.Format(time.RFC3339),
		EndDate:   query.EndDate.Format(time.RFC3339),
		Channel:   query.Channel,
		TenantID:  query.TenantID,
	}

	resp, err := s.Client.GetCosts(ctx, params)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = errors.Wrapf(err, "timeout after %s", s.timeout)
		}

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"service":    domain.ServiceCostImporter,
			"start_date": params.StartDate,
			"end_date":   params.EndDate,
		}).Warn("costs: failed to fetch costs")

		return nil, domain.NewDependencyError(domain.ServiceCostImporter, err)
	}

	costs := make([]domain.CostRecord, 0, len(resp))
	for _, cost := range resp {
		costs = append(costs, toCostRecord(cost))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"service": domain.ServiceCostImporter,
		"costs":   len(costs),
	}).Debug("costs: cost rows fetched")

	return costs, nil
}

func toCostRecord(cost costdomain.Cost) domain.CostRecord {
	record := domain.CostRecord{
		Channel:  cost.Channel,
		Source:   cost.Source,
		Campaign: cost.Campaign,
		Amount:   cost.Amount.Float64(),
	}
	if cost.PeriodStart != nil {
		record.PeriodStart = *cost.PeriodStart
	}
	if cost.PeriodEnd != nil {
		record.PeriodEnd = *cost.PeriodEnd
	}
	return record
}
