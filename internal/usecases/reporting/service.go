package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/costimporter"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/sales"
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
	"github.com/vfg2006/traffic-crm-reporting/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Service implementa AttributionReporter. Não guarda estado entre requisições.
type Service struct {
	salesService sales.SalesIntegrator
	costService  costimporter.CostIntegrator
	metrics      *metrics.Metrics
}

func NewService(
	salesService sales.SalesIntegrator,
	costService costimporter.CostIntegrator,
	m *metrics.Metrics,
) AttributionReporter {
	return &Service{
		salesService: salesService,
		costService:  costService,
		metrics:      m,
	}
}

func (s *Service) GetAttributionReport(ctx context.Context, query domain.ReportQuery) (*domain.AttributionReport, error) {
	startedAt := time.Now()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_date": query.StartDate.Format(time.RFC3339),
		"end_date":   query.EndDate.Format(time.RFC3339),
		"channel":    query.Channel,
		"tenant_id":  query.TenantID,
	})

	// validação antes de qualquer chamada aos serviços
	if err := Validate(query); err != nil {
		logger.WithError(err).Warn("attribution: invalid report query")
		s.metrics.ObserveReport(metrics.OutcomeInvalid, time.Since(startedAt), 0)
		return nil, err
	}

	data, err := s.fetch(ctx, query)
	if err != nil {
		depErr, _ := domain.AsDependencyError(err)
		logger.WithError(err).WithField("service", depErr.Service).Error("attribution: dependency failure, aborting report")
		s.metrics.ObserveReport(metrics.OutcomeDependency, time.Since(startedAt), 0)
		return nil, err
	}

	report := Aggregate(query, data)

	logger.WithFields(log.Fields{
		"leads":       len(data.Leads),
		"deals":       len(data.Deals),
		"costs":       len(data.Costs),
		"groups":      len(report.Groups),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("attribution: report built")

	s.metrics.ObserveReport(metrics.OutcomeSuccess, time.Since(startedAt), len(report.Groups))

	return report, nil
}

// fetch busca vendas e custos em paralelo; a primeira falha cancela a outra chamada
func (s *Service) fetch(ctx context.Context, query domain.ReportQuery) (domain.UpstreamData, error) {
	var data domain.UpstreamData

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		startedAt := time.Now()
		leads, deals, err := s.salesService.FetchLeadsAndDeals(gctx, query)
		s.metrics.ObserveUpstream(domain.ServiceSales, time.Since(startedAt), upstreamFailure(gctx, err))
		if err != nil {
			return asDependencyError(domain.ServiceSales, err)
		}
		data.Leads = leads
		data.Deals = deals
		return nil
	})

	g.Go(func() error {
		startedAt := time.Now()
		costs, err := s.costService.FetchCosts(gctx, query)
		s.metrics.ObserveUpstream(domain.ServiceCostImporter, time.Since(startedAt), upstreamFailure(gctx, err))
		if err != nil {
			return asDependencyError(domain.ServiceCostImporter, err)
		}
		data.Costs = costs
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.UpstreamData{}, err
	}

	return data, nil
}

// upstreamFailure descarta o erro de uma chamada cancelada pelo errgroup,
// que não conta como falha do serviço
func upstreamFailure(gctx context.Context, err error) error {
	if err != nil && errors.Is(err, context.Canceled) && gctx.Err() != nil {
		return nil
	}
	return err
}

// asDependencyError garante que falhas de integração sempre carreguem o nome do serviço
func asDependencyError(service string, err error) error {
	if _, ok := domain.AsDependencyError(err); ok {
		return err
	}
	return domain.NewDependencyError(service, err)
}
