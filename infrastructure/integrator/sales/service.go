package sales

import (
	"context"
	"time"

	"github.com/pkg/errors"
	salesdomain "github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/sales/domain"
	"github.com/vfg2006/traffic-crm-reporting/infrastructure/integrator/sales/salesclient"
	"github.com/vfg2006/traffic-crm-reporting/internal/config"
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_sales.go -package=mocks

type SalesIntegrator interface {
	FetchLeadsAndDeals(ctx context.Context, query domain.ReportQuery) ([]domain.LeadRecord, []domain.DealRecord, error)
}

type SalesService struct {
	timeout time.Duration
	Client  salesclient.Client
}

func New(cfg *config.Config, client salesclient.Client) SalesIntegrator {
	return &SalesService{
		timeout: cfg.Upstream.Timeout,
		Client:  client,
	}
}

// FetchLeadsAndDeals busca leads e negócios do período no serviço de vendas.
// Qualquer falha vira um DependencyError com o nome do serviço.
func (s *SalesService) FetchLeadsAndDeals(ctx context.Context, query domain.ReportQuery) ([]domain.LeadRecord, []domain.DealRecord, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	params := salesclient.AttributionParams{
		StartDate: query.StartDate.Format(time.RFC3339),
		EndDate:   query.EndDate.Format(time.RFC3339),
		Channel:   query.Channel,
		TenantID:  query.TenantID,
	}

	resp, err := s.Client.GetLeadsAndDeals(ctx, params)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = errors.Wrapf(err, "timeout after %s", s.timeout)
		}

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"service":    domain.ServiceSales,
			"start_date": params.StartDate,
			"end_date":   params.EndDate,
		}).Warn("sales: failed to fetch leads and deals")

		return nil, nil, domain.NewDependencyError(domain.ServiceSales, err)
	}

	if resp == nil {
		return nil, nil, domain.NewDependencyError(domain.ServiceSales, errors.New("empty response"))
	}

	leads := make([]domain.LeadRecord, 0, len(resp.Leads))
	for _, lead := range resp.Leads {
		leads = append(leads, toLeadRecord(lead))
	}

	deals := make([]domain.DealRecord, 0, len(resp.Deals))
	for _, deal := range resp.Deals {
		deals = append(deals, toDealRecord(deal))
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"service": domain.ServiceSales,
		"leads":   len(leads),
		"deals":   len(deals),
	}).Debug("sales: leads and deals fetched")

	return leads, deals, nil
}

func toLeadRecord(lead salesdomain.Lead) domain.LeadRecord {
	record := domain.LeadRecord{
		ID:       lead.ID.String(),
		Channel:  lead.Channel,
		Source:   lead.Source,
		Campaign: lead.Campaign,
	}
	if lead.CreatedAt != nil {
		record.CreatedAt = *lead.CreatedAt
	}
	return record
}

func toDealRecord(deal salesdomain.Deal) domain.DealRecord {
	record := domain.DealRecord{
		ID:     deal.ID.String(),
		LeadID: deal.LeadID.String(),
		Amount: deal.Amount.Float64(),
		Status: deal.Status,
		WonAt:  deal.WonAt,
	}
	if record.Status == "" && deal.Won {
		record.Status = "won"
	}
	if deal.CreatedAt != nil {
		record.CreatedAt = *deal.CreatedAt
	}
	return record
}
