package reporting

import (
	"context"

	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporting.go -package=mocks

// AttributionReporter monta relatórios de atribuição a partir dos serviços de vendas e custos
type AttributionReporter interface {
	// GetAttributionReport valida a consulta, busca leads, negócios e custos e agrega por chave de atribuição
	GetAttributionReport(ctx context.Context, query domain.ReportQuery) (*domain.AttributionReport, error)
}
