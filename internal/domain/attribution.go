package domain

import (
	"strings"
	"time"
)

// UnknownDimension é o valor usado quando canal, origem ou campanha não vieram preenchidos
const UnknownDimension = "unknown"

// ReportQuery define o período e os filtros de um relatório de atribuição
type ReportQuery struct {
	StartDate time.Time
	EndDate   time.Time
	Channel   string
	TenantID  string
}

type LeadRecord struct {
	ID        string
	Channel   string
	Source    string
	Campaign  string
	CreatedAt time.Time
}

type DealRecord struct {
	ID        string
	LeadID    string
	Amount    float64
	Status    string
	WonAt     *time.Time
	CreatedAt time.Time
}

// IsWon indica se o negócio foi ganho, seja pela data de ganho ou pelo status
func (d DealRecord) IsWon() bool {
	if d.WonAt != nil && !d.WonAt.IsZero() {
		return true
	}

	switch strings.ToLower(strings.TrimSpace(d.Status)) {
	case "won", "closed_won":
		return true
	}

	return false
}

type CostRecord struct {
	Channel     string
	Source      string
	Campaign    string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Amount      float64
}

// AttributionKey é a chave composta usada para agrupar leads, negócios e custos
type AttributionKey struct {
	Channel  string
	Source   string
	Campaign string
}

// NewAttributionKey normaliza as dimensões; valores vazios viram UnknownDimension
func NewAttributionKey(channel, source, campaign string) AttributionKey {
	return AttributionKey{
		Channel:  normalizeDimension(channel),
		Source:   normalizeDimension(source),
		Campaign: normalizeDimension(campaign),
	}
}

// UnknownKey agrupa tudo que não pode ser atribuído
func UnknownKey() AttributionKey {
	return NewAttributionKey("", "", "")
}

// String renderiza a chave como channel|source|campaign, omitindo dimensões
// desconhecidas no final ("ads|unknown|unknown" vira "ads").
func (k AttributionKey) String() string {
	parts := []string{k.Channel, k.Source, k.Campaign}
	for len(parts) > 1 && parts[len(parts)-1] == UnknownDimension {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, "|")
}

func normalizeDimension(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnknownDimension
	}
	return s
}

type AttributionGroup struct {
	Key        string   `json:"key"`
	Channel    string   `json:"channel"`
	Source     string   `json:"source"`
	Campaign   string   `json:"campaign"`
	LeadsCount int      `json:"leadsCount"`
	DealsCount int      `json:"dealsCount"`
	DealsWon   int      `json:"dealsWon"`
	Revenue    float64  `json:"revenue"`
	Spend      float64  `json:"spend"`
	ROAS       *float64 `json:"roas"`
	CPA        *float64 `json:"cpa"`
}

type ReportRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type ReportSummary struct {
	TotalLeads    int      `json:"totalLeads"`
	TotalDeals    int      `json:"totalDeals"`
	TotalDealsWon int      `json:"totalDealsWon"`
	TotalRevenue  float64  `json:"totalRevenue"`
	TotalSpend    float64  `json:"totalSpend"`
	OverallROAS   *float64 `json:"overallRoas"`
	OverallCPA    *float64 `json:"overallCpa"`
}

// AttributionReport é o DTO devolvido pelo endpoint de atribuição
type AttributionReport struct {
	Range   ReportRange        `json:"range"`
	Groups  []AttributionGroup `json:"groups"`
	Summary ReportSummary      `json:"summary"`
}

// UpstreamData reúne o que foi buscado nos serviços de vendas e de custos para uma requisição
type UpstreamData struct {
	Leads []LeadRecord
	Deals []DealRecord
	Costs []CostRecord
}
