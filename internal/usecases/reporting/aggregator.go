package reporting

import (
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
)

// groupSet mantém os grupos na ordem em que as chaves aparecem pela primeira vez
type groupSet struct {
	index  map[domain.AttributionKey]int
	groups []*domain.AttributionGroup
}

func newGroupSet() *groupSet {
	return &groupSet{
		index:  make(map[domain.AttributionKey]int),
		groups: make([]*domain.AttributionGroup, 0),
	}
}

func (s *groupSet) get(key domain.AttributionKey) *domain.AttributionGroup {
	if i, ok := s.index[key]; ok {
		return s.groups[i]
	}

	group := &domain.AttributionGroup{
		Key:      key.String(),
		Channel:  key.Channel,
		Source:   key.Source,
		Campaign: key.Campaign,
	}
	s.index[key] = len(s.groups)
	s.groups = append(s.groups, group)

	return group
}

// Aggregate cruza leads, negócios e custos por chave de atribuição e calcula as métricas.
// Ordem dos grupos: primeiro os vistos nos leads, depois nos negócios, depois nos custos.
func Aggregate(query domain.ReportQuery, data domain.UpstreamData) *domain.AttributionReport {
	set := newGroupSet()

	// leadID -> chave, para resolver o lead dono de cada negócio
	leadKeys := make(map[string]domain.AttributionKey, len(data.Leads))

	for _, lead := range data.Leads {
		key := domain.NewAttributionKey(lead.Channel, lead.Source, lead.Campaign)
		if _, seen := leadKeys[lead.ID]; !seen && lead.ID != "" {
			leadKeys[lead.ID] = key
		}
		set.get(key).LeadsCount++
	}

	for _, deal := range data.Deals {
		key, ok := leadKeys[deal.LeadID]
		if !ok {
			key = domain.UnknownKey()
		}

		group := set.get(key)
		group.DealsCount++
		if deal.IsWon() {
			group.DealsWon++
			group.Revenue += deal.Amount
		}
	}

	// custos sem lead/negócio correspondente também geram grupo (investimento sem retorno)
	for _, cost := range data.Costs {
		key := domain.NewAttributionKey(cost.Channel, cost.Source, cost.Campaign)
		set.get(key).Spend += cost.Amount
	}

	groups := make([]domain.AttributionGroup, 0, len(set.groups))
	for _, group := range set.groups {
		// grupo só com custo não tem conversões a atribuir: ROAS fica nulo
		if group.LeadsCount > 0 || group.DealsCount > 0 {
			group.ROAS = ratio(group.Revenue, group.Spend)
		}
		group.CPA = ratio(group.Spend, float64(group.DealsWon))
		groups = append(groups, *group)
	}

	return &domain.AttributionReport{
		Range: domain.ReportRange{
			StartDate: query.StartDate,
			EndDate:   query.EndDate,
		},
		Groups:  groups,
		Summary: summarize(groups),
	}
}

func summarize(groups []domain.AttributionGroup) domain.ReportSummary {
	var summary domain.ReportSummary

	for _, group := range groups {
		summary.TotalLeads += group.LeadsCount
		summary.TotalDeals += group.DealsCount
		summary.TotalDealsWon += group.DealsWon
		summary.TotalRevenue += group.Revenue
		summary.TotalSpend += group.Spend
	}

	summary.OverallROAS = ratio(summary.TotalRevenue, summary.TotalSpend)
	summary.OverallCPA = ratio(summary.TotalSpend, float64(summary.TotalDealsWon))

	return summary
}

// ratio devolve nil quando o denominador não é positivo; nil significa "não calculável", não zero
func ratio(numerator, denominator float64) *float64 {
	if denominator <= 0 {
		return nil
	}
	value := numerator / denominator
	return &value
}
