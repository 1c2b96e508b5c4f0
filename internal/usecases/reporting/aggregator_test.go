package reporting

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
)

var testQuery = domain.ReportQuery{
	StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
}

func findGroup(t *testing.T, report *domain.AttributionReport, key string) domain.AttributionGroup {
	t.Helper()
	for _, group := range report.Groups {
		if group.Key == key {
			return group
		}
	}
	require.Failf(t, "grupo não encontrado", "key %q", key)
	return domain.AttributionGroup{}
}

func TestAggregate_Grouping(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{{ID: "1", Channel: "ads"}},
		Deals: []domain.DealRecord{{ID: "10", LeadID: "1", Amount: 100, Status: "won"}},
		Costs: []domain.CostRecord{{Channel: "ads", Amount: 40}},
	})

	require.Len(t, report.Groups, 1)
	group := findGroup(t, report, "ads")

	assert.Equal(t, 1, group.LeadsCount)
	assert.Equal(t, 1, group.DealsCount)
	assert.Equal(t, 1, group.DealsWon)
	assert.Equal(t, 100.0, group.Revenue)
	assert.Equal(t, 40.0, group.Spend)
	require.NotNil(t, group.ROAS)
	assert.Equal(t, 2.5, *group.ROAS)
	require.NotNil(t, group.CPA)
	assert.Equal(t, 40.0, *group.CPA)

	assert.True(t, testQuery.StartDate.Equal(report.Range.StartDate))
	assert.True(t, testQuery.EndDate.Equal(report.Range.EndDate))
}

func TestAggregate_SpendOnlyGroup(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Costs: []domain.CostRecord{{Channel: "email", Amount: 25}},
	})

	require.Len(t, report.Groups, 1)
	group := findGroup(t, report, "email")

	assert.Equal(t, 0, group.LeadsCount)
	assert.Equal(t, 0, group.DealsCount)
	assert.Equal(t, 0.0, group.Revenue)
	assert.Equal(t, 25.0, group.Spend)
	assert.Nil(t, group.ROAS)
	assert.Nil(t, group.CPA)

	require.NotNil(t, report.Summary.OverallROAS)
	assert.Equal(t, 0.0, *report.Summary.OverallROAS)
}

func TestAggregate_LeadsWithSpendButNoRevenue(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{{ID: "1", Channel: "ads"}},
		Costs: []domain.CostRecord{{Channel: "ads", Amount: 50}},
	})

	group := findGroup(t, report, "ads")
	require.NotNil(t, group.ROAS)
	assert.Equal(t, 0.0, *group.ROAS)
	assert.Nil(t, group.CPA)
}

func TestAggregate_RevenueWithoutSpendHasNullRatios(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{{ID: "1", Channel: "organic"}},
		Deals: []domain.DealRecord{{ID: "10", LeadID: "1", Amount: 300, Status: "won"}},
	})

	group := findGroup(t, report, "organic")
	assert.Nil(t, group.ROAS)
	require.NotNil(t, group.CPA)
	assert.Equal(t, 0.0, *group.CPA)
	assert.Nil(t, report.Summary.OverallROAS)
}

func TestAggregate_OrphanDealGoesToUnknown(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{{ID: "1", Channel: "ads"}},
		Deals: []domain.DealRecord{
			{ID: "10", LeadID: "999", Amount: 70, Status: "won"},
			{ID: "11", LeadID: "", Amount: 30, Status: "open"},
		},
	})

	require.Len(t, report.Groups, 2)
	unknown := findGroup(t, report, domain.UnknownDimension)

	assert.Equal(t, 0, unknown.LeadsCount)
	assert.Equal(t, 2, unknown.DealsCount)
	assert.Equal(t, 1, unknown.DealsWon)
	assert.Equal(t, 70.0, unknown.Revenue)
	assert.Equal(t, 2, report.Summary.TotalDeals)
}

func TestAggregate_LostDealsCountButAddNoRevenue(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{{ID: "1", Channel: "ads"}},
		Deals: []domain.DealRecord{
			{ID: "10", LeadID: "1", Amount: 100, Status: "lost"},
			{ID: "11", LeadID: "1", Amount: 50, Status: "WON"},
		},
	})

	group := findGroup(t, report, "ads")
	assert.Equal(t, 2, group.DealsCount)
	assert.Equal(t, 1, group.DealsWon)
	assert.Equal(t, 50.0, group.Revenue)
}

func TestAggregate_EmptyInputs(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{})

	require.NotNil(t, report.Groups)
	assert.Empty(t, report.Groups)
	assert.Equal(t, domain.ReportSummary{}, report.Summary)
	assert.Nil(t, report.Summary.OverallROAS)
	assert.Nil(t, report.Summary.OverallCPA)
}

func TestAggregate_InsertionOrder(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{
			{ID: "1", Channel: "social", Source: "facebook"},
			{ID: "2", Channel: "ads", Source: "google", Campaign: "spring"},
			{ID: "3", Channel: "social", Source: "facebook"},
		},
		Deals: []domain.DealRecord{
			{ID: "10", LeadID: "404", Amount: 10, Status: "won"},
		},
		Costs: []domain.CostRecord{
			{Channel: "email", Amount: 5},
			{Channel: "ads", Source: "google", Campaign: "spring", Amount: 20},
			{Channel: "display", Amount: 7},
		},
	})

	keys := make([]string, 0, len(report.Groups))
	for _, group := range report.Groups {
		keys = append(keys, group.Key)
	}

	assert.Equal(t, []string{"social|facebook", "ads|google|spring", "unknown", "email", "display"}, keys)
	assert.Equal(t, 2, findGroup(t, report, "social|facebook").LeadsCount)
}

func TestAggregate_KeyNormalization(t *testing.T) {
	report := Aggregate(testQuery, domain.UpstreamData{
		Leads: []domain.LeadRecord{
			{ID: "1", Channel: " Ads ", Source: ""},
			{ID: "2", Channel: "ads", Source: "  "},
		},
		Costs: []domain.CostRecord{{Channel: "ADS", Amount: 10}},
	})

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]
	assert.Equal(t, "ads", group.Key)
	assert.Equal(t, "ads", group.Channel)
	assert.Equal(t, domain.UnknownDimension, group.Source)
	assert.Equal(t, domain.UnknownDimension, group.Campaign)
	assert.Equal(t, 2, group.LeadsCount)
}

func TestAggregate_SummaryMatchesGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	channels := []string{"ads", "email", "social", "", "organic"}
	sources := []string{"google", "", "facebook"}

	for i := 0; i < 50; i++ {
		var data domain.UpstreamData

		for l := 0; l < rng.Intn(30); l++ {
			data.Leads = append(data.Leads, domain.LeadRecord{
				ID:      strconv.Itoa(l),
				Channel: channels[rng.Intn(len(channels))],
				Source:  sources[rng.Intn(len(sources))],
			})
		}
		for d := 0; d < rng.Intn(30); d++ {
			status := "open"
			if rng.Intn(2) == 0 {
				status = "won"
			}
			data.Deals = append(data.Deals, domain.DealRecord{
				ID:     strconv.Itoa(d),
				LeadID: strconv.Itoa(rng.Intn(40)),
				Amount: float64(rng.Intn(1000)),
				Status: status,
			})
		}
		for c := 0; c < rng.Intn(10); c++ {
			data.Costs = append(data.Costs, domain.CostRecord{
				Channel: channels[rng.Intn(len(channels))],
				Amount:  float64(rng.Intn(500)),
			})
		}

		report := Aggregate(testQuery, data)

		var leads, deals int
		var revenue, spend float64
		for _, group := range report.Groups {
			leads += group.LeadsCount
			deals += group.DealsCount
			revenue += group.Revenue
			spend += group.Spend
		}

		assert.Equal(t, len(data.Leads), report.Summary.TotalLeads)
		assert.Equal(t, len(data.Deals), report.Summary.TotalDeals)
		assert.Equal(t, leads, report.Summary.TotalLeads)
		assert.Equal(t, deals, report.Summary.TotalDeals)
		assert.InDelta(t, revenue, report.Summary.TotalRevenue, 1e-9)
		assert.InDelta(t, spend, report.Summary.TotalSpend, 1e-9)

		if report.Summary.TotalSpend > 0 {
			require.NotNil(t, report.Summary.OverallROAS)
			assert.InDelta(t, report.Summary.TotalRevenue/report.Summary.TotalSpend, *report.Summary.OverallROAS, 1e-9)
		} else {
			assert.Nil(t, report.Summary.OverallROAS)
		}
	}
}

func TestValidate(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Validate(domain.ReportQuery{StartDate: day, EndDate: day}))
	assert.NoError(t, Validate(domain.ReportQuery{StartDate: day, EndDate: day.AddDate(0, 0, 1)}))

	err := Validate(domain.ReportQuery{StartDate: day.AddDate(0, 0, 1), EndDate: day})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Equal(t, "startDate must be before or equal to endDate", err.Error())
}
