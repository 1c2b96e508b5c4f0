package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
	reportingmocks "github.com/vfg2006/traffic-crm-reporting/internal/usecases/reporting/mocks"
	"github.com/vfg2006/traffic-crm-reporting/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestGetAttributionReport(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	report := &domain.AttributionReport{
		Range: domain.ReportRange{StartDate: start, EndDate: end},
		Groups: []domain.AttributionGroup{
			{
				Key: "ads", Channel: "ads", Source: "unknown", Campaign: "unknown",
				LeadsCount: 2, DealsCount: 1, DealsWon: 1, Revenue: 100, Spend: 40,
				ROAS: floatPtr(2.5), CPA: floatPtr(40),
			},
		},
		Summary: domain.ReportSummary{
			TotalLeads: 2, TotalDeals: 1, TotalDealsWon: 1, TotalRevenue: 100, TotalSpend: 40,
			OverallROAS: floatPtr(2.5), OverallCPA: floatPtr(40),
		},
	}

	tests := []struct {
		name           string
		url            string
		setup          func(*reportingmocks.MockAttributionReporter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "sucesso",
			url:  "/reporting/attribution?startDate=2024-01-01&endDate=2024-01-31&channel=ads",
			setup: func(m *reportingmocks.MockAttributionReporter) {
				m.EXPECT().
					GetAttributionReport(gomock.Any(), domain.ReportQuery{StartDate: start, EndDate: end, Channel: "ads"}).
					Return(report, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"range": {"startDate": "2024-01-01T00:00:00Z", "endDate": "2024-01-31T00:00:00Z"},
				"groups": [{
					"key": "ads", "channel": "ads", "source": "unknown", "campaign": "unknown",
					"leadsCount": 2, "dealsCount": 1, "dealsWon": 1, "revenue": 100, "spend": 40,
					"roas": 2.5, "cpa": 40
				}],
				"summary": {
					"totalLeads": 2, "totalDeals": 1, "totalDealsWon": 1, "totalRevenue": 100,
					"totalSpend": 40, "overallRoas": 2.5, "overallCpa": 40
				}
			}`,
		},
		{
			name: "intervalo invertido",
			url:  "/reporting/attribution?startDate=2024-02-01&endDate=2024-01-01",
			setup: func(m *reportingmocks.MockAttributionReporter) {
				m.EXPECT().
					GetAttributionReport(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewValidationError("startDate", domain.ErrInvalidDateRange))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_001","message":"startDate must be before or equal to endDate"}`,
		},
		{
			name:           "startDate ausente",
			url:            "/reporting/attribution?endDate=2024-01-01",
			setup:          func(*reportingmocks.MockAttributionReporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_002","message":"startDate: date is required"}`,
		},
		{
			name:           "endDate malformado",
			url:            "/reporting/attribution?startDate=2024-01-01&endDate=31/01/2024",
			setup:          func(*reportingmocks.MockAttributionReporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"code":"VAL_003","message":"endDate: date must be ISO-8601"}`,
		},
		{
			name: "serviço de vendas indisponível",
			url:  "/reporting/attribution?startDate=2024-01-01&endDate=2024-01-31",
			setup: func(m *reportingmocks.MockAttributionReporter) {
				m.EXPECT().
					GetAttributionReport(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewDependencyError(domain.ServiceSales, errors.New("dial tcp: connection refused")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"code":"SRV_003","message":"dependency failure: sales service unavailable"}`,
		},
		{
			name: "cost-importer indisponível",
			url:  "/reporting/attribution?startDate=2024-01-01&endDate=2024-01-31",
			setup: func(m *reportingmocks.MockAttributionReporter) {
				m.EXPECT().
					GetAttributionReport(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewDependencyError(domain.ServiceCostImporter, errors.New("timeout after 5s")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"code":"SRV_003","message":"dependency failure: cost-importer service unavailable"}`,
		},
		{
			name: "erro inesperado não vaza detalhes",
			url:  "/reporting/attribution?startDate=2024-01-01&endDate=2024-01-31",
			setup: func(m *reportingmocks.MockAttributionReporter) {
				m.EXPECT().
					GetAttributionReport(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("nil pointer somewhere"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"code":"SRV_001","message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := reportingmocks.NewMockAttributionReporter(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			GetAttributionReport(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestGetAttributionReport_NullRatiosAndEmptyGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockAttributionReporter(ctrl)
	service.EXPECT().
		GetAttributionReport(gomock.Any(), gomock.Any()).
		Return(&domain.AttributionReport{Groups: []domain.AttributionGroup{}}, nil)

	rec := httptest.NewRecorder()
	GetAttributionReport(service).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/reporting/attribution?startDate=2024-01-01&endDate=2024-01-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"groups":[]`)
	assert.Contains(t, rec.Body.String(), `"overallRoas":null`)
	assert.Contains(t, rec.Body.String(), `"overallCpa":null`)
}

func TestGetAttributionReport_TenantFromClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockAttributionReporter(ctrl)
	service.EXPECT().
		GetAttributionReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query domain.ReportQuery) (*domain.AttributionReport, error) {
			assert.Equal(t, "tenant-do-token", query.TenantID)
			assert.Equal(t, "ads", query.Channel)
			return &domain.AttributionReport{Groups: []domain.AttributionGroup{}}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/reporting/attribution?startDate=2024-01-01T00:00:00Z&endDate=2024-01-31T23:59:59Z&channel=%20ads%20&tenantId=outro", nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, &domain.Claims{UserID: "u1", TenantID: "tenant-do-token"})

	rec := httptest.NewRecorder()
	GetAttributionReport(service).ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAttributionReport_UnencodableReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockAttributionReporter(ctrl)
	service.EXPECT().
		GetAttributionReport(gomock.Any(), gomock.Any()).
		Return(&domain.AttributionReport{
			Groups: []domain.AttributionGroup{{Key: "ads", Channel: "ads", Revenue: math.NaN()}},
		}, nil)

	rec := httptest.NewRecorder()
	GetAttributionReport(service).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/reporting/attribution?startDate=2024-01-01&endDate=2024-01-31", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","message":"internal server error"}`, rec.Body.String())
}

func TestHealthcheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}
