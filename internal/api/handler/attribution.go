package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
	"github.com/vfg2006/traffic-crm-reporting/internal/usecases/reporting"
	"github.com/vfg2006/traffic-crm-reporting/pkg/apiErrors"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
	"github.com/vfg2006/traffic-crm-reporting/pkg/middleware"
	"github.com/vfg2006/traffic-crm-reporting/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func GetAttributionReport(service reporting.AttributionReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query, err := parseReportQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("startDate"),
				"end_date":   r.URL.Query().Get("endDate"),
				"error":      err.Error(),
			}).Warn("attribution: invalid query parameters")

			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": query.StartDate.Format(time.RFC3339),
			"end_date":   query.EndDate.Format(time.RFC3339),
			"channel":    query.Channel,
			"tenant_id":  query.TenantID,
		}).Debug("attribution: building report")

		report, err := service.GetAttributionReport(r.Context(), query)
		if err != nil {
			logger.WithError(err).Warn("attribution: report failed")
			writeReportError(w, err)
			return
		}

		// serializa antes do WriteHeader para que uma falha ainda vire 500
		body, err := json.Marshal(report)
		if err != nil {
			logger.WithError(err).Error("attribution: error encoding response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			logger.WithError(err).Warn("attribution: error writing response")
		}
	})
}

// parseReportQuery lê startDate, endDate, channel e tenantId da query string.
// Com autenticação ligada o tenant do token prevalece sobre o parâmetro.
func parseReportQuery(r *http.Request) (domain.ReportQuery, error) {
	params := r.URL.Query()

	startDate, err := parseDateParam("startDate", params.Get("startDate"))
	if err != nil {
		return domain.ReportQuery{}, err
	}

	endDate, err := parseDateParam("endDate", params.Get("endDate"))
	if err != nil {
		return domain.ReportQuery{}, err
	}

	query := domain.ReportQuery{
		StartDate: startDate,
		EndDate:   endDate,
		Channel:   strings.TrimSpace(params.Get("channel")),
		TenantID:  strings.TrimSpace(params.Get("tenantId")),
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.TenantID != "" {
		query.TenantID = claims.TenantID
	}

	return query, nil
}

func parseDateParam(field, value string) (time.Time, error) {
	date, err := utils.ParseDate(value)
	if err == nil {
		return date, nil
	}

	if errors.Is(err, utils.ErrEmptyDate) {
		return time.Time{}, domain.NewValidationError(field, domain.ErrMissingDate)
	}
	return time.Time{}, domain.NewValidationError(field, domain.ErrInvalidDate)
}

// writeReportError traduz os erros do relatório para o envelope da API sem vazar detalhes internos
func writeReportError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		code := apiErrors.ErrInvalidRequest
		switch {
		case errors.Is(err, domain.ErrMissingDate):
			code = apiErrors.ErrMissingRequiredData
		case errors.Is(err, domain.ErrInvalidDate):
			code = apiErrors.ErrInvalidFormat
		}
		apiErrors.WriteError(w, code, validationErr.Error(), nil)
		return
	}

	if depErr, ok := domain.AsDependencyError(err); ok {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, fmt.Sprintf("dependency failure: %s service unavailable", depErr.Service), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
}
