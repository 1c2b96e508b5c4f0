package reporting

import (
	"github.com/vfg2006/traffic-crm-reporting/internal/domain"
)

// Validate garante que startDate <= endDate. Não faz nenhuma chamada externa.
func Validate(query domain.ReportQuery) error {
	if query.StartDate.After(query.EndDate) {
		return domain.NewValidationError("startDate", domain.ErrInvalidDateRange)
	}
	return nil
}
