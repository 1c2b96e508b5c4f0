package costdomain

import (
	"time"

	"github.com/vfg2006/traffic-crm-reporting/pkg/utils"
)

// Cost é uma linha de investimento importada pelo cost-importer
type Cost struct {
	Channel     string          `json:"channel"`
	Source      string          `json:"source"`
	Campaign    string          `json:"campaign"`
	PeriodStart *time.Time      `json:"periodStart"`
	PeriodEnd   *time.Time      `json:"periodEnd"`
	Amount      utils.FlexFloat `json:"amount"`
}
