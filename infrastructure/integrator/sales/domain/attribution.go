package salesdomain

import (
	"time"

	"github.com/vfg2006/traffic-crm-reporting/pkg/utils"
)

// Lead é o lead como devolvido pelo serviço de vendas
type Lead struct {
	ID        utils.FlexString `json:"id"`
	Channel   string           `json:"channel"`
	Source    string           `json:"source"`
	Campaign  string           `json:"campaign"`
	CreatedAt *time.Time       `json:"createdAt"`
}

// Deal é o negócio como devolvido pelo serviço de vendas
type Deal struct {
	ID        utils.FlexString `json:"id"`
	LeadID    utils.FlexString `json:"leadId"`
	Amount    utils.FlexFloat  `json:"amount"`
	Status    string           `json:"status"`
	Won       bool             `json:"won,omitempty"`
	WonAt     *time.Time       `json:"wonAt"`
	CreatedAt *time.Time       `json:"createdAt"`
}

// LeadsDealsResponse é o corpo da resposta de /attribution/leads-deals
type LeadsDealsResponse struct {
	Leads []Lead `json:"leads"`
	Deals []Deal `json:"deals"`
}
