package metadomain

// AdSet é o conjunto de anúncios como retornado pela Graph API; números chegam como string
type AdSet struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	DailyBudget    string          `json:"daily_budget,omitempty"`
	LifetimeBudget string          `json:"lifetime_budget,omitempty"`
	CreatedTime    string          `json:"created_time,omitempty"`
	UpdatedTime    string          `json:"updated_time,omitempty"`
	Insights       *InsightsResult `json:"insights,omitempty"`
}

// InsightsResult é o envelope de um campo de insights expandido (insights{...})
type InsightsResult struct {
	Data []AdSetInsight `json:"data"`
}

// First retorna a primeira linha de insights, se existir
func (r *InsightsResult) First() *AdSetInsight {
	if r == nil || len(r.Data) == 0 {
		return nil
	}
	return &r.Data[0]
}

type AdSetInsight struct {
	Spend       string `json:"spend,omitempty"`
	Impressions string `json:"impressions,omitempty"`
	Clicks      string `json:"clicks,omitempty"`
	Reach       string `json:"reach,omitempty"`
	CTR         string `json:"ctr,omitempty"`
	DateStart   string `json:"date_start,omitempty"`
	DateStop    string `json:"date_stop,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// UpdateResponse é a resposta de POST /{adset_id}
type UpdateResponse struct {
	Success bool `json:"success"`
}
