package metadomain

// AdAccount representa GET /act_<id>?fields=name,balance,account_status,...
type AdAccount struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Balance           string          `json:"balance"`
	AccountStatus     int             `json:"account_status"`
	InsightsToday     *InsightsResult `json:"insights_today,omitempty"`
	InsightsYesterday *InsightsResult `json:"insights_yesterday,omitempty"`
}
