package domain

// AdSetListResponse é a resposta de "ads list"
type AdSetListResponse struct {
	Live   bool       `json:"live"`
	Source Provenance `json:"source"`
	Total  int        `json:"total"`
	AdSets []AdSet    `json:"adsets"`
}

// AdSetSearchResponse é a resposta de "ads search"; Total conta todos os encontrados,
// mesmo quando AdSets foi truncado pelo limite
type AdSetSearchResponse struct {
	Live   bool       `json:"live"`
	Source Provenance `json:"source"`
	Query  string     `json:"query"`
	Total  int        `json:"total"`
	AdSets []AdSet    `json:"adsets"`
}

type AdSetStatusResponse struct {
	Live         bool         `json:"live"`
	Source       Provenance   `json:"source"`
	Stats        AdSetStats   `json:"stats"`
	Threshold    float64      `json:"threshold"`
	WarningCount int          `json:"warning_count"`
	Warnings     []AdSet      `json:"warnings"`
	Account      *AccountInfo `json:"account,omitempty"`
}

// APITestReport é o diagnóstico da integração com o Meta
type APITestReport struct {
	HasAppID       bool     `json:"has_app_id"`
	HasAppSecret   bool     `json:"has_app_secret"`
	HasAccessToken bool     `json:"has_access_token"`
	HasAdAccountID bool     `json:"has_ad_account_id"`
	MissingKeys    []string `json:"missing_keys"`
	Attempted      bool     `json:"attempted"`
	AdSetsOK       bool     `json:"adsets_ok"`
	AdSetCount     int      `json:"adset_count"`
	AccountOK      bool     `json:"account_ok"`
	AccountName    string   `json:"account_name,omitempty"`
	AccountStatus  int      `json:"account_status,omitempty"`
}

type HelloResponse struct {
	Message string `json:"message"`
}
