package domain

import (
	"strings"

	"github.com/vfg2006/adset-control-api/pkg/utils"
)

const DefaultWarningThreshold = 0.8

type AdSetStats struct {
	ActiveCount      int     `json:"active_count"`
	PausedCount      int     `json:"paused_count"`
	TotalSpend       float64 `json:"total_spend"`
	TotalBudget      float64 `json:"total_budget"`
	TotalImpressions float64 `json:"total_impressions"`
	TotalClicks      float64 `json:"total_clicks"`
	UsageRatio       float64 `json:"usage_ratio"`
	CTR              float64 `json:"ctr"`
}

// Aggregate soma gasto, orçamento, impressões e cliques de todos os conjuntos (ativos ou não)
func Aggregate(records []AdSet) AdSetStats {
	stats := AdSetStats{}

	for _, r := range records {
		switch r.Status {
		case AdSetStatusActive:
			stats.ActiveCount++
		case AdSetStatusPaused:
			stats.PausedCount++
		}

		stats.TotalSpend += r.Spend()
		stats.TotalBudget += r.Budget()
		stats.TotalImpressions += r.Impressions()
		stats.TotalClicks += r.Clicks()
	}

	stats.UsageRatio = utils.SafeDivide(stats.TotalSpend, stats.TotalBudget)
	stats.CTR = utils.SafeDivide(stats.TotalClicks, stats.TotalImpressions) * 100

	return stats
}

// BudgetWarnings retorna os conjuntos ativos cujo gasto/orçamento é estritamente maior que
// o limite. Sem orçamento o denominador é 1, então qualquer gasto gera alerta.
func BudgetWarnings(records []AdSet, threshold float64) []AdSet {
	warnings := make([]AdSet, 0)

	for _, r := range records {
		if !r.IsActive() {
			continue
		}

		budget := r.Budget()
		if budget <= 0 {
			budget = 1
		}

		if r.Spend()/budget > threshold {
			warnings = append(warnings, r)
		}
	}

	return warnings
}

type SearchResult struct {
	Query   string  `json:"query"`
	Total   int     `json:"total"`
	Matches []AdSet `json:"matches"`
}

// Head devolve no máximo n resultados; n <= 0 devolve todos
func (r SearchResult) Head(n int) []AdSet {
	if n <= 0 || n >= len(r.Matches) {
		return r.Matches
	}
	return r.Matches[:n]
}

// FilterByName mantém a ordem original; consulta vazia retorna todos os registros
func FilterByName(records []AdSet, query string) SearchResult {
	needle := strings.ToLower(query)
	matches := make([]AdSet, 0)

	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matches = append(matches, r)
		}
	}

	return SearchResult{
		Query:   query,
		Total:   len(matches),
		Matches: matches,
	}
}
