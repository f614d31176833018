package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		records  []AdSet
		validate func(t *testing.T, stats AdSetStats)
	}{
		{
			name:    "Lista vazia - totais zerados e razões finitas",
			records: []AdSet{},
			validate: func(t *testing.T, stats AdSetStats) {
				assert.Equal(t, AdSetStats{}, stats)
				assert.False(t, math.IsNaN(stats.UsageRatio))
				assert.False(t, math.IsNaN(stats.CTR))
			},
		},
		{
			name:    "Conjuntos de demonstração",
			records: DemoAdSets(),
			validate: func(t *testing.T, stats AdSetStats) {
				assert.Equal(t, 2, stats.ActiveCount)
				assert.Equal(t, 1, stats.PausedCount)
				assert.Equal(t, 20500.0, stats.TotalSpend)
				assert.Equal(t, 30000.0, stats.TotalBudget)
				assert.InDelta(t, 0.6833, stats.UsageRatio, 0.0001)
				assert.Equal(t, 0.0, stats.CTR)
			},
		},
		{
			name: "insights.spend tem precedência sobre spendToday",
			records: []AdSet{
				{
					ID:          "1",
					Status:      AdSetStatusActive,
					DailyBudget: Float64Ptr(100),
					SpendToday:  Float64Ptr(999),
					Insights: &AdSetInsights{
						Spend:       Float64Ptr(40),
						Impressions: Float64Ptr(1000),
						Clicks:      Float64Ptr(25),
					},
				},
			},
			validate: func(t *testing.T, stats AdSetStats) {
				assert.Equal(t, 40.0, stats.TotalSpend)
				assert.Equal(t, 0.4, stats.UsageRatio)
				assert.Equal(t, 1000.0, stats.TotalImpressions)
				assert.Equal(t, 25.0, stats.TotalClicks)
				assert.InDelta(t, 2.5, stats.CTR, 0.0001)
			},
		},
		{
			name: "Sem orçamento e sem impressões - razões zeradas",
			records: []AdSet{
				{ID: "1", Status: AdSetStatusPaused, SpendToday: Float64Ptr(50)},
				{ID: "2", Status: AdSetStatusActive, LifetimeBudget: Float64Ptr(100000)},
			},
			validate: func(t *testing.T, stats AdSetStats) {
				assert.Equal(t, 50.0, stats.TotalSpend)
				assert.Equal(t, 0.0, stats.TotalBudget)
				assert.Equal(t, 0.0, stats.UsageRatio)
				assert.Equal(t, 0.0, stats.CTR)
				assert.False(t, math.IsInf(stats.UsageRatio, 0))
			},
		},
		{
			name: "Insights parciais - campos ausentes contam como zero",
			records: []AdSet{
				{ID: "1", Status: AdSetStatusActive, DailyBudget: Float64Ptr(200), Insights: &AdSetInsights{Clicks: Float64Ptr(3)}},
				{ID: "2", Status: AdSetStatusActive, DailyBudget: Float64Ptr(200), Insights: &AdSetInsights{Impressions: Float64Ptr(300)}},
			},
			validate: func(t *testing.T, stats AdSetStats) {
				assert.Equal(t, 0.0, stats.TotalSpend)
				assert.Equal(t, 400.0, stats.TotalBudget)
				assert.Equal(t, 3.0, stats.TotalClicks)
				assert.Equal(t, 300.0, stats.TotalImpressions)
				assert.InDelta(t, 1.0, stats.CTR, 0.0001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Aggregate(tt.records))
		})
	}
}

func TestAggregate_IsPure(t *testing.T) {
	records := DemoAdSets()

	first := Aggregate(records)
	second := Aggregate(records)

	assert.Equal(t, first, second)
	assert.Equal(t, DemoAdSets(), records)
}

func TestBudgetWarnings(t *testing.T) {
	tests := []struct {
		name      string
		records   []AdSet
		threshold float64
		expected  []string
	}{
		{
			name:      "Demonstração - apenas o conjunto acima de 80%",
			records:   DemoAdSets(),
			threshold: DefaultWarningThreshold,
			expected:  []string{"demo_adset_001"},
		},
		{
			name: "Exatamente no limite não gera alerta",
			records: []AdSet{
				{ID: "exact", Status: AdSetStatusActive, DailyBudget: Float64Ptr(1000), SpendToday: Float64Ptr(800)},
			},
			threshold: 0.8,
			expected:  []string{},
		},
		{
			name: "Pausados nunca geram alerta",
			records: []AdSet{
				{ID: "paused", Status: AdSetStatusPaused, DailyBudget: Float64Ptr(100), SpendToday: Float64Ptr(500)},
			},
			threshold: 0.8,
			expected:  []string{},
		},
		{
			name: "Sem orçamento e com gasto sempre gera alerta",
			records: []AdSet{
				{ID: "no-budget", Status: AdSetStatusActive, Insights: &AdSetInsights{Spend: Float64Ptr(1)}},
				{ID: "zero-budget", Status: AdSetStatusActive, DailyBudget: Float64Ptr(0), SpendToday: Float64Ptr(5)},
				{ID: "no-spend", Status: AdSetStatusActive},
			},
			threshold: 0.8,
			expected:  []string{"no-budget", "zero-budget"},
		},
		{
			name: "Ordem de entrada preservada",
			records: []AdSet{
				{ID: "c", Status: AdSetStatusActive, DailyBudget: Float64Ptr(10), SpendToday: Float64Ptr(10)},
				{ID: "a", Status: AdSetStatusActive, DailyBudget: Float64Ptr(10), SpendToday: Float64Ptr(1)},
				{ID: "b", Status: AdSetStatusActive, DailyBudget: Float64Ptr(10), SpendToday: Float64Ptr(9)},
			},
			threshold: 0.8,
			expected:  []string{"c", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := BudgetWarnings(tt.records, tt.threshold)

			ids := make([]string, 0, len(warnings))
			for _, w := range warnings {
				assert.Equal(t, AdSetStatusActive, w.Status)
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterByName(t *testing.T) {
	records := DemoAdSets()

	t.Run("Busca sem diferenciar maiúsculas", func(t *testing.T) {
		result := FilterByName(records, "demo")
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, records, result.Matches)
	})

	t.Run("Sem resultados não é erro", func(t *testing.T) {
		result := FilterByName(records, "xyz")
		assert.Equal(t, 0, result.Total)
		assert.NotNil(t, result.Matches)
		assert.Empty(t, result.Matches)
	})

	t.Run("Consulta vazia retorna todos", func(t *testing.T) {
		result := FilterByName(records, "")
		assert.Equal(t, len(records), result.Total)
	})

	t.Run("Resultado é subsequência na ordem original", func(t *testing.T) {
		result := FilterByName(records, "REMARKETING")
		require.Equal(t, 1, result.Total)
		assert.Equal(t, "demo_adset_002", result.Matches[0].ID)

		result = FilterByName(records, " DE ")
		require.Equal(t, 2, result.Total)
		assert.Equal(t, "demo_adset_001", result.Matches[0].ID)
		assert.Equal(t, "demo_adset_003", result.Matches[1].ID)
	})

	t.Run("Head limita apenas a exibição", func(t *testing.T) {
		result := FilterByName(records, "demo")
		assert.Len(t, result.Head(2), 2)
		assert.Len(t, result.Head(0), 3)
		assert.Len(t, result.Head(10), 3)
		assert.Equal(t, 3, result.Total)
	})
}
