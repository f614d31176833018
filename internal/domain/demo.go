package domain

import "time"

var demoCreatedAt = time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

// demoAdSets nunca é exposto diretamente, apenas cópias via DemoAdSets
var demoAdSets = []AdSet{
	{
		ID:          "demo_adset_001",
		Name:        "Demo - Campanha de Verão",
		Status:      AdSetStatusActive,
		DailyBudget: Float64Ptr(10000),
		SpendToday:  Float64Ptr(8500),
		CreatedTime: &demoCreatedAt,
		UpdatedTime: &demoCreatedAt,
	},
	{
		ID:          "demo_adset_002",
		Name:        "Demo - Remarketing",
		Status:      AdSetStatusPaused,
		DailyBudget: Float64Ptr(5000),
		SpendToday:  Float64Ptr(0),
		CreatedTime: &demoCreatedAt,
		UpdatedTime: &demoCreatedAt,
	},
	{
		ID:          "demo_adset_003",
		Name:        "DEMO - Lançamento de Produto",
		Status:      AdSetStatusActive,
		DailyBudget: Float64Ptr(15000),
		SpendToday:  Float64Ptr(12000),
		CreatedTime: &demoCreatedAt,
		UpdatedTime: &demoCreatedAt,
	},
}

// DemoAdSets retorna uma cópia dos conjuntos de demonstração usados quando não há dados ao vivo
func DemoAdSets() []AdSet {
	out := make([]AdSet, len(demoAdSets))
	for i, a := range demoAdSets {
		out[i] = a.clone()
	}
	return out
}

func (a AdSet) clone() AdSet {
	c := a
	c.DailyBudget = copyFloat(a.DailyBudget)
	c.LifetimeBudget = copyFloat(a.LifetimeBudget)
	c.SpendToday = copyFloat(a.SpendToday)
	if a.Insights != nil {
		c.Insights = &AdSetInsights{
			Spend:       copyFloat(a.Insights.Spend),
			Impressions: copyFloat(a.Insights.Impressions),
			Clicks:      copyFloat(a.Insights.Clicks),
			Reach:       copyFloat(a.Insights.Reach),
			CTR:         copyFloat(a.Insights.CTR),
		}
	}
	if a.CreatedTime != nil {
		t := *a.CreatedTime
		c.CreatedTime = &t
	}
	if a.UpdatedTime != nil {
		t := *a.UpdatedTime
		c.UpdatedTime = &t
	}
	return c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
