package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/adset-control-api/pkg/utils"
)

type AdSetStatus string

const (
	AdSetStatusActive AdSetStatus = "ACTIVE"
	AdSetStatusPaused AdSetStatus = "PAUSED"
)

// ParseAdSetStatus aceita apenas ACTIVE ou PAUSED (sem diferenciar maiúsculas)
func ParseAdSetStatus(value string) (AdSetStatus, error) {
	switch AdSetStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case AdSetStatusActive:
		return AdSetStatusActive, nil
	case AdSetStatusPaused:
		return AdSetStatusPaused, nil
	}

	return "", fmt.Errorf("status inválido: %q (valores aceitos: ACTIVE, PAUSED)", value)
}

// Label retorna o rótulo exibido ao operador para o status
func (s AdSetStatus) Label() string {
	switch s {
	case AdSetStatusActive:
		return "ativado"
	case AdSetStatusPaused:
		return "pausado"
	}
	return string(s)
}

type AdSetInsights struct {
	Spend       *float64 `json:"spend,omitempty"`
	Impressions *float64 `json:"impressions,omitempty"`
	Clicks      *float64 `json:"clicks,omitempty"`
	Reach       *float64 `json:"reach,omitempty"`
	CTR         *float64 `json:"ctr,omitempty"`
}

// AdSet é o conjunto de anúncios já normalizado. Campos nil significam "não informado".
type AdSet struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Status         AdSetStatus    `json:"status"`
	DailyBudget    *float64       `json:"daily_budget,omitempty"`
	LifetimeBudget *float64       `json:"lifetime_budget,omitempty"`
	Insights       *AdSetInsights `json:"insights,omitempty"`
	SpendToday     *float64       `json:"spend_today,omitempty"`
	CreatedTime    *time.Time     `json:"created_time,omitempty"`
	UpdatedTime    *time.Time     `json:"updated_time,omitempty"`
}

func (a AdSet) IsActive() bool {
	return a.Status == AdSetStatusActive
}

// Spend usa insights.spend, depois spendToday e por fim 0
func (a AdSet) Spend() float64 {
	if a.Insights != nil && a.Insights.Spend != nil {
		return *a.Insights.Spend
	}
	if a.SpendToday != nil {
		return *a.SpendToday
	}
	return 0
}

// Budget considera apenas o orçamento diário
func (a AdSet) Budget() float64 {
	if a.DailyBudget != nil {
		return *a.DailyBudget
	}
	return 0
}

func (a AdSet) Impressions() float64 {
	if a.Insights != nil && a.Insights.Impressions != nil {
		return *a.Insights.Impressions
	}
	return 0
}

func (a AdSet) Clicks() float64 {
	if a.Insights != nil && a.Insights.Clicks != nil {
		return *a.Insights.Clicks
	}
	return 0
}

// UsageRatio é gasto/orçamento, 0 quando não há orçamento
func (a AdSet) UsageRatio() float64 {
	return utils.SafeDivide(a.Spend(), a.Budget())
}

type AccountInfo struct {
	Name          string         `json:"name"`
	Balance       int64          `json:"balance"`
	AccountStatus int            `json:"account_status"`
	Today         *AdSetInsights `json:"today,omitempty"`
	Yesterday     *AdSetInsights `json:"yesterday,omitempty"`
}

func Float64Ptr(v float64) *float64 {
	return &v
}
