package meta

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/vfg2006/adset-control-api/internal/domain"
)

// graphTimeLayout é o formato de created_time/updated_time da Graph API
const graphTimeLayout = "2006-01-02T15:04:05-0700"

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAdSets faz uma única chamada à Graph API. Em qualquer falha retorna nil;
// uma conta sem conjuntos retorna slice vazio (não nil).
func (s *MetaIntegrator) FetchAdSets(ctx context.Context) []domain.AdSet {
	if !s.cfg.Meta.HasCredentials() {
		logrus.Debug("adsets: credentials not configured, skipping fetch")
		return nil
	}

	accountID := s.cfg.Meta.ActID()

	resp, err := s.Client.GetAdSetsByAccountID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("adsets: failed to get ad sets from API")
		logTokenExpiredFrom(err)
		return nil
	}

	adSets := make([]domain.AdSet, 0, len(resp))
	for i := range resp {
		adSet := FactoryAdSet(&resp[i])
		if adSet == nil {
			continue
		}
		adSets = append(adSets, *adSet)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"total":      len(adSets),
	}).Debug("adsets: successfully retrieved ad sets")

	return adSets
}

// FetchAccountInfo retorna nil em qualquer falha
func (s *MetaIntegrator) FetchAccountInfo(ctx context.Context) *domain.AccountInfo {
	if !s.cfg.Meta.HasCredentials() {
		return nil
	}

	accountID := s.cfg.Meta.ActID()

	resp, err := s.Client.GetAdAccountByID(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("adsets: failed to get ad account from API")
		logTokenExpiredFrom(err)
		return nil
	}

	return FactoryAccountInfo(resp)
}

// UpdateAdSetStatus propaga o erro da chamada; a decisão de como reportá-lo fica com o chamador
func (s *MetaIntegrator) UpdateAdSetStatus(ctx context.Context, adSetID string, status domain.AdSetStatus) error {
	err := s.Client.UpdateAdSetStatus(ctx, adSetID, string(status))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"status":   status,
			"error":    err.Error(),
		}).Warn("adsets: failed to update ad set status")

		var apiErr *metadomain.APIError
		if errors.As(err, &apiErr) {
			logTokenExpired(apiErr)
			return errors.New(apiErr.Message())
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"adset_id": adSetID,
		"status":   status,
	}).Info("adsets: ad set status updated")

	return nil
}

// FactoryAdSet converte o registro da Graph API. Status diferente de ACTIVE/PAUSED
// descarta o registro (retorna nil).
func FactoryAdSet(adSet *metadomain.AdSet) *domain.AdSet {
	status, err := domain.ParseAdSetStatus(adSet.Status)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSet.ID,
			"status":   adSet.Status,
		}).Warn("adsets: dropping ad set with unsupported status")
		return nil
	}

	result := &domain.AdSet{
		ID:             adSet.ID,
		Name:           adSet.Name,
		Status:         status,
		DailyBudget:    parseOptionalFloat("daily_budget", adSet.DailyBudget),
		LifetimeBudget: parseOptionalFloat("lifetime_budget", adSet.LifetimeBudget),
		CreatedTime:    parseGraphTime("created_time", adSet.CreatedTime),
		UpdatedTime:    parseGraphTime("updated_time", adSet.UpdatedTime),
	}

	if insight := adSet.Insights.First(); insight != nil {
		result.Insights = FactoryInsights(insight)
	}

	return result
}

func FactoryInsights(insight *metadomain.AdSetInsight) *domain.AdSetInsights {
	return &domain.AdSetInsights{
		Spend:       parseOptionalFloat("spend", insight.Spend),
		Impressions: parseOptionalFloat("impressions", insight.Impressions),
		Clicks:      parseOptionalFloat("clicks", insight.Clicks),
		Reach:       parseOptionalFloat("reach", insight.Reach),
		CTR:         parseOptionalFloat("ctr", insight.CTR),
	}
}

func FactoryAccountInfo(account *metadomain.AdAccount) *domain.AccountInfo {
	info := &domain.AccountInfo{
		Name:          account.Name,
		AccountStatus: account.AccountStatus,
	}

	if account.Balance != "" {
		balance, err := strconv.ParseInt(account.Balance, 10, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"balance_value": account.Balance,
				"error":         err.Error(),
			}).Warn("adsets: error converting balance to integer")
		}
		info.Balance = balance
	}

	if insight := account.InsightsToday.First(); insight != nil {
		info.Today = FactoryInsights(insight)
	}

	if insight := account.InsightsYesterday.First(); insight != nil {
		info.Yesterday = FactoryInsights(insight)
	}

	return info
}

// parseOptionalFloat retorna nil para valor ausente ou inválido
func parseOptionalFloat(field, value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("adsets: error converting value to float")
		return nil
	}

	// Orçamentos e métricas nunca são negativos; NaN e Inf quebrariam as razões
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed < 0 {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
		}).Warn("adsets: value out of range, treated as absent")
		return nil
	}

	return &parsed
}

func parseGraphTime(field, value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := time.Parse(graphTimeLayout, value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("adsets: error parsing time")
		return nil
	}

	return &parsed
}

func logTokenExpiredFrom(err error) {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		logTokenExpired(apiErr)
	}
}

func logTokenExpired(apiErr *metadomain.APIError) {
	if apiErr.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":    apiErr.Details.Code,
			"subcode": apiErr.Details.ErrorSubcode,
		}).Warn("meta: access token expired or invalid, update META_ACCESS_TOKEN")
	}
}
