package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/domain"
)

const adAccountFields = "name,balance,account_status," +
	"insights.date_preset(today).as(insights_today){spend,impressions,clicks}," +
	"insights.date_preset(yesterday).as(insights_yesterday){spend,impressions,clicks}"

func (c *MetaClient) GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", adAccountFields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	body, err := c.do(req, "ad_account")
	if err != nil {
		return nil, err
	}

	var response metadomain.AdAccount
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.ID == "" && response.Name == "" {
		return nil, errors.New("no data found")
	}

	return &response, nil
}
