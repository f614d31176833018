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

const adSetFields = "id,name,status,daily_budget,lifetime_budget,created_time,updated_time,insights{spend,impressions,clicks,reach,ctr}"

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// TODO seguir paging.next quando a conta tiver mais de 100 conjuntos
func (c *MetaClient) GetAdSetsByAccountID(ctx context.Context, accountID string) ([]metadomain.AdSet, error) {
	baseURL := fmt.Sprintf("%s/%s/adsets", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", adSetFields)
	params.Add("effective_status", `["ACTIVE","PAUSED"]`)
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	body, err := c.do(req, "adsets")
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
