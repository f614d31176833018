package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/domain"
)

// UpdateAdSetStatus altera o status de um único conjunto (POST /{adset_id})
func (c *MetaClient) UpdateAdSetStatus(ctx context.Context, adSetID string, status string) error {
	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, url.PathEscape(adSetID))

	form := url.Values{}
	form.Add("status", status)
	form.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, "adset_update")
	if err != nil {
		return err
	}

	var response metadomain.UpdateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	if !response.Success {
		return errors.New("a API do Meta não confirmou a alteração de status")
	}

	return nil
}
