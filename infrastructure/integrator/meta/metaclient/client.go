package metaclient

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/pkg/errors"
	"github.com/vfg2006/adset-control-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdSetsByAccountID(ctx context.Context, accountID string) ([]metadomain.AdSet, error)
	GetAdAccountByID(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	UpdateAdSetStatus(ctx context.Context, adSetID string, status string) error
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.HTTPTimeoutSeconds) * time.Second,
		},
	}
}

// do executa a requisição uma única vez e registra a métrica da chamada externa
func (c *MetaClient) do(req *http.Request, endpoint string) ([]byte, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordExternalAPIFailure(endpoint, "network_error")
		return nil, fmt.Errorf("erro ao fazer a requisição %s %s: %w", req.Method, endpoint, stripURL(err))
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordExternalAPICall(endpoint, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return nil, err
	}

	metrics.RecordExternalAPICall(endpoint, "success", duration)
	return body, nil
}

// stripURL remove a URL do erro de transporte, que carrega o access_token na query
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// HandleResponse devolve o corpo das respostas 200 e converte as demais em *metadomain.APIError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &metadomain.APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil {
		apiErr.Details = errorResp.Error
	}

	return nil, apiErr
}
