package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/adset-control-api/internal/config"
)

const graphErrorBody = `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"abc"}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		Meta: config.Meta{
			URL:                server.URL + "/v22.0",
			AccessToken:        "token123",
			HTTPTimeoutSeconds: 5,
		},
	})
}

func TestMetaClient_GetAdSetsByAccountID(t *testing.T) {
	t.Run("Sucesso - monta a requisição e decodifica os conjuntos", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v22.0/act_42/adsets", r.URL.Path)
			assert.Equal(t, adSetFields, r.URL.Query().Get("fields"))
			assert.Equal(t, `["ACTIVE","PAUSED"]`, r.URL.Query().Get("effective_status"))
			assert.Equal(t, "token123", r.URL.Query().Get("access_token"))

			_, _ = io.WriteString(w, `{"data":[{"id":"1","name":"Conjunto A","status":"ACTIVE","daily_budget":"5000",
				"insights":{"data":[{"spend":"12.34","impressions":"1000","clicks":"10"}]}}],"paging":{"cursors":{"before":"a","after":"b"}}}`)
		})

		adSets, err := client.GetAdSetsByAccountID(context.Background(), "act_42")
		require.NoError(t, err)
		require.Len(t, adSets, 1)
		assert.Equal(t, "1", adSets[0].ID)
		assert.Equal(t, "5000", adSets[0].DailyBudget)
		require.NotNil(t, adSets[0].Insights.First())
		assert.Equal(t, "12.34", adSets[0].Insights.First().Spend)
	})

	t.Run("Lista vazia não é erro", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[]}`)
		})

		adSets, err := client.GetAdSetsByAccountID(context.Background(), "act_42")
		require.NoError(t, err)
		assert.NotNil(t, adSets)
		assert.Empty(t, adSets)
	})

	t.Run("Erro da Graph API vira APIError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, graphErrorBody)
		})

		adSets, err := client.GetAdSetsByAccountID(context.Background(), "act_42")
		require.Error(t, err)
		assert.Nil(t, adSets)

		var apiErr *metadomain.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, 190, apiErr.Details.Code)
		assert.Equal(t, "Invalid OAuth access token.", apiErr.Message())
	})

	t.Run("JSON inválido", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[`)
		})

		_, err := client.GetAdSetsByAccountID(context.Background(), "act_42")
		assert.Error(t, err)
	})

	t.Run("Servidor fechado - erro de transporte", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := NewClient(&config.Config{Meta: config.Meta{URL: serverURL, AccessToken: "SECRET_TOKEN", HTTPTimeoutSeconds: 1}})

		_, err := client.GetAdSetsByAccountID(context.Background(), "act_42")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "SECRET_TOKEN")
		assert.NotContains(t, err.Error(), "access_token")

		_, err = client.GetAdAccountByID(context.Background(), "act_42")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "SECRET_TOKEN")

		err = client.UpdateAdSetStatus(context.Background(), "123", "PAUSED")
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "SECRET_TOKEN")
	})
}

func TestMetaClient_GetAdAccountByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v22.0/act_42", r.URL.Path)
		assert.Equal(t, adAccountFields, r.URL.Query().Get("fields"))

		_, _ = io.WriteString(w, `{"id":"act_42","name":"Minha Conta","balance":"1500","account_status":1,
			"insights_today":{"data":[{"spend":"10.00","impressions":"100","clicks":"5"}]}}`)
	})

	account, err := client.GetAdAccountByID(context.Background(), "act_42")
	require.NoError(t, err)
	assert.Equal(t, "Minha Conta", account.Name)
	assert.Equal(t, "1500", account.Balance)
	assert.Equal(t, 1, account.AccountStatus)
	assert.NotNil(t, account.InsightsToday.First())
	assert.Nil(t, account.InsightsYesterday.First())
}

func TestMetaClient_UpdateAdSetStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, err error)
	}{
		{
			name:   "Sucesso",
			status: http.StatusOK,
			body:   `{"success":true}`,
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "200 sem confirmação",
			status: http.StatusOK,
			body:   `{"success":false}`,
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "Erro da plataforma traz a mensagem",
			status: http.StatusBadRequest,
			body:   `{"error":{"message":"(#100) Invalid parameter","type":"OAuthException","code":100}}`,
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "(#100) Invalid parameter")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v22.0/123", r.URL.Path)

				body, _ := io.ReadAll(r.Body)
				form, _ := url.ParseQuery(string(body))
				assert.Equal(t, "PAUSED", form.Get("status"))
				assert.Equal(t, "token123", form.Get("access_token"))

				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			tt.validate(t, client.UpdateAdSetStatus(context.Background(), "123", "PAUSED"))
		})
	}
}

func TestHandleResponse_NonJSONBody(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
	}

	_, err := HandleResponse(resp)
	require.Error(t, err)

	var apiErr *metadomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "<html>bad gateway</html>", apiErr.Body)
}
