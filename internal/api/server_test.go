package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/vfg2006/adset-control-api/internal/domain"
	"github.com/vfg2006/adset-control-api/internal/scheduler"
	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting/mocks"
	"github.com/vfg2006/adset-control-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Meta:   config.Meta{AccessToken: "token", AdAccountID: "123"},
	}
}

func TestNew(t *testing.T) {
	t.Run("Sem serviço de conjuntos retorna erro", func(t *testing.T) {
		srv, err := New(newTestConfig(), nil, nil)
		assert.Error(t, err)
		assert.Nil(t, srv)
	})

	t.Run("Ponteiro nil do serviço retorna erro", func(t *testing.T) {
		var svc *adsetting.Service
		srv, err := New(newTestConfig(), svc, nil)
		assert.Error(t, err)
		assert.Nil(t, srv)
	})

	t.Run("Ponteiro nil do agendador vira job indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var watch *scheduler.BudgetWatchService
		srv, err := New(newTestConfig(), mocks.NewMockAdSetter(ctrl), watch)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())

		rec = httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/budget-watch/run", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Endereço montado a partir da configuração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		srv, err := New(newTestConfig(), mocks.NewMockAdSetter(ctrl), nil)
		require.NoError(t, err)
		assert.Equal(t, "localhost:0", srv.httpServer.Addr)
	})
}

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAdSetter(ctrl)

	srv, err := New(newTestConfig(), mockService, nil)
	require.NoError(t, err)
	h := srv.Handler()

	t.Run("Hello passa pela cadeia de middlewares", func(t *testing.T) {
		mockService.EXPECT().Hello().Return(&domain.HelloResponse{Message: "olá"})

		req := httptest.NewRequest(http.MethodGet, "/v1/hello", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "olá")
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("Healthcheck indica credenciais configuradas", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"meta_configured":true`)
	})

	t.Run("Métricas expostas após requisições", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
	})

	t.Run("Status dos cron jobs sem agendador", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("Método não permitido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/ads/list", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_005")
	})
}
