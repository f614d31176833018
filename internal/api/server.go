package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-control-api/internal/api/handler"
	"github.com/vfg2006/adset-control-api/internal/api/handler/router"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-control-api/pkg/middleware"
)

const (
	readHeaderTimeout = 2 * time.Second
	// O toggle chama a Graph API uma vez por conjunto, então a escrita precisa de folga
	writeTimeout    = 2 * time.Minute
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	httpServer *http.Server
}

// New monta as rotas dos comandos, healthcheck, métricas e cron jobs.
// budgetWatch pode ser nil.
func New(
	config *config.Config,
	adSetService adsetting.AdSetter,
	budgetWatch handler.CronJob,
) (*Server, error) {
	if isNil(adSetService) {
		return nil, fmt.Errorf("serviço de conjuntos de anúncios não informado")
	}

	if isNil(budgetWatch) {
		budgetWatch = nil
	}

	cronServices := handler.CronJobServices{
		BudgetWatchService: budgetWatch,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(config.Meta.HasCredentials())...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Hello(adSetService)...),
		router.WithRoutes(handler.AdSets(adSetService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
		},
	}, nil
}

// isNil também reconhece um ponteiro nil guardado na interface
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Handler expõe a cadeia completa (middlewares + rotas) sem abrir a porta
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run bloqueia até SIGINT/SIGTERM ou o cancelamento de ctx e então desliga o servidor
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
