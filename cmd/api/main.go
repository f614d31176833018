package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/adset-control-api/infrastructure/integrator/meta"
	"github.com/vfg2006/adset-control-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/adset-control-api/infrastructure/repository"
	"github.com/vfg2006/adset-control-api/internal/api"
	"github.com/vfg2006/adset-control-api/internal/config"
	"github.com/vfg2006/adset-control-api/internal/scheduler"
	"github.com/vfg2006/adset-control-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-control-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !cfg.Meta.HasCredentials() {
		logrus.WithField("missing", cfg.Meta.MissingKeys()).Warn("Credenciais do Meta incompletas, os comandos de leitura usarão dados de demonstração")
	}

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	var auditRepo repository.ToggleAuditRepository
	if cfg.Audit.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		auditRepo = repository.NewToggleAuditRepository(pgConn)
	}

	adSetService := adsetting.NewService(metaIntegrator, auditRepo, cfg)

	budgetWatchService := scheduler.NewBudgetWatchService(adSetService, cfg)
	if err := budgetWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de orçamento")
	}

	server, err := api.New(cfg, adSetService, budgetWatchService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria a conexão usada pela auditoria de alterações de status
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
