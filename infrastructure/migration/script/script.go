package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/adset-control-api/infrastructure/repository"
	"github.com/vfg2006/adset-control-api/internal/config"
)

func main() {
	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, repository.CreateToggleAuditTableSQL); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabela adset_toggle_audit")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}
