// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=toggle_audit.go -destination=mocks/mock_toggle_audit.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adset-control-api/infrastructure/database/postgres"
	"github.com/vfg2006/adset-control-api/internal/domain"
)

const (
	toggleAuditTable = "adset_toggle_audit"
)

// CreateToggleAuditTableSQL é o DDL aplicado pelo script de migração.
// adset_id vem do operador sem limite de tamanho, por isso TEXT.
const CreateToggleAuditTableSQL = `
CREATE TABLE IF NOT EXISTS adset_toggle_audit (
	id            VARCHAR(21) PRIMARY KEY,
	batch_id      VARCHAR(21) NOT NULL,
	adset_id      TEXT NOT NULL,
	target_status VARCHAR(16) NOT NULL,
	success       BOOLEAN NOT NULL,
	error_message TEXT,
	created_at    TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
ALTER TABLE adset_toggle_audit ALTER COLUMN adset_id TYPE TEXT;
CREATE INDEX IF NOT EXISTS idx_adset_toggle_audit_batch_id ON adset_toggle_audit (batch_id);
`

type ToggleAuditRepository interface {
	SaveBatch(ctx context.Context, entries []domain.ToggleAuditEntry) error
}

type toggleAuditRepository struct {
	conn postgres.Conn
}

func NewToggleAuditRepository(conn postgres.Conn) ToggleAuditRepository {
	return &toggleAuditRepository{
		conn: conn,
	}
}

// SaveBatch grava todas as linhas de um lote em uma única transação
func (r *toggleAuditRepository) SaveBatch(ctx context.Context, entries []domain.ToggleAuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query, args, err := buildToggleAuditInsert(entries, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir auditoria de alteração de status: %w", err)
		}
		return nil
	})
}

func buildToggleAuditInsert(entries []domain.ToggleAuditEntry, createdAt time.Time) (string, []any, error) {
	builder := squirrel.
		Insert(toggleAuditTable).
		Columns("id", "batch_id", "adset_id", "target_status", "success", "error_message", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, e := range entries {
		var errorMessage sql.NullString
		if e.ErrorMessage != "" {
			errorMessage = sql.NullString{String: e.ErrorMessage, Valid: true}
		}

		builder = builder.Values(e.ID, e.BatchID, e.AdSetID, string(e.TargetStatus), e.Success, errorMessage, createdAt)
	}

	return builder.ToSql()
}
