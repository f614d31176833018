package repository

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adset-control-api/internal/domain"
)

func TestBuildToggleAuditInsert(t *testing.T) {
	createdAt := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	entries := []domain.ToggleAuditEntry{
		{ID: "a1", BatchID: "b1", AdSetID: "123", TargetStatus: domain.AdSetStatusPaused, Success: true},
		{ID: "a2", BatchID: "b1", AdSetID: "456", TargetStatus: domain.AdSetStatusPaused, ErrorMessage: "boom"},
	}

	query, args, err := buildToggleAuditInsert(entries, createdAt)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO adset_toggle_audit (id,batch_id,adset_id,target_status,success,error_message,created_at) VALUES"))
	assert.Contains(t, query, "($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14)")
	require.Len(t, args, 14)

	assert.Equal(t, "123", args[2])
	assert.Equal(t, "PAUSED", args[3])
	assert.Equal(t, true, args[4])
	assert.Equal(t, sql.NullString{}, args[5])
	assert.Equal(t, sql.NullString{String: "boom", Valid: true}, args[12])
	assert.Equal(t, createdAt, args[13])
}

func TestToggleAuditRepository_SaveBatchEmpty(t *testing.T) {
	repo := NewToggleAuditRepository(nil)

	assert.NoError(t, repo.SaveBatch(context.Background(), nil))
	assert.NoError(t, repo.SaveBatch(context.Background(), []domain.ToggleAuditEntry{}))
}

func TestToggleAudit_LongAdSetID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`adset_id\s+TEXT NOT NULL`), CreateToggleAuditTableSQL)
	assert.NotContains(t, CreateToggleAuditTableSQL, "VARCHAR(64)")

	longID := strings.Repeat("9", 500)
	entries := []domain.ToggleAuditEntry{
		{ID: "a1", BatchID: "b1", AdSetID: longID, TargetStatus: domain.AdSetStatusActive, ErrorMessage: "not found"},
	}

	_, args, err := buildToggleAuditInsert(entries, time.Now())
	require.NoError(t, err)
	assert.Equal(t, longID, args[2])
}
