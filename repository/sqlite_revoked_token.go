package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/akinalp/dukkan/database"
	"github.com/akinalp/dukkan/models"
)

type sqliteRevokedTokenRepo struct {
	db database.TxQuerier
}

func NewSQLiteRevokedTokenRepo(db database.TxQuerier) RevokedTokenRepository {
	return &sqliteRevokedTokenRepo{db: db}
}

func (r *sqliteRevokedTokenRepo) Create(ctx context.Context, token *models.RevokedToken) error {
	query := `
		INSERT INTO revoked_tokens (token_hash, user_id, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(token_hash) DO NOTHING`

	// ON CONFLICT DO NOTHING: aynı token'la iki kez logout → ikincisi no-op.
	// Logout idempotent olmalı; "zaten çıkış yaptın" hatası kullanıcıya değer katmaz.
	_, err := r.db.ExecContext(ctx, query, token.TokenHash, token.UserID, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create revoked token: %w", err)
	}

	return nil
}

func (r *sqliteRevokedTokenRepo) Exists(ctx context.Context, tokenHash string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_hash = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return exists, nil
}

func (r *sqliteRevokedTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM revoked_tokens WHERE expires_at < ?`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired revoked tokens: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return affected, nil
}
