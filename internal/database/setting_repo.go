package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
)

type settingRepo struct {
	db dbConn
}

func newSettingRepo(db dbConn) contract.SettingRepo {
	return &settingRepo{db: db}
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM settings WHERE key = ?`

	var value sql.NullString
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return value.String, nil
}

func (r *settingRepo) Upsert(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}

	return nil
}
