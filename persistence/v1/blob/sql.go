package blob

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQL stores blobs in a single kvstore table. Set is delete plus insert so
// the whole-blob last-write-wins contract matches the redis driver.
type SQL struct {
	db      *sql.DB
	timeout time.Duration
	now     func() time.Time
}

func NewSQL(db *sql.DB, operationTimeout time.Duration) *SQL {
	return &SQL{db: db, timeout: operationTimeout, now: time.Now}
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	opCtx, opCancel := context.WithTimeout(ctx, s.timeout)
	defer opCancel()

	stmt, err := s.db.PrepareContext(opCtx, "SELECT v, expires FROM kvstore WHERE k = ?")
	if err != nil {
		return "", false, fmt.Errorf("failed to prepare get stmt: %w", err)
	}

	var value string
	var expires int64
	if err := stmt.QueryRowContext(opCtx, key).Scan(&value, &expires); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to scan row for %s: %w", key, err)
	}
	if expires > 0 && expires <= s.now().UnixMilli() {
		return "", false, nil
	}
	return value, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	return s.SetTTL(ctx, key, value, 0)
}

func (s *SQL) SetTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	opCtx, opCancel := context.WithTimeout(ctx, s.timeout)
	defer opCancel()

	var expires int64
	if ttl > 0 {
		expires = s.now().Add(ttl).UnixMilli()
	}

	if _, err := s.db.ExecContext(opCtx, "DELETE FROM kvstore WHERE k = ?", key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	if _, err := s.db.ExecContext(opCtx, "INSERT INTO kvstore (k, v, expires) VALUES (?, ?, ?)", key, value, expires); err != nil {
		return fmt.Errorf("failed to insert %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Del(ctx context.Context, key string) error {
	opCtx, opCancel := context.WithTimeout(ctx, s.timeout)
	defer opCancel()

	if _, err := s.db.ExecContext(opCtx, "DELETE FROM kvstore WHERE k = ?", key); err != nil {
		return fmt.Errorf("failed to del %s: %w", key, err)
	}
	return nil
}
