// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/KenyStev/tinymarkup/model"
)

// UpsertMessage inserts the message or replaces the one with the same catalog and id.
func (s *SQLiteStore) UpsertMessage(ctx context.Context, msg *model.Message) error {
	const query = `
		INSERT INTO messages (catalog, id, source, digest, status, error_code, error_message, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (catalog, id) DO UPDATE
		SET source        = excluded.source,
		    digest        = excluded.digest,
		    status        = excluded.status,
		    error_code    = excluded.error_code,
		    error_message = excluded.error_message,
		    checked_at    = excluded.checked_at
	`
	_, err := s.db.ExecContext(ctx, query,
		msg.Catalog,
		msg.ID,
		msg.Source,
		msg.Digest,
		string(msg.Status),
		nullString(msg.ErrorCode),
		nullString(msg.ErrorMessage),
		msg.CheckedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert message %s/%s: %w", msg.Catalog, msg.ID, err)
	}
	return nil
}

// GetMessage returns nil, nil if there is no such message.
func (s *SQLiteStore) GetMessage(ctx context.Context, catalog, id string) (*model.Message, error) {
	const query = `
		SELECT catalog, id, source, digest, status, error_code, error_message, checked_at
		FROM messages
		WHERE catalog = ? AND id = ?
	`
	msg, err := scanMessage(s.db.QueryRowContext(ctx, query, catalog, id))
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get message %s/%s: %w", catalog, id, err)
	}
	return msg, nil
}

// ListMessages returns the messages in the catalog ordered by id.
func (s *SQLiteStore) ListMessages(ctx context.Context, catalog string) ([]model.Message, error) {
	const query = `
		SELECT catalog, id, source, digest, status, error_code, error_message, checked_at
		FROM messages
		WHERE catalog = ?
		ORDER BY id
	`
	return s.queryMessages(ctx, query, catalog)
}

// ListFailures returns the messages in the catalog that did not parse, ordered by id.
func (s *SQLiteStore) ListFailures(ctx context.Context, catalog string) ([]model.Message, error) {
	const query = `
		SELECT catalog, id, source, digest, status, error_code, error_message, checked_at
		FROM messages
		WHERE catalog = ? AND status <> 'ok'
		ORDER BY id
	`
	return s.queryMessages(ctx, query, catalog)
}

// deleteBatchSize caps the bound variables in one delete statement,
// well under SQLite's limit of 32766.
const deleteBatchSize = 500

// DeleteMissing removes messages in the catalog whose id is not in ids.
// It returns the number of messages removed.
func (s *SQLiteStore) DeleteMissing(ctx context.Context, catalog string, ids []string) (int, error) {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("delete missing messages %s: begin: %w", catalog, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM messages WHERE catalog = ?`, catalog)
	if err != nil {
		return 0, fmt.Errorf("delete missing messages %s: %w", catalog, err)
	}
	var missing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("delete missing messages %s: %w", catalog, err)
		}
		if !keep[id] {
			missing = append(missing, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("delete missing messages %s: %w", catalog, err)
	}

	deleted := 0
	for len(missing) != 0 {
		batch := missing[:min(deleteBatchSize, len(missing))]
		missing = missing[len(batch):]

		query := `DELETE FROM messages WHERE catalog = ? AND id IN (?` + strings.Repeat(`, ?`, len(batch)-1) + `)`
		args := make([]any, 0, len(batch)+1)
		args = append(args, catalog)
		for _, id := range batch {
			args = append(args, id)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("delete missing messages %s: %w", catalog, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("delete missing messages %s: %w", catalog, err)
		}
		deleted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("delete missing messages %s: commit: %w", catalog, err)
	}
	return deleted, nil
}

// Stats returns counts across all catalogs.
func (s *SQLiteStore) Stats(ctx context.Context) (model.Stats, error) {
	const query = `
		SELECT COUNT(DISTINCT catalog),
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN status <> 'ok' THEN 1 ELSE 0 END), 0)
		FROM messages
	`
	var stats model.Stats
	if err := s.db.QueryRowContext(ctx, query).Scan(&stats.Catalogs, &stats.Messages, &stats.Failures); err != nil {
		return model.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return stats, nil
}

func (s *SQLiteStore) queryMessages(ctx context.Context, query string, args ...any) ([]model.Message, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var list []model.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, *msg)
	}
	return list, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (*model.Message, error) {
	var msg model.Message
	var status, checkedAt string
	var errorCode, errorMessage sql.NullString
	if err := row.Scan(
		&msg.Catalog,
		&msg.ID,
		&msg.Source,
		&msg.Digest,
		&status,
		&errorCode,
		&errorMessage,
		&checkedAt,
	); err != nil {
		return nil, err
	}
	msg.Status = model.Status(status)
	msg.ErrorCode = errorCode.String
	msg.ErrorMessage = errorMessage.String
	if t, err := time.Parse(time.RFC3339, checkedAt); err == nil {
		msg.CheckedAt = t
	}
	return &msg, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
