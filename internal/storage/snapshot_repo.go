package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

type SnapshotInsert struct {
	TotalBudget int
	Spent       int
	Remaining   int
	Delivered   bool
	Document    string
}

func (r *SnapshotRepo) Insert(ctx context.Context, in SnapshotInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (total_budget, spent, remaining, delivered, document)
		VALUES (?, ?, ?, ?, ?)
	`, in.TotalBudget, in.Spent, in.Remaining, boolToInt(in.Delivered), in.Document)
	if err != nil {
		return 0, fmt.Errorf("snapshot insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("snapshot last insert id: %w", err)
	}
	return id, nil
}

func (r *SnapshotRepo) Get(ctx context.Context, id int64) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, total_budget, spent, remaining, delivered, document
		FROM snapshots
		WHERE id = ?
	`, id)
	return scanSnapshotRow(row)
}

// ListRecent returns up to limit snapshots, newest first.
func (r *SnapshotRepo) ListRecent(ctx context.Context, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, total_budget, spent, remaining, delivered, document
		FROM snapshots
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("snapshot list: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		s, err := scanSnapshotRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot list rows: %w", err)
	}
	return out, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshotRow(row scanner) (*Snapshot, error) {
	var (
		id          int64
		createdAt   time.Time
		totalBudget int
		spent       int
		remaining   int
		delivered   int
		document    string
	)

	if err := row.Scan(&id, &createdAt, &totalBudget, &spent, &remaining, &delivered, &document); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot scan: %w", err)
	}

	return &Snapshot{
		ID:          id,
		CreatedAt:   createdAt,
		TotalBudget: totalBudget,
		Spent:       spent,
		Remaining:   remaining,
		Delivered:   delivered != 0,
		Document:    document,
	}, nil
}
