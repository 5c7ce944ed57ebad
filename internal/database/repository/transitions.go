package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/hubdash/internal/database"
)

// TransitionRepo handles journal rows.
type TransitionRepo struct {
	db *sql.DB
}

func NewTransitionRepo(db *sql.DB) *TransitionRepo { return &TransitionRepo{db: db} }

// InsertBatch writes rows in a single transaction.
func (r *TransitionRepo) InsertBatch(ctx context.Context, rows []Transition) error {
	if len(rows) == 0 {
		return nil
	}
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transitions(session_id, seq, axis, phase, from_target, to_target, token, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, t := range rows {
			if _, err := stmt.ExecContext(ctx, t.SessionID, t.Seq, t.Axis, t.Phase, t.From, t.To, t.Token, t.At.UTC().Format(time.RFC3339Nano)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListSession returns the rows of one session in sequence order, at most limit
// rows when limit > 0.
func (r *TransitionRepo) ListSession(ctx context.Context, sessionID string, limit int) ([]Transition, error) {
	q := `SELECT session_id, seq, axis, phase, from_target, to_target, token, at
	FROM transitions WHERE session_id = ? ORDER BY seq`
	args := []any{sessionID}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Transition
	for rows.Next() {
		var (
			t  Transition
			at string
		)
		if err := rows.Scan(&t.SessionID, &t.Seq, &t.Axis, &t.Phase, &t.From, &t.To, &t.Token, &at); err != nil {
			return nil, err
		}
		if t.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Sessions lists distinct session ids, most recent first.
func (r *TransitionRepo) Sessions(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT session_id FROM transitions GROUP BY session_id ORDER BY MAX(id) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
