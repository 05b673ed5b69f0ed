package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// nextSequence bumps the single counter row and returns the value it held.
// The ent builders have no increment-and-return, so this stays raw SQL.
const nextSequence = `UPDATE sequence_counter SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`

// sequence numbers results and LLM events from one counter, so a stored
// result sorts after the LLM calls made for it.
type sequence struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// Next returns the next value, starting at 1.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, nextSequence, []any{}, &rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, errors.New("next sequence: counter row missing")
	}
	var n int64
	if err := rows.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return n, nil
}
