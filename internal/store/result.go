package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/hairharmony/internal/season"
)

var resultColumns = []string{
	"client_key", "id", "sequence", "season", "confidence", "reasoning",
	"full_analysis", "pdf_url", "source", "fallback", "answers", "created_at",
}

// resultRepo implements ResultRepo with one row per client key.
type resultRepo struct {
	drv *entsql.Driver
	seq *sequence
}

func (r *resultRepo) Save(ctx context.Context, rec *ResultRecord) error {
	if rec.ClientKey == "" {
		return fmt.Errorf("save result: client key is required")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	answers := rec.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.Sequence = seqNum

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(resultsTable).
		Columns(resultColumns...).
		Values(
			rec.ClientKey,
			rec.ID,
			rec.Sequence,
			rec.Season,
			rec.Confidence,
			rec.Reasoning,
			rec.FullAnalysis,
			rec.PDFURL,
			rec.Source,
			rec.Fallback,
			string(answersJSON),
			rec.CreatedAt.UnixMilli(),
		).
		OnConflict(
			entsql.ConflictColumns("client_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save result %q: %w", rec.ClientKey, err)
	}
	return nil
}

func (r *resultRepo) Get(ctx context.Context, key string) (*ResultRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(resultColumns...).
		From(entsql.Table(resultsTable)).
		Where(entsql.EQ("client_key", key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("get result %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanResult(&rows)
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]ResultRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(resultColumns...).
		From(entsql.Table(resultsTable)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		rec, err := scanResult(&rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *resultRepo) CountBySeason(ctx context.Context) ([]SeasonCount, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("season", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(resultsTable)).
		GroupBy("season").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("count results by season: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			s string
			n int
		)
		if err := rows.Scan(&s, &n); err != nil {
			return nil, fmt.Errorf("scan season count: %w", err)
		}
		counts[s] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]SeasonCount, 0, 4)
	for _, s := range season.All() {
		out = append(out, SeasonCount{Season: s.String(), Count: counts[s.String()]})
	}
	return out, nil
}

func (r *resultRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(resultsTable).
		Where(entsql.EQ("client_key", key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete result %q: %w", key, err)
	}
	return nil
}

func scanResult(rows *entsql.Rows) (*ResultRecord, error) {
	var (
		rec         ResultRecord
		answersJSON string
		createdAt   int64
	)
	err := rows.Scan(
		&rec.ClientKey,
		&rec.ID,
		&rec.Sequence,
		&rec.Season,
		&rec.Confidence,
		&rec.Reasoning,
		&rec.FullAnalysis,
		&rec.PDFURL,
		&rec.Source,
		&rec.Fallback,
		&answersJSON,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan result: %w", err)
	}
	if err := json.Unmarshal([]byte(answersJSON), &rec.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers for %q: %w", rec.ClientKey, err)
	}
	rec.CreatedAt = time.UnixMilli(createdAt)
	return &rec, nil
}
