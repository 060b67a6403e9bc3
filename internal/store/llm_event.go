package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(timestamp, provider, model, purpose, latency_ms, success, error_message,
			 request_body, response_body, input_tokens, output_tokens)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(),
		data.Provider, data.Model, data.Purpose, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
		data.InputTokens, data.OutputTokens,
	)
	if err != nil {
		return fmt.Errorf("recording llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := strings.Builder{}
	q.WriteString(`
		SELECT id, timestamp, provider, model, purpose, latency_ms, success,
		       error_message, request_body, response_body, input_tokens, output_tokens
		FROM llm_events`)
	var args []any
	if opts.Purpose != "" {
		q.WriteString(" WHERE purpose = ?")
		args = append(args, opts.Purpose)
	}
	q.WriteString(" ORDER BY id DESC")
	if opts.Limit > 0 {
		q.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, provider, model, purpose, latency_ms, success,
		       error_message, request_body, response_body, input_tokens, output_tokens
		FROM llm_events WHERE id = ?`, id)
	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("llm event %d not found", id)
	}
	return ev, err
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens), AVG(latency_ms)
		FROM llm_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("aggregating usage by purpose: %w", err)
	}
	defer rows.Close()

	var usage []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scanning usage row: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_events
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("aggregating usage by model: %w", err)
	}
	defer rows.Close()

	var usage []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scanning usage row: %w", err)
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEvent(row scannable) (*LLMEvent, error) {
	var ev LLMEvent
	var ts int64
	err := row.Scan(
		&ev.ID, &ts, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.LatencyMs, &ev.Success, &ev.ErrorMessage,
		&ev.RequestBody, &ev.ResponseBody, &ev.InputTokens, &ev.OutputTokens,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning llm event: %w", err)
	}
	ev.Timestamp = time.Unix(ts, 0)
	return &ev, nil
}
