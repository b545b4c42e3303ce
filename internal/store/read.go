package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// Run is one pipeline run as recorded in the runs table.
type Run struct {
	Token      string
	Source     string
	InputHash  string
	OutputHash string
	Status     string
	Error      string
	StartedAt  string
	FinishedAt string
}

// PassEvent is one executed pass within a run.
type PassEvent struct {
	RunToken   string
	Seq        int64
	Pass       string
	InputHash  string
	OutputHash string
}

// ReadRun returns a single run by token.
// Returns ErrNotFound if the run does not exist.
func (s *Store) ReadRun(ctx context.Context, token string) (Run, error) {
	var run Run
	var outputHash, errText, finishedAt sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT token, source, input_hash, output_hash, status, error, started_at, finished_at
		FROM runs
		WHERE token = ?
	`, token).Scan(
		&run.Token,
		&run.Source,
		&run.InputHash,
		&outputHash,
		&run.Status,
		&errText,
		&run.StartedAt,
		&finishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", token, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", token, err)
	}
	run.OutputHash = outputHash.String
	run.Error = errText.String
	run.FinishedAt = finishedAt.String
	return run, nil
}

// ListRuns returns all runs ordered by start time, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT token, source, input_hash, output_hash, status, error, started_at, finished_at
		FROM runs
		ORDER BY started_at, token
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var outputHash, errText, finishedAt sql.NullString
		if err := rows.Scan(
			&run.Token,
			&run.Source,
			&run.InputHash,
			&outputHash,
			&run.Status,
			&errText,
			&run.StartedAt,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		run.OutputHash = outputHash.String
		run.Error = errText.String
		run.FinishedAt = finishedAt.String
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// ListPassEvents returns the pass trace of a run in execution order.
func (s *Store) ListPassEvents(ctx context.Context, token string) ([]PassEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_token, seq, pass, input_hash, output_hash
		FROM pass_events
		WHERE run_token = ?
		ORDER BY seq
	`, token)
	if err != nil {
		return nil, fmt.Errorf("list pass events: %w", err)
	}
	defer rows.Close()

	var events []PassEvent
	for rows.Next() {
		var ev PassEvent
		if err := rows.Scan(&ev.RunToken, &ev.Seq, &ev.Pass, &ev.InputHash, &ev.OutputHash); err != nil {
			return nil, fmt.Errorf("list pass events: scan: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pass events: %w", err)
	}
	return events, nil
}

// ReadSnapshot returns the canonical document stored under hash.
// Returns ErrNotFound if no snapshot exists for the hash.
func (s *Store) ReadSnapshot(ctx context.Context, hash string) ([]byte, error) {
	var document []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM snapshots WHERE hash = ?
	`, hash).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read snapshot %s: %w", hash, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", hash, err)
	}
	return document, nil
}
