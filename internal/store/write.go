package store

import (
	"context"
	"fmt"
)

// Run statuses recorded in the runs table.
const (
	RunStatusRunning = "running"
	RunStatusOK      = "ok"
	RunStatusFailed  = "failed"
)

// BeginRun records the start of a pipeline run.
// Uses ON CONFLICT(token) DO NOTHING for idempotency - replaying a run
// against an existing database leaves the original row intact.
func (s *Store) BeginRun(ctx context.Context, token, source, inputHash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (token, source, input_hash, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(token) DO NOTHING
	`, token, source, inputHash, RunStatusRunning)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// FinishRun marks a run as completed with the final document hash.
func (s *Store) FinishRun(ctx context.Context, token, outputHash string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET output_hash = ?, status = ?, finished_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		WHERE token = ?
	`, outputHash, RunStatusOK, token)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// FailRun marks a run as failed and records the error text.
func (s *Store) FailRun(ctx context.Context, token, message string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET status = ?, error = ?, finished_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
		WHERE token = ?
	`, RunStatusFailed, message, token)
	if err != nil {
		return fmt.Errorf("fail run: %w", err)
	}
	return nil
}

// WritePassEvent inserts one pass execution record.
// Uses ON CONFLICT DO NOTHING for idempotency - the (run_token, seq) pair
// is the dedup key, so a replayed run never duplicates its trace.
//
// Note: The run referenced by RunToken must exist (foreign key constraint).
func (s *Store) WritePassEvent(ctx context.Context, ev PassEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pass_events (run_token, seq, pass, input_hash, output_hash)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, ev.RunToken, ev.Seq, ev.Pass, ev.InputHash, ev.OutputHash)
	if err != nil {
		return fmt.Errorf("write pass event: %w", err)
	}
	return nil
}

// WriteSnapshot stores a content-addressed canonical document.
// Uses ON CONFLICT(hash) DO NOTHING - a document already present under its
// hash is never rewritten, which is what content addressing promises.
func (s *Store) WriteSnapshot(ctx context.Context, hash string, document []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (hash, document)
		VALUES (?, ?)
		ON CONFLICT(hash) DO NOTHING
	`, hash, document)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
