package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

func TestOpen_SetsSchemaVersion(t *testing.T) {
	s := openTestStore(t)

	var version int
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpen_Reopen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.BeginRun(context.Background(), "run-1", "main.lm", "hash-in"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	run, err := s.ReadRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "main.lm", run.Source)
}

func TestBeginRun_SetsRunningStatus(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "hash-in"))

	run, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, RunStatusRunning, run.Status)
	assert.Equal(t, "hash-in", run.InputHash)
	assert.Empty(t, run.OutputHash)
	assert.Empty(t, run.FinishedAt)
	assert.NotEmpty(t, run.StartedAt)
}

func TestBeginRun_DuplicateTokenIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "hash-in"))
	require.NoError(t, s.BeginRun(ctx, "run-1", "other.lm", "hash-other"))

	run, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "main.lm", run.Source, "the first write wins")

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestFinishRun_MarksOK(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "hash-in"))
	require.NoError(t, s.FinishRun(ctx, "run-1", "hash-out"))

	run, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, RunStatusOK, run.Status)
	assert.Equal(t, "hash-out", run.OutputHash)
	assert.NotEmpty(t, run.FinishedAt)
	assert.Empty(t, run.Error)
}

func TestFailRun_RecordsMessage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "hash-in"))
	require.NoError(t, s.FailRun(ctx, "run-1", "fold: something broke"))

	run, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, RunStatusFailed, run.Status)
	assert.Equal(t, "fold: something broke", run.Error)
	assert.Empty(t, run.OutputHash)
	assert.NotEmpty(t, run.FinishedAt)
}

func TestReadRun_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRuns_Empty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWritePassEvent_Trace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "h0"))
	require.NoError(t, s.WritePassEvent(ctx, PassEvent{RunToken: "run-1", Seq: 1, Pass: "fold", InputHash: "h0", OutputHash: "h1"}))
	require.NoError(t, s.WritePassEvent(ctx, PassEvent{RunToken: "run-1", Seq: 2, Pass: "rename", InputHash: "h1", OutputHash: "h2"}))

	events, err := s.ListPassEvents(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "fold", events[0].Pass)
	assert.Equal(t, "rename", events[1].Pass)
	assert.Equal(t, events[0].OutputHash, events[1].InputHash)
}

func TestWritePassEvent_DuplicateSeqIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.BeginRun(ctx, "run-1", "main.lm", "h0"))
	ev := PassEvent{RunToken: "run-1", Seq: 1, Pass: "fold", InputHash: "h0", OutputHash: "h1"}
	require.NoError(t, s.WritePassEvent(ctx, ev))
	require.NoError(t, s.WritePassEvent(ctx, ev))

	events, err := s.ListPassEvents(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestListPassEvents_UnknownRunIsEmpty(t *testing.T) {
	s := openTestStore(t)

	events, err := s.ListPassEvents(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestWriteSnapshot_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	document := []byte(`{"name":"test"}`)
	require.NoError(t, s.WriteSnapshot(ctx, "h0", document))

	got, err := s.ReadSnapshot(ctx, "h0")
	require.NoError(t, err)
	assert.Equal(t, document, got)
}

func TestWriteSnapshot_DuplicateHashIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteSnapshot(ctx, "h0", []byte(`{"name":"first"}`)))
	require.NoError(t, s.WriteSnapshot(ctx, "h0", []byte(`{"name":"second"}`)))

	got, err := s.ReadSnapshot(ctx, "h0")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"first"}`, string(got), "content addressing keeps the original bytes")
}

func TestReadSnapshot_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadSnapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
