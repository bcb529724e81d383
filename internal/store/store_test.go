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
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func rec(id, profile, createdAt string) SnapshotRecord {
	return SnapshotRecord{
		ID:        id,
		Profile:   profile,
		Path:      "/tmp/" + id + ".yaml",
		Checksum:  "deadbeef",
		CreatedAt: createdAt,
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	recs, err := s2.ListSnapshots(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecordAndListSnapshots(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSnapshot(ctx, rec("a", "trot", "2025-06-01 10:00:00")))
	require.NoError(t, s.RecordSnapshot(ctx, rec("b", "trot", "2025-06-01 11:00:00")))
	require.NoError(t, s.RecordSnapshot(ctx, rec("c", "stand", "2025-06-01 09:00:00")))

	recs, err := s.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	// Newest first.
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, "a", recs[1].ID)
	assert.Equal(t, "c", recs[2].ID)

	assert.Equal(t, "trot", recs[0].Profile)
	assert.Equal(t, "deadbeef", recs[0].Checksum)
}

func TestListSnapshotsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSnapshot(ctx, rec("a", "p", "2025-06-01 10:00:00")))
	require.NoError(t, s.RecordSnapshot(ctx, rec("b", "p", "2025-06-01 11:00:00")))

	recs, err := s.ListSnapshots(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "b", recs[0].ID)
}

func TestRecordSnapshotIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := rec("dup", "p", "2025-06-01 10:00:00")
	require.NoError(t, s.RecordSnapshot(ctx, r))
	require.NoError(t, s.RecordSnapshot(ctx, r), "duplicate ID is ignored, not an error")

	recs, err := s.ListSnapshots(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestCloseNil(t *testing.T) {
	var s Store
	assert.NoError(t, s.Close())
}
