package localstore_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/planner/internal/localstore"
)

func newStore(t *testing.T) *localstore.KnownTrips {
	t.Helper()
	s, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSaveAndContains(t *testing.T) {
	s := newStore(t)
	id := uuid.New()

	assert.False(t, s.Contains(id))
	require.NoError(t, s.Save(id))
	assert.True(t, s.Contains(id))
}

func TestSave_Idempotent(t *testing.T) {
	s := newStore(t)
	id := uuid.New()

	require.NoError(t, s.Save(id))
	require.NoError(t, s.Save(id))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
}

func TestRemove_Idempotent(t *testing.T) {
	s := newStore(t)
	id := uuid.New()
	require.NoError(t, s.Save(id))

	require.NoError(t, s.Remove(id))
	assert.False(t, s.Contains(id))

	// Removing an unknown trip is a no-op, not an error.
	require.NoError(t, s.Remove(id))
	require.NoError(t, s.Remove(uuid.New()))
}

func TestList_Sorted(t *testing.T) {
	s := newStore(t)
	a := uuid.New()
	b := uuid.New()
	require.NoError(t, s.Save(a))
	require.NoError(t, s.Save(b))

	ids, err := s.List()
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Less(t, ids[0].String(), ids[1].String())
}
