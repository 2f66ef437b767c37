package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewSQLiteStore(dir, "console.db")
	require.NoError(t, err)

	_, err = store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Set(ctx, "tok-1"))
	require.NoError(t, store.Set(ctx, "tok-2"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dir, "console.db")
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	token, err := reopened.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)

	require.NoError(t, reopened.Clear(ctx))
	_, err = reopened.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)
	require.NoError(t, reopened.Clear(ctx))
}

func TestSQLiteStore_BlankTokenClears(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(t.TempDir(), "console.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Set(ctx, "tok"))
	require.NoError(t, store.Set(ctx, ""))
	_, err = store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestSQLiteStore_KeepsExactToken(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(t.TempDir(), "console.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Set(ctx, " tok-1 "))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, " tok-1 ", token)
}
