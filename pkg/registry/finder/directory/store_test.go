package directory_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) directory.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	ctx := context.Background()

	t.Run(name+"/Put_and_Get", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Put(ctx, directory.Entry{FirstName: "Jane", LastName: "Roe"}))

		e, err := store.Get(ctx, "Roe")
		require.NoError(t, err)
		assert.Equal(t, directory.Entry{FirstName: "Jane", LastName: "Roe"}, e)
	})

	t.Run(name+"/Get_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Get(ctx, "Nobody")
		assert.ErrorIs(t, err, directory.ErrNotFound)
	})

	t.Run(name+"/Put_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Put(ctx, directory.Entry{FirstName: "Jane", LastName: "Roe"}))
		require.NoError(t, store.Put(ctx, directory.Entry{FirstName: "Richard", LastName: "Roe"}))

		e, err := store.Get(ctx, "Roe")
		require.NoError(t, err)
		assert.Equal(t, "Richard", e.FirstName)

		all, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run(name+"/Put_RequiresLastName", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		err := store.Put(ctx, directory.Entry{FirstName: "Jane"})
		assert.ErrorIs(t, err, directory.ErrInvalidEntry)
	})

	t.Run(name+"/List_Sorted", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		all, err := store.List(ctx)
		require.NoError(t, err)
		assert.Nil(t, all)

		require.NoError(t, store.Put(ctx, directory.Entry{FirstName: "Mary", LastName: "Smith"}))
		require.NoError(t, store.Put(ctx, directory.Entry{FirstName: "John", LastName: "Doe"}))

		all, err = store.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Doe", all[0].LastName)
		assert.Equal(t, "Smith", all[1].LastName)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Put(ctx, directory.Entry{FirstName: "John", LastName: "Doe"}))
		require.NoError(t, store.Delete(ctx, "Doe"))
		require.NoError(t, store.Delete(ctx, "Doe"))

		_, err := store.Get(ctx, "Doe")
		assert.ErrorIs(t, err, directory.ErrNotFound)
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())

		assert.ErrorIs(t, store.Put(ctx, directory.Entry{LastName: "Doe"}), directory.ErrStoreClosed)
		_, err := store.Get(ctx, "Doe")
		assert.ErrorIs(t, err, directory.ErrStoreClosed)
		_, err = store.List(ctx)
		assert.ErrorIs(t, err, directory.ErrStoreClosed)
		assert.ErrorIs(t, store.Delete(ctx, "Doe"), directory.ErrStoreClosed)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContractTest(t, "memory", func(t *testing.T) directory.Store {
		return directory.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	storeContractTest(t, "sqlite", func(t *testing.T) directory.Store {
		store, err := directory.NewSQLiteStore(filepath.Join(t.TempDir(), "people.db"))
		require.NoError(t, err)
		return store
	})
}

func TestMemoryStore_Len(t *testing.T) {
	store := directory.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), directory.Entry{LastName: "Doe"}))
	assert.Equal(t, 1, store.Len())
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		path    string
		wantErr bool
	}{
		{"default is memory", "", "", false},
		{"memory", directory.DriverMemory, "", false},
		{"sqlite in memory", directory.DriverSQLite, ":memory:", false},
		{"sqlite without path", directory.DriverSQLite, "", true},
		{"unknown driver", "postgres", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := directory.Open(tt.driver, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, store.Close())
		})
	}
}
