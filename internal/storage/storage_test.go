package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/config"
	"aps-backend/internal/model"
)

// runContract checks the behaviour every backend must share
func runContract(t *testing.T, s Storage) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.GetItem(ctx, "contract_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		require.NoError(t, s.SetItem(ctx, "contract_key", "one"))
		v, err := s.GetItem(ctx, "contract_key")
		require.NoError(t, err)
		assert.Equal(t, "one", v)

		require.NoError(t, s.SetItem(ctx, "contract_key", "two"))
		v, err = s.GetItem(ctx, "contract_key")
		require.NoError(t, err)
		assert.Equal(t, "two", v)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.SetItem(ctx, "contract_rm", "x"))
		require.NoError(t, s.RemoveItem(ctx, "contract_rm"))
		_, err := s.GetItem(ctx, "contract_rm")
		assert.ErrorIs(t, err, ErrNotFound)

		// removing again is not an error
		assert.NoError(t, s.RemoveItem(ctx, "contract_rm"))
	})

	t.Run("json round trip", func(t *testing.T) {
		user := model.User{ID: "hr_1", Name: "HR Manager", Email: "hr@akshyapatra.com", Role: model.RoleHR}
		require.NoError(t, SetJSON(ctx, s, KeyUserData, user))

		var got model.User
		require.NoError(t, GetJSON(ctx, s, KeyUserData, &got))
		assert.Equal(t, user, got)
	})

	t.Run("clear", func(t *testing.T) {
		for _, key := range Keys {
			require.NoError(t, s.SetItem(ctx, key, "[]"))
		}
		require.NoError(t, Clear(ctx, s))
		for _, key := range Keys {
			_, err := s.GetItem(ctx, key)
			assert.ErrorIs(t, err, ErrNotFound, key)
		}
	})
}

func TestMemory(t *testing.T) {
	runContract(t, NewMemory())
}

func TestGetJSONCorrupt(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.SetItem(ctx, KeyUserData, "{not json"))

	var u model.User
	err := GetJSON(ctx, s, KeyUserData, &u)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestOpenMemory(t *testing.T) {
	s, closer, err := Open(context.Background(), config.Default())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	assert.NoError(t, closer.Close())
}

func TestOpenUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "floppy"
	_, _, err := Open(context.Background(), cfg)
	assert.EqualError(t, err, "unknown storage backend: floppy")
}

func TestHealthMemory(t *testing.T) {
	stats := Health(context.Background(), NewMemory())
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "memory", stats["backend"])
}
