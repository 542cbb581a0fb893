// Package storagetest is a behavioural test suite every repository.Storage
// backend runs against itself.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieuclat/storefront/internal/repository"
)

// Run exercises s. Keys are prefixed with the test name so backends shared
// between runs do not collide.
func Run(t *testing.T, s repository.Storage) {
	ctx := context.Background()
	prefix := t.Name() + ":"

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Load(ctx, prefix+"missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		key := repository.Namespace(prefix+"s1", repository.CartKey)
		require.NoError(t, s.Save(ctx, key, []byte(`[{"productId":1}]`)))

		got, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"productId":1}]`, string(got))
	})

	t.Run("save replaces wholesale", func(t *testing.T) {
		key := repository.Namespace(prefix+"s2", repository.WishlistKey)
		require.NoError(t, s.Save(ctx, key, []byte(`[1,2,3]`)))
		require.NoError(t, s.Save(ctx, key, []byte(`[]`)))

		got, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(got))
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		a := repository.Namespace(prefix+"a", repository.OrdersKey)
		b := repository.Namespace(prefix+"b", repository.OrdersKey)
		require.NoError(t, s.Save(ctx, a, []byte(`["a"]`)))

		_, err := s.Load(ctx, b)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		key := prefix + "gone"
		require.NoError(t, s.Save(ctx, key, []byte(`{}`)))
		require.NoError(t, s.Delete(ctx, key))

		_, err := s.Load(ctx, key)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, s.Delete(ctx, key))
	})
}
