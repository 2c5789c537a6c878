package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetUserIDFromContext verifies the ok flag separates authenticated
// requests from anonymous ones.
func TestGetUserIDFromContext(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

		userID, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("anonymous", func(t *testing.T) {
		userID, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
		assert.Zero(t, userID)
	})

	t.Run("wrong value type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

		_, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
	})
}
