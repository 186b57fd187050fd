package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()

	assert.NoError(t, c.Set(ctx, "stats", map[string]int{"jobs": 1}, 0))

	var out map[string]int
	assert.ErrorIs(t, c.Get(ctx, "stats", &out), ErrNotFound)
	assert.Nil(t, out)
	assert.NoError(t, c.Delete(ctx, "stats"))
	assert.NoError(t, c.Close())
}
