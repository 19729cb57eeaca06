package cache

import (
	"context"
	"testing"

	"github.com/waruna834/skills-project-manager/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_DisabledIsNoop(t *testing.T) {
	r := NewRedis(config.RedisConfig{}, 0, nil)
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	assert.NoError(t, r.Delete(ctx, "k"))
	assert.Error(t, r.Ping(ctx))
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
}
