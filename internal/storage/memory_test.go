package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v, err := s.Get(ctx, "nada")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, KeySession, "tok"))
	v, err = s.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.Set(ctx, KeySession, "tok2"))
	v, err = s.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, "tok2", v)

	require.NoError(t, s.Remove(ctx, KeySession))
	v, err = s.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Remove(ctx, KeySession), "removing twice is fine")
}
