package async

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_ResolvesOnce(t *testing.T) {
	f := NewFuture[int]()

	_, ok := f.Value()
	assert.False(t, ok)

	assert.True(t, f.Resolve(1))
	assert.False(t, f.Resolve(2))

	v, ok := f.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	got, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestGo_RunsFunction(t *testing.T) {
	f := Go(func() string { return "done" })

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not settle")
	}

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestFuture_WaitStopsOnContext(t *testing.T) {
	f := NewFuture[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// 待つのをやめても後から確定できる
	assert.True(t, f.Resolve(7))
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
