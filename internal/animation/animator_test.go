package animation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navstack/internal/view"
)

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "enter", Enter.String())
	assert.Equal(t, "exit", Exit.String())
	assert.Equal(t, "unknown", Direction(9).String())
}

func TestNop_CompletesImmediately(t *testing.T) {
	a := Nop{}
	err := a.Play(context.Background(), view.BaseView{}, Enter)
	assert.NoError(t, err)
}

func TestDelay_WaitsForDuration(t *testing.T) {
	a := Delay{Duration: 20 * time.Millisecond}

	start := time.Now()
	err := a.Play(context.Background(), view.BaseView{}, Exit)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestDelay_ZeroDurationIsImmediate(t *testing.T) {
	a := Delay{}
	err := a.Play(context.Background(), view.BaseView{}, Enter)
	assert.NoError(t, err)
}

func TestDelay_HonorsContextCancellation(t *testing.T) {
	a := Delay{Duration: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Play(ctx, view.BaseView{}, Enter)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunc_AdaptsFunction(t *testing.T) {
	var gotDirection Direction
	a := Func(func(ctx context.Context, v view.View, d Direction) error {
		gotDirection = d
		return nil
	})

	err := a.Play(context.Background(), view.BaseView{}, Exit)
	require.NoError(t, err)
	assert.Equal(t, Exit, gotDirection)
}
