package container

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navstack/internal/view"
)

func TestPop_EmptyStackIsReportedNoOp(t *testing.T) {
	c, _, log := newTestContainer(t)
	c.AddReceiver(&recordingReceiver{name: "rcv", log: log})

	err := c.Pop(context.Background(), true, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyStack)
	assert.True(t, IsEmptyStack(err))
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.InTransition())
	assert.Empty(t, log.snapshot(), "a rejected pop must not notify anyone")
}

func TestPop_OrderingContract(t *testing.T) {
	c, _, log := newTestContainer(t)
	c.AddReceiver(&recordingReceiver{name: "rcv", log: log})
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	log.reset()
	require.NoError(t, c.Pop(context.Background(), true, nil))

	assert.Equal(t, []string{
		"rcv.BeforePop",
		"b.BeforeExit:pop",
		"a.BeforeEnter:pop",
		"b.Exit:pop",
		"b.AnimateExit",
		"a.Enter:pop",
		"a.AnimateEnter",
		"b.AfterExit:pop",
		"a.AfterEnter:pop",
		"rcv.AfterPop",
		"b.BeforeRelease",
		"b.Dispose",
	}, log.snapshot())
	assert.Equal(t, []string{"a"}, c.Paths())
}

func TestPop_LastElementLeavesEmptyStack(t *testing.T) {
	c, ldr, log := newTestContainer(t)
	a := ldr.prime("a")
	mustPush(t, c, "a")

	log.reset()
	require.NoError(t, c.Pop(context.Background(), true, nil))

	assert.Equal(t, []string{
		"a.BeforeExit:pop",
		"a.Exit:pop",
		"a.AnimateExit",
		"a.AfterExit:pop",
		"a.BeforeRelease",
		"a.Dispose",
	}, log.snapshot(), "no enter side runs when the stack empties")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1, a.released)

	err := c.Pop(context.Background(), true, nil)
	assert.ErrorIs(t, err, ErrEmptyStack)
	assert.Equal(t, 0, c.Len())
}

func TestPop_MutationBetweenAnimationsAndAfterHooks(t *testing.T) {
	c, ldr, _ := newTestContainer(t)
	a := ldr.prime("a")
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	a.onEnter = func() {
		assert.Equal(t, 2, c.Len(), "pop must not shrink the stack before the enter phase completes")
		assert.True(t, c.InTransition())
	}
	a.onAfterEnter = func() {
		assert.Equal(t, 1, c.Len())
		assert.False(t, c.InTransition())
	}

	require.NoError(t, c.Pop(context.Background(), true, nil))
}

func TestPop_SkipsAnimationsWhenDisabled(t *testing.T) {
	c, _, log := newTestContainer(t)
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	log.reset()
	require.NoError(t, c.Pop(context.Background(), false, nil))

	calls := log.snapshot()
	assert.NotContains(t, calls, "b.AnimateExit")
	assert.NotContains(t, calls, "a.AnimateEnter")
	assert.Contains(t, calls, "b.Exit:pop")
	assert.Contains(t, calls, "a.Enter:pop")
}

func TestPop_RejectedWhileInTransition(t *testing.T) {
	c, ldr, _ := newTestContainer(t)
	mustPush(t, c, "a")

	b := ldr.prime("b")
	b.onEnter = func() {
		err := c.Pop(context.Background(), true, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransitionBusy)
	}
	mustPush(t, c, "b")
	assert.Equal(t, []string{"a", "b"}, c.Paths())
}

func TestPop_ResetsStackedFlag(t *testing.T) {
	c, _, _ := newTestContainer(t)
	mustPush(t, c, "a")

	opts := view.DefaultPushOptions()
	opts.Stack = false
	require.NoError(t, c.Push(context.Background(), "b", opts, nil))
	assert.False(t, c.Stacked())

	require.NoError(t, c.Pop(context.Background(), true, nil))
	assert.True(t, c.Stacked(), "the revealed element is the stable top again")

	// The next push must retain the revealed element.
	mustPush(t, c, "c")
	assert.Equal(t, []string{"a", "c"}, c.Paths())
}

func TestPop_ReleasesThroughPool(t *testing.T) {
	c, ldr, _ := newTestContainer(t, func(o *Options) {
		o.DefaultPooling = true
	})
	b := ldr.prime("b")
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	require.NoError(t, c.Pop(context.Background(), true, nil))
	assert.Equal(t, 1, b.deactivated)
	assert.Equal(t, 0, b.disposed)
	assert.Equal(t, 1, c.Pool().Len("b"))
}

func TestPop_ReferencePoolingOverrideWins(t *testing.T) {
	c, ldr, _ := newTestContainer(t, func(o *Options) {
		o.DefaultPooling = true
	})
	b := ldr.prime("b")
	mustPush(t, c, "a")

	opts := view.DefaultPushOptions()
	opts.Pooling = view.PoolDisabled
	require.NoError(t, c.Push(context.Background(), "b", opts, nil))

	require.NoError(t, c.Pop(context.Background(), true, nil))
	assert.Equal(t, 1, b.disposed, "the per-push override must beat the container default")
	assert.Equal(t, 0, c.Pool().Len("b"))
}

func TestPop_FailedBeforeReleaseDisposes(t *testing.T) {
	c, ldr, _ := newTestContainer(t, func(o *Options) {
		o.DefaultPooling = true
	})
	b := ldr.prime("b")
	b.beforeReleaseErr = errors.New("cleanup failed")
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	require.NoError(t, c.Pop(context.Background(), true, nil))
	assert.Equal(t, 1, b.disposed)
	assert.Equal(t, 0, c.Pool().Len("b"), "a view that failed its release hook must not be pooled")
}

func TestPop_PreMutationFailureKeepsStack(t *testing.T) {
	c, ldr, _ := newTestContainer(t)
	b := ldr.prime("b")
	b.exitErr = errors.New("hook failed")
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	err := c.Pop(context.Background(), true, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Paths(), "a failed pop must leave the stack intact")
	assert.False(t, c.InTransition())
	assert.Equal(t, 0, b.released)
}

func TestPopAsync_Completes(t *testing.T) {
	c, _, _ := newTestContainer(t)
	mustPush(t, c, "a")

	tr := c.PopAsync(context.Background(), true, nil)
	assert.Equal(t, OpPop, tr.Op())
	require.NoError(t, tr.Wait(context.Background()))
	assert.Equal(t, 0, c.Len())
}
