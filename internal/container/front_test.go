package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navstack/internal/view"
)

func TestBringToFront_ReordersWithoutReload(t *testing.T) {
	c, ldr, log := newTestContainer(t)
	c.AddReceiver(&recordingReceiver{name: "rcv", log: log})
	mustPush(t, c, "a")
	mustPush(t, c, "b")
	mustPush(t, c, "c")
	before := c.Stack()

	log.reset()
	require.NoError(t, c.BringToFront(context.Background(), "a", false, nil))

	assert.Equal(t, []string{"b", "c", "a"}, c.Paths())
	assert.Equal(t, 1, ldr.loadCount("a"), "bring-to-front must not reload")

	// The same reference objects are reordered, not recreated.
	after := c.Stack()
	assert.Same(t, before[0], after[2])
	assert.Same(t, before[1], after[0])
	assert.Same(t, before[2], after[1])

	assert.Equal(t, []string{
		"rcv.BeforePush",
		"c.BeforeExit:push",
		"a.BeforeEnter:push",
		"c.Exit:push",
		"c.AnimateExit",
		"a.Enter:push",
		"a.AnimateEnter",
		"c.AfterExit:push",
		"a.AfterEnter:push",
		"rcv.AfterPush",
	}, log.snapshot(), "no release may happen, both views stay on the stack")
}

func TestBringToFront_MissingPathFailsWithoutMutation(t *testing.T) {
	c, _, log := newTestContainer(t)
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	log.reset()
	err := c.BringToFront(context.Background(), "missing", false, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, []string{"a", "b"}, c.Paths())
	assert.Empty(t, log.snapshot())
	assert.False(t, c.InTransition())
}

func TestBringToFront_EmptyPathRejected(t *testing.T) {
	c, _, _ := newTestContainer(t)

	err := c.BringToFront(context.Background(), "", false, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBringToFront_AtTopWithIgnoreFrontIsSilentNoOp(t *testing.T) {
	c, _, log := newTestContainer(t)
	c.AddReceiver(&recordingReceiver{name: "rcv", log: log})
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	log.reset()
	require.NoError(t, c.BringToFront(context.Background(), "b", true, nil))
	assert.Empty(t, log.snapshot())
	assert.Equal(t, []string{"a", "b"}, c.Paths())
}

func TestBringToFront_AtTopWithoutIgnoreFrontReplaysEnterSide(t *testing.T) {
	c, _, log := newTestContainer(t)
	c.AddReceiver(&recordingReceiver{name: "rcv", log: log})
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	log.reset()
	require.NoError(t, c.BringToFront(context.Background(), "b", false, nil))

	assert.Equal(t, []string{
		"rcv.BeforePush",
		"b.BeforeEnter:push",
		"b.Enter:push",
		"b.AnimateEnter",
		"b.AfterEnter:push",
		"rcv.AfterPush",
	}, log.snapshot(), "only the enter side replays, there is no exiting view")
	assert.Equal(t, []string{"a", "b"}, c.Paths())
}

func TestBringToFront_PromotesMostRecentDuplicate(t *testing.T) {
	c, _, _ := newTestContainer(t)
	mustPush(t, c, "x")
	mustPush(t, c, "y")
	mustPush(t, c, "x")
	mustPush(t, c, "z")
	before := c.Stack()

	require.NoError(t, c.BringToFront(context.Background(), "x", false, nil))

	assert.Equal(t, []string{"x", "y", "z", "x"}, c.Paths())
	after := c.Stack()
	assert.Same(t, before[2], after[3], "the most recent matching entry is the one promoted")
	assert.Same(t, before[0], after[0], "the older duplicate stays in place")
}

func TestBringToFront_SupersedesPendingRemoval(t *testing.T) {
	c, ldr, _ := newTestContainer(t)
	b := ldr.prime("b")
	mustPush(t, c, "a")

	opts := view.DefaultPushOptions()
	opts.Stack = false
	require.NoError(t, c.Push(context.Background(), "b", opts, nil))
	assert.False(t, c.Stacked())

	require.NoError(t, c.BringToFront(context.Background(), "a", false, nil))
	assert.Equal(t, []string{"b", "a"}, c.Paths())
	assert.True(t, c.Stacked())
	assert.Equal(t, 0, b.released, "bring-to-front releases nothing")

	// The removal intent recorded by the stack=false push is gone.
	mustPush(t, c, "c")
	assert.Equal(t, []string{"b", "a", "c"}, c.Paths())
}

func TestBringToFront_RejectedWhileInTransition(t *testing.T) {
	c, ldr, _ := newTestContainer(t)
	mustPush(t, c, "a")

	b := ldr.prime("b")
	b.onEnter = func() {
		err := c.BringToFront(context.Background(), "a", false, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransitionBusy)
	}
	mustPush(t, c, "b")
	assert.Equal(t, []string{"a", "b"}, c.Paths())
}

func TestBringToFrontAsync_Completes(t *testing.T) {
	c, _, _ := newTestContainer(t)
	mustPush(t, c, "a")
	mustPush(t, c, "b")

	tr := c.BringToFrontAsync(context.Background(), "a", false, nil)
	assert.Equal(t, OpBringToFront, tr.Op())
	require.NoError(t, tr.Wait(context.Background()))
	assert.Equal(t, []string{"b", "a"}, c.Paths())
}
