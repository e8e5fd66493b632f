package array

import (
	"context"

	"github.com/guiguan/caster"
)

// broadcaster.go adds an optional change-notification channel on top of the
// tree, for callers (e.g. a UI or a dump/watch CLI) that want to react to
// every structural mutation without polling Len()/Check(). Grounded on
// SPEC_FULL.md §4's domain-stack entry for github.com/guiguan/caster, a
// generic pub/sub fan-out the rest of the retrieval pack does not otherwise
// cover.

// Snapshot is published, once a Broadcaster is attached (see Tree.Attach),
// by Insert, EraseAt, Erase, Concatenate and SplitRight, and so by every
// call built on them, when they change the tree. Set, Iterator.Set and Swap
// publish nothing, and neither do Concatenate with an empty side or
// SplitRight at position 0 or Len().
type Snapshot struct {
	Len   int
	Depth int
}

// Broadcaster fans Snapshot values out to any number of subscribers.
type Broadcaster[T any] struct {
	c      *caster.Caster
	cancel context.CancelFunc
}

// NewBroadcaster creates a Broadcaster ready to be attached to a Tree via
// Tree.Attach.
func NewBroadcaster[T any]() *Broadcaster[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Broadcaster[T]{c: caster.New(ctx), cancel: cancel}
}

// Subscribe returns a channel receiving every future Snapshot and an unsub
// function to release it. The channel is closed when the Broadcaster is
// closed or the subscription is released.
func (bc *Broadcaster[T]) Subscribe() (<-chan interface{}, func()) {
	return bc.c.Sub()
}

// Close releases the Broadcaster's internal goroutine and closes every
// subscriber channel.
func (bc *Broadcaster[T]) Close() {
	bc.cancel()
}

func (bc *Broadcaster[T]) publish(count, depth int) {
	_ = bc.c.Pub(Snapshot{Len: count, Depth: depth})
}

// Attach wires bc to t so every mutating call publishes a Snapshot. A Tree
// may have at most one Broadcaster attached at a time; attaching a new one
// replaces the previous.
func (t *Tree[T]) Attach(bc *Broadcaster[T]) {
	t.bcast = bc
}

// Detach removes any attached Broadcaster, after which mutations stop
// publishing.
func (t *Tree[T]) Detach() {
	t.bcast = nil
}
