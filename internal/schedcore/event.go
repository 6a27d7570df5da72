// Package schedcore implements the priority-queue-driven event loop: a
// min-heap of events keyed by trigger time, dispatched to a single
// EventLoopState either on time or, past its grace window, as a late
// delivery. It is the Go realization of the Rust original's event_pool.rs
// (Event trait, EventLoopContext, the reversed-Ord BinaryHeap-as-min-heap
// trick, and the EventLoopState trait), built on container/heap instead of
// a hand-rolled binary heap or trait-object polymorphism.
package schedcore

import "github.com/rohmanhakim/autohackgovernor/pkg/idhash"

// Kind tags the payload carried by an Event.
type Kind int

const (
	KindPollTarget Kind = iota
	KindMemoryFreed
	KindGeneralPoll
)

// Event is a tagged record dispatched by the EventLoop. TargetID is only
// meaningful when Kind is KindPollTarget.
type Event struct {
	TriggerTime float64
	GracePeriod float64
	Kind        Kind
	TargetID    idhash.HostID
}

func NewPollTargetEvent(triggerTime, gracePeriod float64, target idhash.HostID) Event {
	return Event{TriggerTime: triggerTime, GracePeriod: gracePeriod, Kind: KindPollTarget, TargetID: target}
}

func NewMemoryFreedEvent(triggerTime, gracePeriod float64) Event {
	return Event{TriggerTime: triggerTime, GracePeriod: gracePeriod, Kind: KindMemoryFreed}
}

func NewGeneralPollEvent(triggerTime, gracePeriod float64) Event {
	return Event{TriggerTime: triggerTime, GracePeriod: gracePeriod, Kind: KindGeneralPoll}
}
