package schedcore

import (
	"container/heap"
	"math"

	"github.com/rohmanhakim/autohackgovernor/internal/platform"
)

// Context is the mutable "outbox" callbacks append to during a dispatch.
// It is flushed into the loop's heap after every dispatch, mirroring the
// teacher's split between a fixed pipeline result (CrawlingExecution) and
// an explicit outcome value (PipelineOutcome) threaded through callbacks,
// generalized here to an event-producing side channel instead of a
// pass/fail outcome.
type Context struct {
	nextEvents []Event
}

// AddEvent appends an event to the outbox. It is not visible to the loop
// until the current dispatch completes and the outbox is drained.
func (c *Context) AddEvent(e Event) {
	c.nextEvents = append(c.nextEvents, e)
}

func (c *Context) drain() []Event {
	out := c.nextEvents
	c.nextEvents = nil
	return out
}

// PendingEvents returns a snapshot of events queued so far without
// draining them, for test assertions against InitialRun/OnEvent output.
func (c *Context) PendingEvents() []Event {
	return append([]Event(nil), c.nextEvents...)
}

// State is the event-loop's sole behavioral extension point. Variants of
// "state" are deliberately NOT modeled via subclassing or an embedded base
// type (spec §9): exactly these three operations, nothing more.
type State interface {
	InitialRun(ctx *Context)
	OnEvent(ctx *Context, e Event)
	OnEventFail(ctx *Context, e Event)
}

// Loop is a cooperative, single-threaded event-driven driver. The only
// suspension point is its sleep-until-next-event; every dispatched
// callback runs to completion without suspending.
type Loop struct {
	events         eventHeap
	state          State
	plat           platform.Platform
	lastSleptUntil float64
}

func NewLoop(state State, plat platform.Platform) *Loop {
	return &Loop{state: state, plat: plat}
}

// Run executes initial_run, drains its outbox, then dispatches events in
// ascending trigger-time order until the heap is empty.
func (l *Loop) Run() {
	ctx := &Context{}
	l.state.InitialRun(ctx)
	l.drainInto(ctx)

	l.lastSleptUntil = l.plat.Now()

	for l.events.Len() > 0 {
		e := heap.Pop(&l.events).(Event)
		l.dispatch(ctx, e)
		l.drainInto(ctx)
	}
}

func (l *Loop) drainInto(ctx *Context) {
	for _, e := range ctx.drain() {
		heap.Push(&l.events, e)
	}
}

// dispatch implements the delivery decision in spec §4.1: sleep-and-dispatch
// when early, dispatch-without-sleeping within the grace window, otherwise
// divert to OnEventFail.
func (l *Loop) dispatch(ctx *Context, e Event) {
	now := l.lastSleptUntil
	switch {
	case now <= e.TriggerTime:
		delta := e.TriggerTime - now
		l.plat.Sleep(int64(math.Round(delta)))
		l.lastSleptUntil = e.TriggerTime
		l.state.OnEvent(ctx, e)
	case now-e.GracePeriod <= e.TriggerTime:
		l.state.OnEvent(ctx, e)
	default:
		l.state.OnEventFail(ctx, e)
	}
}
