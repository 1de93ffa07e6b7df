package logcall

import "time"

// invocation tracks a single call through the wrapper: its identity, nesting
// level and timing. It moves through exactly one enter and one leave;
// violating that order is a bug in the wrapper itself and panics loudly
// instead of producing wrong records.
type invocation struct {
	serial  uint64
	gid     uint64
	snap    *stackSnapshot // borrowed; only valid for the duration of the call
	level   int
	start   time.Time
	elapsed time.Duration
	entered bool
	exited  bool
}

func newInvocation(snap *stackSnapshot) *invocation {
	return &invocation{
		serial: serials.next(),
		gid:    goroutineID(),
		snap:   snap,
	}
}

// enter records the nesting level and starts the clock.
func (c *invocation) enter() {
	if c.entered {
		panic("logcall: invocation entered twice")
	}
	c.entered = true
	c.level = depths.enter(c.gid)
	c.start = time.Now()
}

// leave restores the goroutine's nesting level and stops the clock. It must
// run on every exit path, including panics.
func (c *invocation) leave() {
	if !c.entered {
		panic("logcall: invocation left before entering")
	}
	if c.exited {
		panic("logcall: invocation left twice")
	}
	depths.leave(c.gid, c.level)
	c.elapsed = time.Since(c.start)
	c.exited = true
}

// stackLevel is the 1-based nesting level of this invocation on its
// goroutine. Only meaningful after enter.
func (c *invocation) stackLevel() int {
	if !c.entered {
		panic("logcall: stack level read before entering")
	}
	return c.level
}

// elapsedTime is the wall-clock duration of the call. Only meaningful after
// leave.
func (c *invocation) elapsedTime() time.Duration {
	if !c.exited {
		panic("logcall: elapsed time read before leaving")
	}
	return c.elapsed
}
