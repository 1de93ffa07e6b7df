package logcall

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// depthTracker keeps one nesting counter per goroutine. Depth is bumped when
// an invocation enters and restored when it leaves, so nested wrapped calls
// indent one level deeper than their parent. Counters never leak across
// goroutines; the mutex only guards the map itself.
type depthTracker struct {
	mu          sync.Mutex
	byGoroutine map[uint64]int
}

var depths = depthTracker{byGoroutine: make(map[uint64]int)}

// enter returns the new nesting level for gid, starting from 1 at the top of
// a goroutine's call chain.
func (t *depthTracker) enter(gid uint64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	level := t.byGoroutine[gid] + 1
	t.byGoroutine[gid] = level
	return level
}

// leave restores the level that was current before the matching enter.
// Entries are removed once a goroutine unwinds to the top so the map does
// not grow with goroutine churn.
func (t *depthTracker) leave(gid uint64, level int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if level <= 1 {
		delete(t.byGoroutine, gid)
		return
	}
	t.byGoroutine[gid] = level - 1
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the numeric id out of the runtime.Stack header line
// ("goroutine 18 [running]:"). The runtime does not expose the id through a
// supported API; the header format has been stable for a long time and the
// parse degrades to 0 rather than failing.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
