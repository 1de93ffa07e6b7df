package logcall

import "sync"

// serialAllocator hands out invocation identifiers that stay unique for the
// lifetime of the process. The counter is never reset.
type serialAllocator struct {
	mu   sync.Mutex
	last uint64
}

func (a *serialAllocator) next() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last++
	return a.last
}

// serials is shared by all wrappers so identifiers are unique across wrapped
// targets, not just within one.
var serials serialAllocator
