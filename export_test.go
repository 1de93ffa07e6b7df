package logcall

// Bridges for the external stack tests. Frames of this package are
// filtered from walks, so a snapshot worth asserting on has to be captured
// from a caller outside it.

// CaptureStackForTest captures through one intermediate frame, the way the
// wrapper's entry point does, so the snapshot head is this function's
// caller.
func CaptureStackForTest() *stackSnapshot { return captureStack() }

var (
	FormatCallerForTest       = formatCaller
	FormatOneLineStackForTest = formatOneLineStack
)

func WalkForTest(s *stackSnapshot, yield func(fn string, line int) bool) {
	s.walk(yield)
}
