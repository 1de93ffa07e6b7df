package logcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackSnapshotSentinels(t *testing.T) {
	t.Parallel()
	empty := &stackSnapshot{}
	assert.Equal(t, unknownCaller, formatCaller(empty))
	assert.Equal(t, unknownStack, formatOneLineStack(empty))

	var nilSnap *stackSnapshot
	assert.Equal(t, unknownCaller, formatCaller(nilSnap))
	assert.Equal(t, unknownStack, formatOneLineStack(nilSnap))
}

func TestIsInternalFrame(t *testing.T) {
	t.Parallel()
	assert.True(t, isInternalFrame(""))
	assert.True(t, isInternalFrame(internalPkgPath+".(*Wrapper).invoke"))
	assert.True(t, isInternalFrame("reflect.Value.Call"))
	assert.True(t, isInternalFrame("runtime.goexit"))
	// The test package shares the path prefix but is a different code unit.
	assert.False(t, isInternalFrame(internalPkgPath+"_test.TestIsInternalFrame"))
	assert.False(t, isInternalFrame("github.com/acme/app.Handler"))
}

func TestFrameName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, unknownName, frameName(""))
	assert.Equal(t, "pkg.(*T).M", frameName("pkg.(*T).M-fm"))
	assert.Equal(t, "pkg.F", frameName("pkg.F"))
}
