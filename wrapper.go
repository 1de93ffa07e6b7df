package logcall

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Wrapper instruments a single func value. It is immutable after
// construction and safe for concurrent use; every invocation gets its own
// invocation context, so recursive and re-entrant calls nest correctly.
type Wrapper struct {
	target reflect.Value  // the wrapped func
	recv   *reflect.Value // bound receiver, nil when unbound
	proxy  reflect.Value  // MakeFunc proxy with the caller-facing signature
	name   string         // package-qualified display name of target
	cfg    config
}

// New builds a wrapper around fn. fn must be a non-nil func value; options
// are validated here so misconfiguration surfaces at construction.
func New(fn any, opts ...Option) (*Wrapper, error) {
	if fn == nil {
		return nil, ErrNilTarget
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w, got %T", ErrNotFunc, fn)
	}
	if v.IsNil() {
		return nil, ErrNilTarget
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	w := &Wrapper{
		target: v,
		name:   funcQualifiedName(v),
		cfg:    *cfg,
	}
	w.proxy = reflect.MakeFunc(v.Type(), w.invoke)
	return w, nil
}

// MustNew is New that panics on construction errors.
func MustNew(fn any, opts ...Option) *Wrapper {
	w, err := New(fn, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Interface returns the instrumented proxy as an untyped func value. The
// proxy has the same signature as the wrapped target (minus the receiver
// parameter when bound) and forwards arguments, results and panics
// unchanged.
func (w *Wrapper) Interface() any {
	return w.proxy.Interface()
}

// Name is the package-qualified display name used in records.
func (w *Wrapper) Name() string {
	return w.name
}

// Bind returns a variant that supplies recv as the leading argument on every
// call, mirroring how a method expression is bound to its receiver. The
// bound wrapper shares this wrapper's configuration; no options are
// re-applied and no re-validation happens.
func (w *Wrapper) Bind(recv any) (*Wrapper, error) {
	if w.recv != nil {
		return nil, ErrAlreadyBound
	}
	t := w.target.Type()
	if t.NumIn() == 0 {
		return nil, ErrNoReceiverParam
	}
	if t.IsVariadic() && t.NumIn() == 1 {
		return nil, ErrVariadicReceiver
	}
	want := t.In(0)
	rv := reflect.ValueOf(recv)
	if !rv.IsValid() {
		// Untyped nil receiver is only meaningful for nil-able parameters.
		switch want.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			rv = reflect.Zero(want)
		default:
			return nil, fmt.Errorf("%w: <nil> for %s", ErrReceiverMismatch, want)
		}
	} else if !rv.Type().AssignableTo(want) {
		return nil, fmt.Errorf("%w: %s for %s", ErrReceiverMismatch, rv.Type(), want)
	}
	bound := &Wrapper{
		target: w.target,
		recv:   &rv,
		name:   w.name,
		cfg:    w.cfg,
	}
	bound.proxy = reflect.MakeFunc(boundType(t), bound.invoke)
	return bound, nil
}

// boundType drops the receiver parameter from a func type.
func boundType(t reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}
	out := make([]reflect.Type, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		out = append(out, t.Out(i))
	}
	return reflect.FuncOf(in, out, t.IsVariadic())
}

// Call invokes the wrapped target through the instrumented pipeline with
// arguments supplied as plain values. Argument shape and types must match
// the proxy's signature; mismatches fail the same way calling the unwrapped
// target through reflection would.
func (w *Wrapper) Call(args ...any) []any {
	t := w.proxy.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			panic(fmt.Sprintf("logcall: %s takes at least %d arguments, got %d", w.name, fixed, len(args)))
		}
	} else if len(args) != fixed {
		panic(fmt.Sprintf("logcall: %s takes %d arguments, got %d", w.name, fixed, len(args)))
	}
	in := make([]reflect.Value, 0, t.NumIn())
	for i := 0; i < fixed; i++ {
		in = append(in, argValue(args[i], t.In(i)))
	}
	if t.IsVariadic() {
		st := t.In(t.NumIn() - 1)
		tail := reflect.MakeSlice(st, 0, len(args)-fixed)
		for _, a := range args[fixed:] {
			tail = reflect.Append(tail, argValue(a, st.Elem()))
		}
		in = append(in, tail)
	}
	out := w.invoke(in)
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res
}

func argValue(a any, want reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(want)
	}
	return reflect.ValueOf(a)
}

// invoke is the instrumented call path shared by the typed proxy and Call.
// It captures the caller chain, opens the invocation context, emits the
// entered record, delegates to the target, and emits the exited record on
// both the return and the panic path. The context is closed on every exit
// path before the exited record is built, so elapsed time is always set.
func (w *Wrapper) invoke(in []reflect.Value) []reflect.Value {
	snap := captureStack()
	inv := newInvocation(snap)
	inv.enter()
	var (
		out       []reflect.Value
		recovered any
		completed bool
	)
	func() {
		defer func() {
			if !completed {
				recovered = recover()
			}
			inv.leave()
		}()
		w.logEnter(inv, in)
		out = w.delegate(in)
		completed = true
	}()
	if !completed {
		w.logExitRaised(inv, recovered)
		panic(recovered)
	}
	w.logExitReturned(inv, out)
	return out
}

// delegate forwards the exact arguments to the target, prepending the bound
// receiver when there is one.
func (w *Wrapper) delegate(in []reflect.Value) []reflect.Value {
	call := in
	if w.recv != nil {
		call = make([]reflect.Value, 0, len(in)+1)
		call = append(call, *w.recv)
		call = append(call, in...)
	}
	if w.target.Type().IsVariadic() {
		// MakeFunc hands the variadic tail over already collected.
		return w.target.CallSlice(call)
	}
	return w.target.Call(call)
}

// displayArgs is the argument list as shown in records: the bound receiver
// appears as the leading argument, matching how the target actually sees
// the call.
func (w *Wrapper) displayArgs(in []reflect.Value) []reflect.Value {
	if w.recv == nil {
		return in
	}
	args := make([]reflect.Value, 0, len(in)+1)
	args = append(args, *w.recv)
	return append(args, in...)
}

func (w *Wrapper) indent(level int) string {
	return strings.Repeat(w.cfg.indentMarker, level-1)
}

// contextInfo identifies the invocation: the goroutine it runs on and its
// process-unique serial number.
func (w *Wrapper) contextInfo(inv *invocation) string {
	return "goroutine-" + strconv.FormatUint(inv.gid, 10) + " " + strconv.FormatUint(inv.serial, 10)
}

// wrapperFrames is the number of frames between the Emit call and the head
// of the captured snapshot: emit, the log helper, one intermediate (the
// invoke closure on the enter path, the result-specific helper on the exit
// path) and invoke itself. callerSkip is anchored at Emit's caller, the
// emit frame, so skipping these four lands on the snapshot head; the
// machinery frames above invoke vary per call style and come from the
// snapshot. An Emitter whose implementation adds frames of its own below
// that anchor accounts for them itself, the way registryEmitter does.
const wrapperFrames = 4

func (w *Wrapper) emit(inv *invocation, msg string) {
	w.cfg.emitter.Emit(w.cfg.loggerName, w.cfg.level, msg, wrapperFrames+inv.snap.leadingInternal())
}

func (w *Wrapper) logEnter(inv *invocation, in []reflect.Value) {
	msg := w.indent(inv.stackLevel()) + "/" + w.contextInfo(inv) + "/ " +
		formatInvocation(w.name, w.displayArgs(in), w.target.Type().IsVariadic()) +
		" started"
	w.emit(inv, msg)
}

func (w *Wrapper) logExitReturned(inv *invocation, out []reflect.Value) {
	w.logExit(inv, formatResults(out)+" returned")
}

func (w *Wrapper) logExitRaised(inv *invocation, recovered any) {
	w.logExit(inv, formatValue(recovered)+" raised, stack: "+formatOneLineStack(inv.snap))
}

func (w *Wrapper) logExit(inv *invocation, result string) {
	msg := w.indent(inv.stackLevel()) + `\` + w.contextInfo(inv) + `\ ` +
		formatElapsed(inv.elapsedTime()) + " elapsed, " + result
	w.emit(inv, msg)
}
