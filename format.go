package logcall

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"
)

const unknownName = "(unknown)"

// renderers are the ordered display strategies tried by formatValue. Each is
// allowed to panic; formatValue contains the failure and moves on to the
// next tier. The final type-only fallback never fails.
var renderers = []func(any) string{renderGoSyntax, renderDisplay}

// formatValue renders an arbitrary argument, return value or panic payload
// for a log record. Display logic on the value itself may panic; that must
// never escape into the wrapped call's control flow.
func formatValue(v any) string {
	for _, render := range renderers {
		if s, ok := attemptRender(render, v); ok {
			return s
		}
	}
	return fallbackRender(v)
}

func attemptRender(render func(any) string, v any) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return render(v), true
}

// renderGoSyntax is the repr-style tier: Go-syntax representation, honoring
// a GoStringer if the value provides one.
func renderGoSyntax(v any) string {
	if gs, ok := v.(fmt.GoStringer); ok {
		return gs.GoString()
	}
	return fmt.Sprintf("%#v", v)
}

// renderDisplay is the plain-string tier, used when the Go-syntax tier
// panicked.
func renderDisplay(v any) string {
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprintf("%v", v)
}

func fallbackRender(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "(<nil>)"
	}
	return "(" + typeQualifiedName(t) + " instance)"
}

func typeQualifiedName(t reflect.Type) string {
	if pkg := t.PkgPath(); pkg != "" && t.Name() != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

// formatInvocation renders "qualifiedName(arg, arg, ...)" for the entered
// record. Arguments appear in the order they were supplied; a collected
// variadic tail is flattened back to how the caller wrote it.
func formatInvocation(name string, args []reflect.Value, variadic bool) string {
	parts := make([]string, 0, len(args))
	for i, a := range args {
		if variadic && i == len(args)-1 && a.Kind() == reflect.Slice {
			for j := 0; j < a.Len(); j++ {
				parts = append(parts, formatValue(a.Index(j).Interface()))
			}
			continue
		}
		parts = append(parts, formatValue(a.Interface()))
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// formatResults renders what a call produced: no results as "()", a single
// result bare, several results parenthesized like a Go return statement.
func formatResults(out []reflect.Value) string {
	switch len(out) {
	case 0:
		return "()"
	case 1:
		return formatValue(out[0].Interface())
	}
	parts := make([]string, len(out))
	for i, o := range out {
		parts[i] = formatValue(o.Interface())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatElapsed renders a duration the way the records show it: sub-minute
// durations keep microsecond precision, longer ones drop precision step by
// step. Whole days fall back to the generic Duration string; nothing this
// wrapper times should ever run that long.
func formatElapsed(d time.Duration) string {
	if d >= 24*time.Hour {
		return d.String()
	}
	secs := int(d / time.Second)
	if secs < 60 {
		micros := int(d % time.Second / time.Microsecond)
		return fmt.Sprintf("00:%02d.%06d", secs, micros)
	}
	mins, secs := secs/60, secs%60
	if mins <= 60 {
		return fmt.Sprintf("%02d:%02d", mins, secs)
	}
	hours, mins := mins/60, mins%60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}

// funcQualifiedName resolves the package-qualified name of a func value,
// e.g. "github.com/acme/app.(*Service).Lookup". Method values carry a
// compiler-added "-fm" suffix that is stripped for display.
func funcQualifiedName(fn reflect.Value) string {
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return unknownName
	}
	name := strings.TrimSuffix(rf.Name(), "-fm")
	if name == "" {
		return unknownName
	}
	return name
}
