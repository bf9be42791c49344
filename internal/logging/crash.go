package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic records a panic with its stack trace and re-panics.
// Call it with defer.
func LogPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("stack", string(debug.Stack())).
		Msg("panic")
	panic(r)
}
