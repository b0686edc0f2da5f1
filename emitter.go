package deprecate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/lmittmann/tint"
)

// Emitter surfaces deprecation diagnostics. Emission is fire-and-forget: a
// wrapped call never inspects the outcome. Filtering or deduplication (e.g.
// warn once per call site) is the emitter's own policy, not the Guard's.
//
// depth is the number of stack frames between Emit and the call site the
// diagnostic should be attributed to, suitable for runtime.Caller from
// within Emit. It points at the caller of the wrapped callable, not at the
// Guard's internals.
//
// Implementations must be safe for concurrent use, or serialize internally
// the way the bundled emitters do.
type Emitter interface {
	Emit(message string, kind string, depth int)
}

// slogEmitter writes WARN records through a *slog.Logger. A zero value uses
// slog.Default at emission time. The mutex serializes only the emission
// step; binding and delegation in the wrapped callable stay lock-free.
type slogEmitter struct {
	mu     sync.Mutex
	logger *slog.Logger
}

// NewSlogEmitter returns an Emitter writing through logger. A nil logger
// means slog.Default, resolved at each emission.
func NewSlogEmitter(logger *slog.Logger) Emitter {
	return &slogEmitter{logger: logger}
}

// NewConsoleEmitter returns an Emitter writing colorized warnings to w.
func NewConsoleEmitter(w io.Writer) Emitter {
	return NewSlogEmitter(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelWarn,
			TimeFormat: "15:04:05",
		}),
	))
}

func (e *slogEmitter) Emit(message string, kind string, depth int) {
	attrs := []slog.Attr{slog.String("kind", kind)}
	if _, file, line, ok := runtime.Caller(depth); ok {
		attrs = append(attrs, slog.String("origin", fmt.Sprintf("%s:%d", file, line)))
	}

	logger := e.logger
	if logger == nil {
		logger = slog.Default()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	logger.LogAttrs(context.Background(), slog.LevelWarn, message, attrs...)
}
