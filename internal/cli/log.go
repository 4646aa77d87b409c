package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/topogen/pkg/errors"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Generated 11 tests (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks forwards generation and output events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCaseStart(_ context.Context, id int, name string) {
	h.logger.Debug("case start", "test", id, "name", name)
}

func (h *logHooks) OnCaseComplete(_ context.Context, id int, name string, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("case failed", "test", id, "name", name, "code", perrors.GetCode(err), "duration", d)
		return
	}
	h.logger.Debug("case done", "test", id, "name", name, "edges", edges, "duration", d)
}

func (h *logHooks) OnRedraw(_ context.Context, id int, redraws int) {
	h.logger.Debug("duplicate draws rejected", "test", id, "redraws", redraws)
}

func (h *logHooks) OnWrite(_ context.Context, path string, size int) {
	h.logger.Debug("wrote file", "path", path, "bytes", size)
}

func (h *logHooks) OnVerify(_ context.Context, id int, match bool) {
	h.logger.Debug("verified case", "test", id, "match", match)
}
