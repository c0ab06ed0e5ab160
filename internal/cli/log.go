// Package cli implements the lvmesh command-line interface.
//
// # Commands
//
//   - generate: write a primitive (platonic solid, UV sphere, grid) to a file
//   - stats: summarise mesh files concurrently
//   - extrude: extrude one face of a mesh
//   - triangulate: split faces into triangles (fan or ear clipping)
//   - store: put, get, list and delete meshes in a local database
//
// # Files
//
// The format follows the extension: .obj is Wavefront OBJ, .yaml and .yml
// are mesh documents. "-" reads stdin or writes stdout in the format given
// by --format.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging to stderr.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with short timestamps writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of one operation.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Extruded face 3 (12ms)".
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
