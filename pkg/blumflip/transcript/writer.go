package transcript

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/commitlab/blumflip-go/pkg/blumflip/logging"
)

// Writer renders events as console lines, one per event, in the shape
// produced by Format. Writes are serialized.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Emit prints the formatted event followed by a newline.
func (w *Writer) Emit(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, Format(ev))
}

// LogSink forwards events to a structured logger at Info level, attaching the
// acting role and event kind as attributes.
type LogSink struct {
	log logging.Logger
}

// NewLogSink returns a sink logging through logger. Passing nil binds to the
// default logger.
func NewLogSink(logger logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.New(nil)
	}
	return &LogSink{log: logger}
}

// Emit logs the event detail with role and kind attributes.
func (s *LogSink) Emit(ev Event) {
	s.log.Info(context.Background(), ev.Detail,
		"role", ev.Role.String(),
		"kind", ev.Kind.String(),
	)
}

var (
	_ Sink = (*Writer)(nil)
	_ Sink = (*LogSink)(nil)
)
