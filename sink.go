package catlog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// sink couples one destination writer with the mutex that serializes whole
// message transactions against it. Swapping the log stream installs a fresh
// sink, so a statement already being built finishes against the sink it
// started with and is never split across destinations.
type sink struct {
	mu  sync.Mutex
	w   io.Writer
	tty bool
}

var currentSink atomic.Pointer[sink]

func init() {
	currentSink.Store(newSink(os.Stderr))
}

func newSink(w io.Writer) *sink {
	s := &sink{w: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		s.w = colorable.NewColorable(f)
		s.tty = true
	}
	return s
}

// SetLogStream replaces the process-wide log destination. The default is
// standard error. A nil writer is ignored. The swap is a plain pointer
// store; statements admitted afterwards pick up the new destination on their
// next transaction.
func SetLogStream(w io.Writer) {
	if w == nil {
		return
	}
	currentSink.Store(newSink(w))
}

// Color mode: 0 auto-detect, 1 forced on, 2 forced off.
var colorMode atomic.Int32

// SetColorEnabled forces colored severity tags on or off, overriding the
// terminal auto-detection applied when the destination is a *os.File.
func SetColorEnabled(enabled bool) {
	if enabled {
		colorMode.Store(1)
	} else {
		colorMode.Store(2)
	}
}

func (s *sink) colored() bool {
	switch colorMode.Load() {
	case 1:
		return true
	case 2:
		return false
	default:
		return s.tty
	}
}

// emit writes one finished line under the sink lock and flushes the
// destination synchronously. The lock spans a single buffered write, never a
// whole program, so contention is limited to statements racing for the same
// destination.
func (s *sink) emit(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.w.Write(line)
	switch w := s.w.(type) {
	case interface{ Flush() error }:
		_ = w.Flush()
	case interface{ Sync() error }:
		_ = w.Sync()
	}
}
