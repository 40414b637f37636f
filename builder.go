package catlog

import (
	"fmt"
	"sync"
	"time"

	"github.com/cybergodev/catlog/internal"
	"github.com/mgutz/ansi"
)

var linePool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, DefaultLineSize)
		return &buf
	},
}

// Severity tag colors, resolved once and indexed by level.
var levelColors = [...]string{
	LevelNoLog: "",
	LevelFatal: ansi.ColorCode("red+b"),
	LevelError: ansi.ColorCode("red"),
	LevelWarn:  ansi.ColorCode("yellow"),
	LevelInfo:  ansi.ColorCode("green"),
	LevelDebug: ansi.ColorCode("cyan"),
}

var colorReset = ansi.ColorCode("reset")

// MessageBuilder accumulates one log statement and emits it as a single
// terminated line on Close. Content is buffered until then, so concurrent
// statements targeting the same destination never interleave below the line
// level.
//
// A nil MessageBuilder is valid: every method is a no-op on it. Message
// returns nil when admission control rejects the statement, which keeps
// rejected statements free of formatting work.
type MessageBuilder struct {
	s     *sink
	level LogLevel
	buf   *[]byte
	done  bool
}

// Message opens a builder for one statement at the given level, or returns
// nil if the category does not admit the level. Close the returned builder
// on every path; defer is the usual shape:
//
//	if m := cat.Message(catlog.LevelDebug); m != nil {
//		defer m.Close()
//		m.Printf("handled %d packets", n)
//	}
func (c *Category) Message(l LogLevel) *MessageBuilder {
	return c.message(l, messageCallerDepth)
}

func (c *Category) message(l LogLevel, depth int) *MessageBuilder {
	if !c.admit(l) {
		return nil
	}
	return newMessage(l, depth)
}

// newMessage binds the builder to the current sink and writes the line
// prefix: severity tag, optional timestamp, and "file:line] ".
func newMessage(l LogLevel, depth int) *MessageBuilder {
	s := currentSink.Load()
	bufp := linePool.Get().(*[]byte)
	buf := (*bufp)[:0]

	if tag := l.tag(); tag != "" {
		if s.colored() && levelColors[l] != "" {
			buf = append(buf, levelColors[l]...)
			buf = append(buf, tag...)
			buf = append(buf, colorReset...)
		} else {
			buf = append(buf, tag...)
		}
	}
	if showTimeDate.Load() {
		buf = appendTimestamp(buf)
	}
	buf = internal.AppendCaller(buf, depth)
	buf = append(buf, "] "...)

	*bufp = buf
	return &MessageBuilder{s: s, level: l, buf: bufp}
}

// appendTimestamp writes the local wall clock with microsecond precision,
// followed by a space. Formatting must never break logging: any panic out of
// the platform time facilities is swallowed and the segment is omitted.
func appendTimestamp(buf []byte) (out []byte) {
	out = buf
	defer func() {
		if recover() != nil {
			out = buf
		}
	}()
	out = time.Now().AppendFormat(out, TimestampFormat)
	out = append(out, ' ')
	return out
}

// Print appends its operands, formatted as fmt.Sprint does.
func (b *MessageBuilder) Print(args ...any) *MessageBuilder {
	if b == nil || b.done {
		return b
	}
	*b.buf = fmt.Append(*b.buf, args...)
	return b
}

// Printf appends according to a format specifier.
func (b *MessageBuilder) Printf(format string, args ...any) *MessageBuilder {
	if b == nil || b.done {
		return b
	}
	*b.buf = fmt.Appendf(*b.buf, format, args...)
	return b
}

// Println appends its operands, formatted as fmt.Sprintln does, except that
// the terminating newline still comes from Close: operands are always
// separated by spaces, and the statement stays a single line.
func (b *MessageBuilder) Println(args ...any) *MessageBuilder {
	if b == nil || b.done {
		return b
	}
	buf := fmt.Appendln(*b.buf, args...)
	*b.buf = buf[:len(buf)-1]
	return b
}

// Write implements io.Writer so payloads can be streamed into the statement.
// It never fails; writes after Close are discarded.
func (b *MessageBuilder) Write(p []byte) (int, error) {
	if b == nil || b.done {
		return len(p), nil
	}
	*b.buf = append(*b.buf, p...)
	return len(p), nil
}

// Close terminates the line with a newline, emits the whole statement
// atomically against the bound destination, and flushes it synchronously.
// Close is idempotent and nil-safe. A Fatal statement terminates the process
// after the line is flushed.
func (b *MessageBuilder) Close() error {
	if b == nil || b.done {
		return nil
	}
	b.done = true

	buf := append(*b.buf, '\n')
	b.s.emit(buf)

	if cap(buf) <= MaxPooledLineSize {
		*b.buf = buf[:0]
		linePool.Put(b.buf)
	}
	b.buf = nil

	if b.level == LevelFatal {
		fatalExit()
	}
	return nil
}
