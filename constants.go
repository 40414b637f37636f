package catlog

const (
	// TimestampFormat is the layout of the per-line timestamp segment:
	// local date and time with microsecond precision.
	TimestampFormat = "2006-01-02 15:04:05.000000"

	// DefaultLineSize is the initial capacity of pooled line buffers.
	// 256 bytes covers typical log lines without reallocation.
	DefaultLineSize = 256

	// MaxPooledLineSize caps the capacity of buffers returned to the pool
	// so occasional large statements do not pin memory.
	MaxPooledLineSize = 4 * 1024
)

// Caller depths count stack frames from runtime.Caller up to the user's log
// statement, matching runtime.Caller's skip convention.
const (
	// messageCallerDepth reaches the caller of Category.Message:
	// AppendCaller -> newMessage -> message -> Message -> caller.
	messageCallerDepth = 4

	// helperCallerDepth adds the one-shot helper hop:
	// AppendCaller -> newMessage -> message -> logArgs/logf -> Debug -> caller.
	helperCallerDepth = 5
)
