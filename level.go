package catlog

// LogLevel is the ordered verbosity scale shared by every category.
// Severity increases toward LevelFatal; LevelNoLog disables output entirely
// and is never admitted by a category check.
type LogLevel int32

const (
	LevelNoLog LogLevel = iota
	LevelFatal
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug

	// LastLogLevel is the inclusive upper bound accepted when a level is
	// set from an untrusted integer (rule strings, SetLevel).
	LastLogLevel = LevelDebug
)

// IsValid reports whether l lies inside [LevelNoLog, LastLogLevel].
func (l LogLevel) IsValid() bool {
	return l >= LevelNoLog && l <= LastLogLevel
}

func (l LogLevel) String() string {
	switch l {
	case LevelNoLog:
		return "NOLOG"
	case LevelFatal:
		return "FATAL"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// tag returns the single-character severity prefix emitted at the start of a
// line. Levels without a defined tag return the empty string.
func (l LogLevel) tag() string {
	switch l {
	case LevelFatal:
		return "F"
	case LevelError:
		return "E"
	case LevelWarn:
		return "W"
	case LevelInfo:
		return "I"
	case LevelDebug:
		return "D"
	default:
		return ""
	}
}
