package catlog

// One-shot helpers: admission check, build, and emit in a single call.
// The builder API (Category.Message) remains the way to stream multi-token
// statements.

func (c *Category) logArgs(l LogLevel, args ...any) {
	if m := c.message(l, helperCallerDepth); m != nil {
		m.Print(args...)
		_ = m.Close()
	}
}

func (c *Category) logf(l LogLevel, format string, args ...any) {
	if m := c.message(l, helperCallerDepth); m != nil {
		m.Printf(format, args...)
		_ = m.Close()
	}
}

func (c *Category) Debug(args ...any) { c.logArgs(LevelDebug, args...) }
func (c *Category) Info(args ...any)  { c.logArgs(LevelInfo, args...) }
func (c *Category) Warn(args ...any)  { c.logArgs(LevelWarn, args...) }
func (c *Category) Error(args ...any) { c.logArgs(LevelError, args...) }

// Fatal emits at LevelFatal and terminates the process. If fatal logging is
// disabled for the category, the process terminates without emitting; a
// fatal event is never dropped silently.
func (c *Category) Fatal(args ...any) { c.logArgs(LevelFatal, args...) }

func (c *Category) Debugf(format string, args ...any) { c.logf(LevelDebug, format, args...) }
func (c *Category) Infof(format string, args ...any)  { c.logf(LevelInfo, format, args...) }
func (c *Category) Warnf(format string, args ...any)  { c.logf(LevelWarn, format, args...) }
func (c *Category) Errorf(format string, args ...any) { c.logf(LevelError, format, args...) }
func (c *Category) Fatalf(format string, args ...any) { c.logf(LevelFatal, format, args...) }

// Package-level helpers log through the "default" category.

func Debug(args ...any) { Default().logArgs(LevelDebug, args...) }
func Info(args ...any)  { Default().logArgs(LevelInfo, args...) }
func Warn(args ...any)  { Default().logArgs(LevelWarn, args...) }
func Error(args ...any) { Default().logArgs(LevelError, args...) }
func Fatal(args ...any) { Default().logArgs(LevelFatal, args...) }

func Debugf(format string, args ...any) { Default().logf(LevelDebug, format, args...) }
func Infof(format string, args ...any)  { Default().logf(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { Default().logf(LevelWarn, format, args...) }
func Errorf(format string, args ...any) { Default().logf(LevelError, format, args...) }
func Fatalf(format string, args ...any) { Default().logf(LevelFatal, format, args...) }
