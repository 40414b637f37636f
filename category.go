package catlog

import (
	"os"
	"sync/atomic"
)

// Category is a named unit of independently controllable log verbosity.
// Constructing one registers it with the process-wide registry, which may
// immediately override its level if a matching rule is active. The zero
// value is not usable; always go through NewCategory.
//
// Typical usage is one package-level category per subsystem:
//
//	var netLog = catlog.NewCategory("net", catlog.LevelWarn)
type Category struct {
	name         string
	defaultLevel LogLevel
	level        atomic.Int32
}

// NewCategory creates a category with the given name and default level and
// registers it. Names are not required to be unique, but rules match by
// exact name, so duplicates share verbosity control.
func NewCategory(name string, level LogLevel) *Category {
	c := &Category{name: name, defaultLevel: level}
	c.level.Store(int32(level))
	logRegistry.register(c)
	return c
}

// Close unregisters the category. It is idempotent, never fails, and is safe
// to call at any point of process shutdown; the registry outlives every
// category.
func (c *Category) Close() error {
	logRegistry.unregister(c)
	return nil
}

// Name returns the category's registered name.
func (c *Category) Name() string { return c.name }

// Level returns the current effective level.
func (c *Category) Level() LogLevel { return LogLevel(c.level.Load()) }

// DefaultLevel returns the level the category was constructed with.
func (c *Category) DefaultLevel() LogLevel { return c.defaultLevel }

// SetLevel sets the current level. Out-of-range values are ignored, so an
// untrusted integer can be applied as SetLevel(LogLevel(n)) without
// pre-validation.
func (c *Category) SetLevel(l LogLevel) {
	if !l.IsValid() {
		return
	}
	c.level.Store(int32(l))
}

// ResetLevel restores the default level.
func (c *Category) ResetLevel() {
	c.level.Store(int32(c.defaultLevel))
}

// Check is the admission predicate every log statement evaluates before any
// formatting work. LevelNoLog is never admitted, regardless of the current
// level.
func (c *Category) Check(l LogLevel) bool {
	return l != LevelNoLog && int32(l) <= c.level.Load()
}

// admit is Check plus the fatal guarantee: a Fatal statement that admission
// would filter terminates the process instead of disappearing silently.
func (c *Category) admit(l LogLevel) bool {
	ok := c.Check(l)
	if l == LevelFatal && !ok {
		fatalExit()
	}
	return ok
}

// fatalHandler overrides process termination for Fatal statements.
var fatalHandler atomic.Pointer[func()]

// SetFatalHandler replaces the action taken when a Fatal statement completes
// or is filtered out. The default is os.Exit(1); passing nil restores it.
// Intended for tests that need to observe fatal behavior.
func SetFatalHandler(h func()) {
	if h == nil {
		fatalHandler.Store(nil)
		return
	}
	fatalHandler.Store(&h)
}

func fatalExit() {
	if h := fatalHandler.Load(); h != nil {
		(*h)()
		return
	}
	os.Exit(1)
}

var defaultCategory atomic.Pointer[Category]

// Default returns the process-wide "default" category, created at LevelInfo
// on first use. Package-level logging functions go through it.
func Default() *Category {
	if c := defaultCategory.Load(); c != nil {
		return c
	}

	c := NewCategory("default", LevelInfo)
	if defaultCategory.CompareAndSwap(nil, c) {
		return c
	}
	// Lost the initialization race; drop the extra registration.
	_ = c.Close()
	return defaultCategory.Load()
}
