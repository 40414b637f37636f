package catlog

import "errors"

// Sentinel errors returned by the rule-file helpers. The logging hot path
// itself never returns errors: malformed rules are dropped, timestamp
// failures are swallowed, and duplicate registration or double-unregister
// are defined no-ops.
var (
	ErrEmptyRulePath = errors.New("rule file path cannot be empty")
	ErrWatcherClosed = errors.New("rule watcher closed")
)
