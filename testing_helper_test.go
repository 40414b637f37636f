package catlog

import (
	"os"
	"testing"
)

// resetLogState restores the package-wide logging state before and after a
// test: no rules, timestamps on, colors off, stderr destination, default
// fatal behavior.
func resetLogState(t *testing.T) {
	t.Helper()

	restore := func() {
		SetRules(nil)
		SetShowTimestamp(true)
		colorMode.Store(0)
		SetLogStream(os.Stderr)
		SetFatalHandler(nil)
	}
	restore()
	t.Cleanup(restore)
}
