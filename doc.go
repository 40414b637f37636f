// Package catlog provides category-based leveled logging with runtime
// verbosity control and non-interleaved output.
//
// Independently compiled components declare named log categories; an
// operator enables or disables verbosity per category through a single rule
// string; and concurrently produced statements are serialized to one shared
// destination without interleaving below the line level.
//
// # Quick Start
//
//	package main
//
//	import "github.com/cybergodev/catlog"
//
//	var netLog = catlog.NewCategory("net", catlog.LevelWarn)
//
//	func main() {
//	    // Raise "net" to debug, everything else to info.
//	    catlog.SetLogRule("*=4,net=5")
//
//	    netLog.Debugf("dialing %s", "10.0.0.1:443")
//	    catlog.Info("started")
//	}
//
// # Categories and rules
//
// A Category owns a current and a default verbosity level. The rule string
// installed by SetLogRule is a comma-separated list of <pattern>=<level>
// tokens, where pattern is "*" or an exact category name and level is an
// integer ordinal (0 disables, 5 is debug). Later tokens override earlier
// ones for the same category, and malformed tokens are dropped silently.
// Rules apply to categories registered later as well; registration and rule
// changes are serialized by one process-wide registry.
//
// The literal token "notimedate" inside a rule string disables the per-line
// timestamp.
//
// # Output
//
// Every emitted line has the shape
//
//	<tag><timestamp> <file>:<line>] <message>
//
// where tag is a single severity character (F, E, W, I, D). The destination
// defaults to standard error and can be swapped at runtime with
// SetLogStream; statements are buffered per MessageBuilder and written in
// one synchronized transaction, so a swap never splits a line across
// destinations. Severity tags are colored when the destination is a
// terminal.
//
// # Fatal statements
//
// A Fatal statement is never dropped: if fatal logging is enabled it is
// emitted and the process terminates; if it is disabled the process
// terminates immediately. SetFatalHandler overrides the termination action
// for tests.
package catlog
