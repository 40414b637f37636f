package catlog

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Rule maps a category name pattern to a verbosity level. Pattern is either
// the wildcard "*" or an exact category name.
type Rule struct {
	Pattern string
	Level   LogLevel
}

// showTimeDate controls the timestamp segment of every emitted line.
var showTimeDate atomic.Bool

func init() {
	showTimeDate.Store(true)
}

// SetShowTimestamp toggles the per-line timestamp segment.
func SetShowTimestamp(show bool) {
	showTimeDate.Store(show)
}

// ShowTimestamp reports whether emitted lines carry a timestamp.
func ShowTimestamp() bool {
	return showTimeDate.Load()
}

// SetLogRule parses an operator-supplied rule string and installs the
// result, replacing any previously active rules.
//
// The string is a comma-separated token list. The literal token "notimedate"
// disables timestamps. Every other token has the form <pattern>=<level>,
// where pattern is "*" or a category name and level is an integer in
// [0, LastLogLevel]. Malformed or out-of-range tokens are dropped silently;
// they are configuration noise, not errors.
//
//	catlog.SetLogRule("*=4,net=5,notimedate")
func SetLogRule(rule string) {
	SetRules(parseRules(rule))
}

func parseRules(rule string) []Rule {
	var rules []Rule
	for _, token := range strings.Split(rule, ",") {
		if token == "notimedate" {
			showTimeDate.Store(false)
			continue
		}

		pattern, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil || !LogLevel(n).IsValid() {
			continue
		}
		rules = append(rules, Rule{Pattern: pattern, Level: LogLevel(n)})
	}
	return rules
}
