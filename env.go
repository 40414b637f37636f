package catlog

import "os"

// EnvRuleVar is the environment variable consulted by SetLogRuleFromEnv.
const EnvRuleVar = "CATLOG_RULE"

// SetLogRuleFromEnv installs the rule string found in CATLOG_RULE. An unset
// or empty variable leaves the active rules untouched. Call it once at
// startup, after the process environment is final:
//
//	CATLOG_RULE="*=3,net=5" ./server
func SetLogRuleFromEnv() {
	if rule := os.Getenv(EnvRuleVar); rule != "" {
		SetLogRule(rule)
	}
}
