package catlog

import (
	"reflect"
	"testing"
)

func TestParseRuleString(t *testing.T) {
	resetLogState(t)

	SetLogRule("notimedate,*=2,bad=token,catX=99")

	if ShowTimestamp() {
		t.Error("notimedate token should disable timestamps")
	}

	got := parseRules("*=2,bad=token,catX=99")
	want := []Rule{{Pattern: "*", Level: LevelError}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseRules() = %v, want %v (malformed and out-of-range tokens dropped)", got, want)
	}
}

func TestParseRulesMalformedTokens(t *testing.T) {
	tests := []struct {
		name string
		rule string
		want int
	}{
		{"empty", "", 0},
		{"noEquals", "justaname", 0},
		{"emptyValue", "cat=", 0},
		{"nonInteger", "cat=debug", 0},
		{"doubleEquals", "cat=1=2", 0},
		{"negative", "cat=-1", 0},
		{"tooLarge", "cat=6", 0},
		{"boundary", "cat=5", 1},
		{"zero", "cat=0", 1},
		{"mixed", "a=1,junk,b=2", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRules(tt.rule); len(got) != tt.want {
				t.Errorf("parseRules(%q) = %v, want %d rules", tt.rule, got, tt.want)
			}
		})
	}
}

func TestWildcardRuleAppliesToAll(t *testing.T) {
	resetLogState(t)

	a := NewCategory("wild-a", LevelInfo)
	defer a.Close()
	b := NewCategory("wild-b", LevelError)
	defer b.Close()

	SetRules([]Rule{{Pattern: "*", Level: LevelDebug}})
	if a.Level() != LevelDebug || b.Level() != LevelDebug {
		t.Errorf("wildcard rule: levels = %v/%v, want LevelDebug for both", a.Level(), b.Level())
	}

	// Replacing with an empty list is reset-then-apply-nothing.
	SetRules(nil)
	if a.Level() != LevelInfo {
		t.Errorf("after clearing rules: wild-a = %v, want its default LevelInfo", a.Level())
	}
	if b.Level() != LevelError {
		t.Errorf("after clearing rules: wild-b = %v, want its default LevelError", b.Level())
	}
}

func TestRuleOrderLastMatchWins(t *testing.T) {
	resetLogState(t)

	x := NewCategory("catX", LevelInfo)
	defer x.Close()
	y := NewCategory("catY", LevelInfo)
	defer y.Close()

	SetRules([]Rule{
		{Pattern: "*", Level: LevelDebug},
		{Pattern: "catX", Level: LevelError},
	})

	if got := x.Level(); got != LevelError {
		t.Errorf("catX = %v, want LevelError (exact rule listed last wins)", got)
	}
	if got := y.Level(); got != LevelDebug {
		t.Errorf("catY = %v, want LevelDebug (wildcard only)", got)
	}

	// Reverse order: the wildcard listed last overrides the exact match.
	SetRules([]Rule{
		{Pattern: "catX", Level: LevelError},
		{Pattern: "*", Level: LevelDebug},
	})
	if got := x.Level(); got != LevelDebug {
		t.Errorf("catX = %v, want LevelDebug (wildcard listed last wins)", got)
	}
}

func TestSetRulesReplacesWholesale(t *testing.T) {
	resetLogState(t)

	cat := NewCategory("replace", LevelInfo)
	defer cat.Close()

	SetLogRule("replace=1")
	if got := cat.Level(); got != LevelFatal {
		t.Fatalf("level = %v, want LevelFatal", got)
	}

	// A second call must not accumulate with the first.
	SetLogRule("other=2")
	if got := cat.Level(); got != LevelInfo {
		t.Errorf("level = %v, want default LevelInfo (previous rule replaced)", got)
	}
}

func TestSetLogRuleFromEnv(t *testing.T) {
	resetLogState(t)

	cat := NewCategory("envcat", LevelInfo)
	defer cat.Close()

	t.Setenv(EnvRuleVar, "envcat=2")
	SetLogRuleFromEnv()
	if got := cat.Level(); got != LevelError {
		t.Errorf("level = %v, want LevelError from %s", got, EnvRuleVar)
	}

	// An empty variable leaves the active rules untouched.
	t.Setenv(EnvRuleVar, "")
	SetLogRuleFromEnv()
	if got := cat.Level(); got != LevelError {
		t.Errorf("level = %v, want LevelError (empty env ignored)", got)
	}
}
