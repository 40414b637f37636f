package catlog

import "testing"

func TestLevelIsValid(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  bool
	}{
		{"NoLog", LevelNoLog, true},
		{"Fatal", LevelFatal, true},
		{"Debug", LevelDebug, true},
		{"LastLogLevel", LastLogLevel, true},
		{"negative", LogLevel(-1), false},
		{"pastLast", LastLogLevel + 1, false},
		{"large", LogLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.IsValid(); got != tt.want {
				t.Errorf("IsValid(%d) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(LevelNoLog < LevelFatal && LevelFatal < LevelError &&
		LevelError < LevelWarn && LevelWarn < LevelInfo && LevelInfo < LevelDebug) {
		t.Fatal("severity order must be NoLog < Fatal < Error < Warn < Info < Debug")
	}
	if LastLogLevel != LevelDebug {
		t.Errorf("LastLogLevel = %v, want LevelDebug", LastLogLevel)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelNoLog, "NOLOG"},
		{LevelFatal, "FATAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelTag(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelFatal, "F"},
		{LevelError, "E"},
		{LevelWarn, "W"},
		{LevelInfo, "I"},
		{LevelDebug, "D"},
		{LevelNoLog, ""},
		{LogLevel(42), ""},
	}

	for _, tt := range tests {
		if got := tt.level.tag(); got != tt.want {
			t.Errorf("LogLevel(%d).tag() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
