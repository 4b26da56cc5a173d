package utils

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in       string
		fallback zapcore.Level
		want     zapcore.Level
	}{
		{"debug", zapcore.InfoLevel, zapcore.DebugLevel},
		{"info", zapcore.DebugLevel, zapcore.InfoLevel},
		{"warn", zapcore.InfoLevel, zapcore.WarnLevel},
		{"error", zapcore.InfoLevel, zapcore.ErrorLevel},
		{"", zapcore.InfoLevel, zapcore.InfoLevel},
		{"", zapcore.DebugLevel, zapcore.DebugLevel},
		{"verbose", zapcore.InfoLevel, zapcore.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLogLevel(tc.in, tc.fallback); got != tc.want {
			t.Errorf("parseLogLevel(%q, %v) = %v, want %v", tc.in, tc.fallback, got, tc.want)
		}
	}
}
