package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{DebugLevel, true, true, true},
		{InfoLevel, false, true, true},
		{" WARN ", false, false, true},
		{ErrorLevel, false, false, false},
		{"verbose", false, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tc.level, &buf)
			l.Debugw("dbg")
			l.Infow("inf")
			l.Warnw("wrn")
			out := buf.String()
			if got := strings.Contains(out, "dbg"); got != tc.wantDebug {
				t.Fatalf("debug logged=%v; want %v (%q)", got, tc.wantDebug, out)
			}
			if got := strings.Contains(out, "inf"); got != tc.wantInfo {
				t.Fatalf("info logged=%v; want %v (%q)", got, tc.wantInfo, out)
			}
			if got := strings.Contains(out, "wrn"); got != tc.wantWarn {
				t.Fatalf("warn logged=%v; want %v (%q)", got, tc.wantWarn, out)
			}
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	New(InfoLevel, &buf).With("request_id", "r-1").Infow("recipe_created", "yeast", 1.5)
	out := buf.String()
	for _, want := range []string{"INFO", "pizza", "recipe_created", `"request_id": "r-1"`, `"yeast": 1.5`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestNop(t *testing.T) {
	Nop().With("k", "v").Errorw("discarded")
}
