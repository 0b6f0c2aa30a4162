package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := New(tt.in, &bytes.Buffer{}).GetLevel(); got != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)
	logger.WithField("topic", "javascript").Info("topic loaded")

	out := buf.String()
	if !strings.Contains(out, "topic=javascript") || !strings.Contains(out, `msg="topic loaded"`) {
		t.Errorf("unexpected log line: %q", out)
	}
}
