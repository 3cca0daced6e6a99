package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level    string
		expected logrus.Level
	}{
		{"", logrus.InfoLevel},
		{DebugLevel, logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{ErrorLevel, logrus.ErrorLevel},
	}
	for _, c := range cases {
		l, err := New(c.level, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("New(%q) failed: %v", c.level, err)
		}
		if l.GetLevel() != c.expected {
			t.Errorf("Expected level %v for %q, got %v", c.expected, c.level, l.GetLevel())
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", nil); err == nil {
		t.Errorf("Expected an error for an unknown level")
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(InfoLevel, &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	WithRun(l, "abc").Info("started")
	out := buf.String()
	if !strings.Contains(out, "run=abc") || !strings.Contains(out, "started") {
		t.Errorf("Expected run field and message, got %q", out)
	}
}
