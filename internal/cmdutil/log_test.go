package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWarnfQuiet(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "x %d", 1)
	if b.Len() != 0 {
		t.Fatalf("quiet must suppress, got %q", b.String())
	}
	Warnf(&b, false, "x %d", 1)
	if b.String() != "WARN: x 1\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var b bytes.Buffer
	log := NewLogger(&b, false)
	log.WithField("path", "a.fa").Info("input")
	if !strings.Contains(b.String(), "level=info msg=input path=a.fa") {
		t.Fatalf("info not logged: %q", b.String())
	}

	b.Reset()
	log = NewLogger(&b, true)
	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(b.String(), "hidden") || !strings.Contains(b.String(), "level=warning msg=shown") {
		t.Fatalf("quiet logger output: %q", b.String())
	}
}

func TestDiscardDropsWarnings(t *testing.T) {
	log := Discard()
	if log.IsLevelEnabled(logrus.WarnLevel) {
		t.Fatal("Discard must not enable warnings")
	}
}
