package logger

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestFormatFields(t *testing.T) {
	got := formatFields(Fields{"steps": 7, "scale": "SRGPD", "ratio": 0.5})
	want := "{ratio=0.50, scale=SRGPD, steps=7}"
	if got != want {
		t.Errorf("formatFields() = %q, want %q", got, want)
	}
	if formatFields(nil) != "" {
		t.Error("formatFields(nil) should be empty")
	}
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("generated", Fields{"steps": 7})
	Warn("slow", nil)
	Debug("detail", Fields{"k": "v"})
	Error("failed", errors.New("boom"), Fields{"request_id": "abc"})

	out := buf.String()
	for _, want := range []string{
		"[INFO] generated {steps=7}",
		"[WARN] slow",
		"[DEBUG] detail {k=v}",
		"[ERROR] failed: boom {request_id=abc}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
