package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "S", "--scale", "SRG", "--direction", "both", "--short-loop")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	expected := "S \nR \nG \nS'\n---------------------\nS'\nG \nR \nS \n"
	if out != expected {
		t.Errorf("generate output = %q, want %q", out, expected)
	}
}

func TestGenerateCommandRejectsBadNote(t *testing.T) {
	if _, err := execute(t, "generate", "SX", "--scale", "SRG", "--short-loop=false"); err == nil {
		t.Error("expected an error for an unknown note letter")
	}
}

func TestMIDICommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mid")
	out, err := execute(t, "midi", "SG", "--scale", "SRGPD", "--direction", "up", "--output", path)
	if err != nil {
		t.Fatalf("midi error = %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("midi output = %q, want the file path", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:4]) != "MThd" {
		t.Errorf("header = %q, want MThd", data[:4])
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets error = %v", err)
	}
	if !strings.Contains(out, "bhupali") {
		t.Errorf("presets output missing bhupali:\n%s", out)
	}
}
