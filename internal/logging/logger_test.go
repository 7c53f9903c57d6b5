package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("DOIT_DEBUG", "")
	if DebugEnabled() {
		t.Errorf("DebugEnabled should be false when DOIT_DEBUG is unset")
	}

	t.Setenv("DOIT_DEBUG", "1")
	if !DebugEnabled() {
		t.Errorf("DebugEnabled should be true when DOIT_DEBUG is set")
	}
}

func TestInit(t *testing.T) {
	if err := Init(true); err != nil {
		t.Fatalf("Init(development) failed: %v", err)
	}
	if err := Init(false); err != nil {
		t.Fatalf("Init(production) failed: %v", err)
	}

	// Logging through the package helpers must not panic after Init.
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message", nil)
	Sync()
}
