//nolint:testpackage // using package name 'cmdio' to match the package under test
package cmdio

import (
	"bytes"
	"strings"
	"testing"
)

// TestDefaultsAndOverrides verifies stream configuration chaining.
func TestDefaultsAndOverrides(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("input")

	m := New().WithIn(in).WithOut(&out).WithErr(&errOut)

	if m.In() != in {
		t.Error("Expected configured input reader")
	}
	if m.Out() != &out {
		t.Error("Expected configured output writer")
	}
	if m.Err() != &errOut {
		t.Error("Expected configured error writer")
	}
}

// TestIsTTYOnBuffer verifies non-file sinks never report a terminal.
func TestIsTTYOnBuffer(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{})
	if m.IsTTY() {
		t.Error("Expected IsTTY=false for a buffer")
	}
}

// TestColorForced verifies the explicit overrides beat environment detection.
func TestColorForced(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	m := New().WithOut(&bytes.Buffer{})

	if !m.ForceColor().ColorEnabled() {
		t.Error("Expected ForceColor to enable color")
	}
	if m.NoColor().ColorEnabled() {
		t.Error("Expected NoColor to disable color")
	}
}

// TestColorEnvironmentConventions verifies NO_COLOR and FORCE_COLOR are
// honored in auto mode.
func TestColorEnvironmentConventions(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{}).ColorAuto()

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("NO_COLOR", "1")
	if m.ColorEnabled() {
		t.Error("Expected NO_COLOR to disable color")
	}

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	if !m.ColorEnabled() {
		t.Error("Expected FORCE_COLOR to enable color")
	}
}

// TestColorAutoOnBuffer verifies auto mode stays off for non-terminal sinks.
func TestColorAutoOnBuffer(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	m := New().WithOut(&bytes.Buffer{}).ColorAuto()
	if m.ColorEnabled() {
		t.Error("Expected color off for a buffer sink")
	}
}

// TestModeSwitching verifies the last color mode call wins.
func TestModeSwitching(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")

	m := New().WithOut(&bytes.Buffer{}).NoColor().ForceColor()
	if !m.ColorEnabled() {
		t.Error("Expected ForceColor to supersede NoColor")
	}
}
