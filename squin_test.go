package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSquinCodeBell(t *testing.T) {
	c := NewCircuit(2, "Bell State").H(0).CX(0, 1).MeasureAll()

	want := strings.Join([]string{
		"@squin.kernel",
		"def bell_state():",
		"    q = squin.qalloc(2)",
		"    squin.h(q[0])",
		"    squin.cx(q[0], q[1])",
		"    return squin.measure(q)",
	}, "\n")

	if diff := cmp.Diff(want, c.SquinCode()); diff != "" {
		t.Errorf("SquinCode mismatch (-want +got):\n%s", diff)
	}
}

func TestSquinCodeNoMeasurement(t *testing.T) {
	code := NewCircuit(2, "Plain").H(0).CZ(0, 1).SquinCode()
	if strings.Contains(code, "measure") {
		t.Errorf("unmeasured circuit emitted a measure line:\n%s", code)
	}
	if !strings.Contains(code, "squin.cz(q[0], q[1])") {
		t.Errorf("missing cz line:\n%s", code)
	}
}

func TestSquinCodeOmitsUncoveredKinds(t *testing.T) {
	// Kinds outside the notation's vocabulary produce no line at all.
	c := NewCircuit(3, "Mixed").H(0).T(1).RZ(2, 0.5).SWAP(0, 1).X(2)
	code := c.SquinCode()

	for _, banned := range []string{"t(", "rz", "swap", "T(", "RZ", "SWAP"} {
		if strings.Contains(code, banned) {
			t.Errorf("code mentions uncovered kind %q:\n%s", banned, code)
		}
	}
	if !strings.Contains(code, "squin.h(q[0])") || !strings.Contains(code, "squin.x(q[2])") {
		t.Errorf("covered kinds missing:\n%s", code)
	}
}

func TestDisplayCodeFallsBackToSquin(t *testing.T) {
	c := NewCircuit(1, "Tiny").H(0)
	if c.DisplayCode() != c.SquinCode() {
		t.Errorf("DisplayCode should generate pseudocode when no source is retained")
	}
}
