package main

import (
	"math"
	"strings"
	"testing"
)

func TestParseCircuitYAML(t *testing.T) {
	src := `name: Bell State
qubits: 2
gates:
  - gate: h
    qubits: [0]
  - gate: cnot
    qubits: [0, 1]
  - gate: rx
    qubits: [0]
    angle: pi/2
  - gate: measure
    qubits: [0, 1]
`
	c, err := ParseCircuitYAML([]byte(src))
	if err != nil {
		t.Fatalf("ParseCircuitYAML error: %v", err)
	}
	if c.Name != "Bell State" || c.NumQubits != 2 {
		t.Errorf("header = %q/%d", c.Name, c.NumQubits)
	}

	wantKinds := []GateType{GateH, GateCX, GateRX, GateMeasure, GateMeasure}
	if len(c.Gates) != len(wantKinds) {
		t.Fatalf("got %d gates, want %d", len(c.Gates), len(wantKinds))
	}
	for i, want := range wantKinds {
		if c.Gates[i].Type != want {
			t.Errorf("gate %d: got %s, want %s", i, c.Gates[i].Type, want)
		}
	}
	if got := c.Gates[2].Params["angle"]; math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("rx angle = %v, want pi/2", got)
	}
	if c.SourceText() != src {
		t.Errorf("source text not retained")
	}
}

func TestParseCircuitYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantSub string
	}{
		{
			"unknown gate",
			"qubits: 2\ngates:\n  - gate: frobnicate\n    qubits: [0]\n",
			"unknown gate",
		},
		{
			"bad angle",
			"qubits: 1\ngates:\n  - gate: rx\n    qubits: [0]\n    angle: banana\n",
			"bad angle",
		},
		{
			"arity mismatch",
			"qubits: 2\ngates:\n  - gate: cx\n    qubits: [0]\n",
			"2 qubit",
		},
		{
			"zero qubits",
			"qubits: 0\ngates: []\n",
			"must be positive",
		},
		{
			"qubit index beyond declared count",
			"qubits: 2\ngates:\n  - gate: h\n    qubits: [5]\n",
			"out of range",
		},
		{
			"negative qubit index",
			"qubits: 2\ngates:\n  - gate: cx\n    qubits: [0, -1]\n",
			"out of range",
		},
		{
			"measure qubit beyond declared count",
			"qubits: 2\ngates:\n  - gate: measure\n    qubits: [0, 2]\n",
			"out of range",
		},
		{
			"not yaml",
			"{{{{",
			"parsing circuit file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCircuitYAML([]byte(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}
