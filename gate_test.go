package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGateArity(t *testing.T) {
	tests := []struct {
		name    string
		kind    GateType
		qubits  []int
		wantErr bool
	}{
		{"H on one qubit", GateH, []int{0}, false},
		{"H on two qubits", GateH, []int{0, 1}, true},
		{"H on no qubits", GateH, nil, true},
		{"CX on two qubits", GateCX, []int{0, 1}, false},
		{"CX on one qubit", GateCX, []int{0}, true},
		{"CX on three qubits", GateCX, []int{0, 1, 2}, true},
		{"CZ on two qubits", GateCZ, []int{2, 3}, false},
		{"SWAP on two qubits", GateSWAP, []int{1, 0}, false},
		{"CCX on three qubits", GateCCX, []int{0, 1, 2}, false},
		{"CCX on two qubits", GateCCX, []int{0, 1}, true},
		{"measure on one qubit", GateMeasure, []int{4}, false},
		{"unknown kind", GateType("FOO"), []int{0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGate(tt.kind, tt.qubits, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewGate(%s, %v) expected error, got %+v", tt.kind, tt.qubits, g)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewGate(%s, %v) unexpected error: %v", tt.kind, tt.qubits, err)
			}
			if diff := cmp.Diff(tt.qubits, g.Qubits); diff != "" {
				t.Errorf("qubits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewGateCopiesArguments(t *testing.T) {
	qubits := []int{0, 1}
	params := map[string]float64{"angle": 1.5}
	g, err := NewGate(GateCX, qubits, params)
	if err != nil {
		t.Fatalf("NewGate error: %v", err)
	}

	qubits[0] = 99
	params["angle"] = -1

	if g.Qubits[0] != 0 {
		t.Errorf("gate qubits aliased the caller's slice: %v", g.Qubits)
	}
	if g.Params["angle"] != 1.5 {
		t.Errorf("gate params aliased the caller's map: %v", g.Params)
	}
}

func TestGateClassification(t *testing.T) {
	tests := []struct {
		kind   GateType
		qubits []int
		single bool
		double bool
		triple bool
	}{
		{GateH, []int{0}, true, false, false},
		{GateRZ, []int{0}, true, false, false},
		{GateMeasure, []int{0}, true, false, false},
		{GateCX, []int{0, 1}, false, true, false},
		{GateCZ, []int{0, 1}, false, true, false},
		{GateSWAP, []int{0, 1}, false, true, false},
		{GateCCX, []int{0, 1, 2}, false, false, true},
	}

	for _, tt := range tests {
		g, err := NewGate(tt.kind, tt.qubits, nil)
		if err != nil {
			t.Fatalf("NewGate(%s) error: %v", tt.kind, err)
		}
		if g.IsSingleQubit() != tt.single || g.IsTwoQubit() != tt.double || g.IsThreeQubit() != tt.triple {
			t.Errorf("%s: classification = (%v, %v, %v), want (%v, %v, %v)",
				tt.kind, g.IsSingleQubit(), g.IsTwoQubit(), g.IsThreeQubit(),
				tt.single, tt.double, tt.triple)
		}
	}
}

func TestBuilderProducesProgramOrder(t *testing.T) {
	c := NewCircuit(3, "").H(0).CX(0, 1).CZ(1, 2).RX(2, 1.25).Measure(2)

	wantKinds := []GateType{GateH, GateCX, GateCZ, GateRX, GateMeasure}
	if len(c.Gates) != len(wantKinds) {
		t.Fatalf("expected %d gates, got %d", len(wantKinds), len(c.Gates))
	}
	for i, want := range wantKinds {
		if c.Gates[i].Type != want {
			t.Errorf("gate %d: got %s, want %s", i, c.Gates[i].Type, want)
		}
	}
	if got := c.Gates[3].Params["angle"]; got != 1.25 {
		t.Errorf("RX angle = %v, want 1.25", got)
	}
}

func TestMeasureAll(t *testing.T) {
	c := NewCircuit(3, "").H(0).MeasureAll()
	measured := 0
	for _, g := range c.Gates {
		if g.Type == GateMeasure {
			measured++
		}
	}
	if measured != 3 {
		t.Errorf("MeasureAll on 3 qubits produced %d measurements", measured)
	}
}

func TestDefaultCircuitName(t *testing.T) {
	if got := NewCircuit(2, "").Name; got != "Quantum Circuit" {
		t.Errorf("default name = %q", got)
	}
	if got := NewCircuit(2, "Bell").Name; got != "Bell" {
		t.Errorf("explicit name = %q", got)
	}
}
