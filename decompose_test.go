package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// countKinds tallies a gate list by how the decomposition treats each kind.
func countKinds(gates []Gate) (passthrough, cx, swap int) {
	for _, g := range gates {
		switch g.Type {
		case GateCX:
			cx++
		case GateSWAP:
			swap++
		default:
			passthrough++
		}
	}
	return
}

func TestNativeDecompositionCX(t *testing.T) {
	c := NewCircuit(2, "").CX(0, 1)
	got := c.NativeDecomposition()

	want := []Gate{
		{Type: GateH, Qubits: []int{1}},
		{Type: GateCZ, Qubits: []int{0, 1}},
		{Type: GateH, Qubits: []int{1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CX decomposition mismatch (-want +got):\n%s", diff)
	}
}

func TestNativeDecompositionSWAP(t *testing.T) {
	c := NewCircuit(2, "").SWAP(0, 1)
	got := c.NativeDecomposition()

	// Three repetitions of the CNOT expansion, always flipping the second
	// operand. The fixed-target form is the compilation convention here.
	var want []Gate
	for i := 0; i < 3; i++ {
		want = append(want,
			Gate{Type: GateH, Qubits: []int{1}},
			Gate{Type: GateCZ, Qubits: []int{0, 1}},
			Gate{Type: GateH, Qubits: []int{1}},
		)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SWAP decomposition mismatch (-want +got):\n%s", diff)
	}
}

func TestNativeDecompositionCountLaw(t *testing.T) {
	tests := []struct {
		name  string
		build func() *CircuitDefinition
	}{
		{"bell", func() *CircuitDefinition {
			return NewCircuit(2, "").H(0).CX(0, 1).MeasureAll()
		}},
		{"ghz", func() *CircuitDefinition {
			return NewCircuit(3, "").H(0).CX(0, 1).CX(1, 2).MeasureAll()
		}},
		{"swap heavy", func() *CircuitDefinition {
			return NewCircuit(3, "").SWAP(0, 1).SWAP(1, 2).CX(0, 2).H(1)
		}},
		{"no entanglers", func() *CircuitDefinition {
			return NewCircuit(2, "").H(0).X(1).RZ(0, 0.5)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build()
			k, cx, swap := countKinds(c.Gates)
			got := c.NativeDecomposition()

			// Every CX becomes 3 gates, every SWAP 9, everything else 1.
			want := k + 3*cx + 9*swap
			if len(got) != want {
				t.Errorf("decomposed to %d gates, want %d (k=%d cx=%d swap=%d)",
					len(got), want, k, cx, swap)
			}
			for i, g := range got {
				if g.Type == GateCX || g.Type == GateSWAP {
					t.Errorf("gate %d: non-native kind %s survived decomposition", i, g.Type)
				}
			}
		})
	}
}

func TestNativeDecompositionDoesNotMutate(t *testing.T) {
	c := NewCircuit(2, "").H(0).CX(0, 1)
	before := len(c.Gates)
	c.NativeDecomposition()
	if len(c.Gates) != before {
		t.Errorf("decomposition mutated the circuit: %d gates, had %d", len(c.Gates), before)
	}
	if c.Gates[1].Type != GateCX {
		t.Errorf("original CX gate was rewritten to %s", c.Gates[1].Type)
	}
}

func TestCZLayersChainSerializes(t *testing.T) {
	// Overlapping chain: each CZ shares a qubit with the previous one, so
	// every gate lands in its own layer.
	c := NewCircuit(4, "").CZ(0, 1).CZ(1, 2).CZ(2, 3)
	layers := c.CZLayers()

	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}
	for i, layer := range layers {
		if len(layer) != 1 {
			t.Errorf("layer %d: expected 1 gate, got %d", i, len(layer))
		}
	}
}

func TestCZLayersDisjointParallelize(t *testing.T) {
	c := NewCircuit(4, "").CZ(0, 1).CZ(2, 3)
	layers := c.CZLayers()

	if len(layers) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(layers))
	}
	if len(layers[0]) != 2 {
		t.Errorf("expected 2 gates in the layer, got %d", len(layers[0]))
	}
}

func TestCZLayersPartition(t *testing.T) {
	tests := []struct {
		name  string
		build func() *CircuitDefinition
	}{
		{"ghz", func() *CircuitDefinition {
			return NewCircuit(3, "").H(0).CX(0, 1).CX(1, 2).MeasureAll()
		}},
		{"star", func() *CircuitDefinition {
			return NewCircuit(4, "").H(0).CX(0, 1).CX(0, 2).CX(0, 3)
		}},
		{"mixed", func() *CircuitDefinition {
			return NewCircuit(5, "").CZ(0, 1).CZ(2, 3).CZ(1, 2).SWAP(3, 4).CX(0, 4)
		}},
		{"no cz", func() *CircuitDefinition {
			return NewCircuit(2, "").H(0).X(1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build()

			wantCZ := 0
			for _, g := range c.NativeDecomposition() {
				if g.Type == GateCZ {
					wantCZ++
				}
			}

			layers := c.CZLayers()
			gotCZ := 0
			for li, layer := range layers {
				if len(layer) == 0 {
					t.Errorf("layer %d is empty", li)
				}
				used := make(map[int]bool)
				for _, g := range layer {
					if g.Type != GateCZ {
						t.Errorf("layer %d holds a %s gate", li, g.Type)
					}
					for _, q := range g.Qubits {
						if used[q] {
							t.Errorf("layer %d reuses qubit %d", li, q)
						}
						used[q] = true
					}
					gotCZ++
				}
			}

			// Cover and partition: every CZ appears in exactly one layer.
			if gotCZ != wantCZ {
				t.Errorf("layers hold %d CZ gates, decomposition has %d", gotCZ, wantCZ)
			}
		})
	}
}

func TestCZLayersDeterministic(t *testing.T) {
	c := NewCircuit(5, "").CZ(0, 1).CZ(2, 3).CZ(1, 2).CZ(0, 4)
	first := c.CZLayers()
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, c.CZLayers()); diff != "" {
			t.Fatalf("run %d differs (-first +now):\n%s", i, diff)
		}
	}
}
