package main

import "fmt"

// GateType identifies a kind of quantum gate.
type GateType string

const (
	GateH       GateType = "H"
	GateX       GateType = "X"
	GateY       GateType = "Y"
	GateZ       GateType = "Z"
	GateS       GateType = "S"
	GateT       GateType = "T"
	GateRX      GateType = "RX"
	GateRY      GateType = "RY"
	GateRZ      GateType = "RZ"
	GateCX      GateType = "CX"
	GateCZ      GateType = "CZ"
	GateSWAP    GateType = "SWAP"
	GateCCX     GateType = "CCX"
	GateMeasure GateType = "M"
)

// gateArity maps each gate kind to the number of qubits it acts on.
// Arity is a property of the kind alone, never of a particular gate instance.
var gateArity = map[GateType]int{
	GateH:       1,
	GateX:       1,
	GateY:       1,
	GateZ:       1,
	GateS:       1,
	GateT:       1,
	GateRX:      1,
	GateRY:      1,
	GateRZ:      1,
	GateCX:      2,
	GateCZ:      2,
	GateSWAP:    2,
	GateCCX:     3,
	GateMeasure: 1,
}

// gateInfo carries display metadata for a gate kind.
type gateInfo struct {
	name   string
	symbol string
}

// gateCatalog holds human-readable names and legend glyphs per kind.
var gateCatalog = map[GateType]gateInfo{
	GateH:       {name: "Hadamard", symbol: "H"},
	GateX:       {name: "Pauli-X (NOT)", symbol: "X"},
	GateY:       {name: "Pauli-Y", symbol: "Y"},
	GateZ:       {name: "Pauli-Z", symbol: "Z"},
	GateS:       {name: "Phase (S)", symbol: "S"},
	GateT:       {name: "T Gate", symbol: "T"},
	GateRX:      {name: "Rotate X", symbol: "RX"},
	GateRY:      {name: "Rotate Y", symbol: "RY"},
	GateRZ:      {name: "Rotate Z", symbol: "RZ"},
	GateCX:      {name: "CNOT", symbol: "●─⊕"},
	GateCZ:      {name: "Controlled-Z", symbol: "●─●"},
	GateSWAP:    {name: "SWAP", symbol: "×─×"},
	GateCCX:     {name: "Toffoli (CCX)", symbol: "●─●─⊕"},
	GateMeasure: {name: "Measure", symbol: "M"},
}

// Gate represents a single quantum gate operation: a kind, the ordered
// qubits it acts on, and optional named numeric parameters (e.g. a rotation
// angle). Gates are immutable once constructed.
type Gate struct {
	Type   GateType
	Qubits []int
	Params map[string]float64
}

// NewGate constructs a gate, enforcing that the number of qubits matches the
// arity of the kind. The qubit slice and parameter map are copied so the gate
// cannot be mutated through the caller's references.
func NewGate(t GateType, qubits []int, params map[string]float64) (Gate, error) {
	arity, ok := gateArity[t]
	if !ok {
		return Gate{}, fmt.Errorf("unknown gate kind %q", t)
	}
	if len(qubits) != arity {
		return Gate{}, fmt.Errorf("gate %s acts on %d qubit(s), got %d", t, arity, len(qubits))
	}
	g := Gate{Type: t, Qubits: append([]int(nil), qubits...)}
	if len(params) > 0 {
		g.Params = make(map[string]float64, len(params))
		for k, v := range params {
			g.Params[k] = v
		}
	}
	return g, nil
}

// IsSingleQubit reports whether the gate kind acts on exactly one qubit.
// Measurement counts as single-qubit.
func (g Gate) IsSingleQubit() bool { return gateArity[g.Type] == 1 }

// IsTwoQubit reports whether the gate kind acts on exactly two qubits.
func (g Gate) IsTwoQubit() bool { return gateArity[g.Type] == 2 }

// IsThreeQubit reports whether the gate kind acts on exactly three qubits.
func (g Gate) IsThreeQubit() bool { return gateArity[g.Type] == 3 }

// DisplayName returns a short label for the gate suitable for circuit cells.
func (g Gate) DisplayName() string {
	if info, ok := gateCatalog[g.Type]; ok && g.IsSingleQubit() {
		return info.symbol
	}
	return string(g.Type)
}
