package main

import (
	"fmt"
	"strings"
)

// CircuitDefinition owns a qubit count and an ordered, append-only sequence
// of gates. Gate order is program order. A definition may retain the textual
// source it was imported from; that text is opaque to the circuit logic and
// only used for display.
type CircuitDefinition struct {
	Name      string
	NumQubits int
	Gates     []Gate

	source string
}

// NewCircuit creates an empty circuit over the given number of qubits.
func NewCircuit(numQubits int, name string) *CircuitDefinition {
	if name == "" {
		name = "Quantum Circuit"
	}
	return &CircuitDefinition{Name: name, NumQubits: numQubits}
}

// SourceText returns the external source representation this circuit was
// imported from, or "" if it was built directly.
func (c *CircuitDefinition) SourceText() string { return c.source }

func (c *CircuitDefinition) add(t GateType, params map[string]float64, qubits ...int) *CircuitDefinition {
	g, err := NewGate(t, qubits, params)
	if err != nil {
		// Builder methods fix the arity at the call site; an error here is a bug.
		panic(err)
	}
	c.Gates = append(c.Gates, g)
	return c
}

// H appends a Hadamard gate.
func (c *CircuitDefinition) H(qubit int) *CircuitDefinition { return c.add(GateH, nil, qubit) }

// X appends a Pauli-X gate.
func (c *CircuitDefinition) X(qubit int) *CircuitDefinition { return c.add(GateX, nil, qubit) }

// Y appends a Pauli-Y gate.
func (c *CircuitDefinition) Y(qubit int) *CircuitDefinition { return c.add(GateY, nil, qubit) }

// Z appends a Pauli-Z gate.
func (c *CircuitDefinition) Z(qubit int) *CircuitDefinition { return c.add(GateZ, nil, qubit) }

// S appends an S phase gate.
func (c *CircuitDefinition) S(qubit int) *CircuitDefinition { return c.add(GateS, nil, qubit) }

// T appends a T phase gate.
func (c *CircuitDefinition) T(qubit int) *CircuitDefinition { return c.add(GateT, nil, qubit) }

// RX appends an X-axis rotation by angle radians.
func (c *CircuitDefinition) RX(qubit int, angle float64) *CircuitDefinition {
	return c.add(GateRX, map[string]float64{"angle": angle}, qubit)
}

// RY appends a Y-axis rotation by angle radians.
func (c *CircuitDefinition) RY(qubit int, angle float64) *CircuitDefinition {
	return c.add(GateRY, map[string]float64{"angle": angle}, qubit)
}

// RZ appends a Z-axis rotation by angle radians.
func (c *CircuitDefinition) RZ(qubit int, angle float64) *CircuitDefinition {
	return c.add(GateRZ, map[string]float64{"angle": angle}, qubit)
}

// CX appends a CNOT gate.
func (c *CircuitDefinition) CX(control, target int) *CircuitDefinition {
	return c.add(GateCX, nil, control, target)
}

// CNOT is an alias for CX.
func (c *CircuitDefinition) CNOT(control, target int) *CircuitDefinition {
	return c.CX(control, target)
}

// CZ appends a controlled-Z gate.
func (c *CircuitDefinition) CZ(control, target int) *CircuitDefinition {
	return c.add(GateCZ, nil, control, target)
}

// SWAP appends a SWAP gate.
func (c *CircuitDefinition) SWAP(a, b int) *CircuitDefinition {
	return c.add(GateSWAP, nil, a, b)
}

// CCX appends a Toffoli gate.
func (c *CircuitDefinition) CCX(control1, control2, target int) *CircuitDefinition {
	return c.add(GateCCX, nil, control1, control2, target)
}

// Measure appends a measurement on a single qubit.
func (c *CircuitDefinition) Measure(qubit int) *CircuitDefinition {
	return c.add(GateMeasure, nil, qubit)
}

// MeasureAll appends a measurement on every qubit.
func (c *CircuitDefinition) MeasureAll() *CircuitDefinition {
	for q := 0; q < c.NumQubits; q++ {
		c.Measure(q)
	}
	return c
}

// ToQASM generates QASM 2.0 output from the gate list.
func (c *CircuitDefinition) ToQASM() string {
	maxQubit := -1
	maxMeasured := -1
	for _, g := range c.Gates {
		for _, q := range g.Qubits {
			maxQubit = max(maxQubit, q)
		}
		if g.Type == GateMeasure {
			maxMeasured = max(maxMeasured, g.Qubits[0])
		}
	}
	numQubits := max(maxQubit+1, c.NumQubits, 1)

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", numQubits)
	if maxMeasured >= 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", maxMeasured+1)
	}
	sb.WriteString("\n")

	for _, g := range c.Gates {
		switch g.Type {
		case GateMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Qubits[0], g.Qubits[0])
		case GateRX, GateRY, GateRZ:
			fmt.Fprintf(&sb, "%s(%s) q[%d];\n", strings.ToLower(string(g.Type)),
				formatParam(g.Params["angle"]), g.Qubits[0])
		case GateCX, GateCZ, GateSWAP:
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", strings.ToLower(string(g.Type)),
				g.Qubits[0], g.Qubits[1])
		case GateCCX:
			fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", g.Qubits[0], g.Qubits[1], g.Qubits[2])
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(string(g.Type)), g.Qubits[0])
		}
	}

	return sb.String()
}
