package main

import (
	"fmt"
	"strings"
)

// SquinCode renders the circuit as SQuIN-style kernel pseudocode. Only the
// kinds the notation covers get a line (H, X, CX, CZ, plus a trailing
// measure); other kinds are omitted from the text. That gap is a property of
// the notation, not of the circuit.
func (c *CircuitDefinition) SquinCode() string {
	fn := strings.ToLower(strings.ReplaceAll(c.Name, " ", "_"))
	lines := []string{
		"@squin.kernel",
		fmt.Sprintf("def %s():", fn),
		fmt.Sprintf("    q = squin.qalloc(%d)", c.NumQubits),
	}

	measured := false
	for _, g := range c.Gates {
		switch g.Type {
		case GateH:
			lines = append(lines, fmt.Sprintf("    squin.h(q[%d])", g.Qubits[0]))
		case GateX:
			lines = append(lines, fmt.Sprintf("    squin.x(q[%d])", g.Qubits[0]))
		case GateCX:
			lines = append(lines, fmt.Sprintf("    squin.cx(q[%d], q[%d])", g.Qubits[0], g.Qubits[1]))
		case GateCZ:
			lines = append(lines, fmt.Sprintf("    squin.cz(q[%d], q[%d])", g.Qubits[0], g.Qubits[1]))
		case GateMeasure:
			measured = true
		}
	}
	if measured {
		lines = append(lines, "    return squin.measure(q)")
	}
	return strings.Join(lines, "\n")
}

// DisplayCode returns the text shown in the code panel: the retained source
// representation when the circuit was imported, the generated pseudocode
// otherwise.
func (c *CircuitDefinition) DisplayCode() string {
	if c.source != "" {
		return c.source
	}
	return c.SquinCode()
}
