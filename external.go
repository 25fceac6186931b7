package main

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ExternalOp is a single operation from a foreign circuit representation.
// The importer needs nothing more than this read-only view: a gate-kind
// classifier, an optional exponent on the base gate, the operand qubits in
// the external numbering, and any numeric parameters.
type ExternalOp struct {
	Class    string             // gate classifier, e.g. "HPow", "ZPow", "Rx", "CXPow", "Measurement"
	Name     string             // concrete gate name, used only by the fallback sniffing rules
	Exponent float64            // power applied to the base gate; 1 means the plain gate
	Qubits   []int              // operand qubits in the external circuit's own numbering
	Args     map[string]float64 // numeric parameters, e.g. "rads" for rotations
}

// ExternalMoment is one time-step's worth of operations.
type ExternalMoment []ExternalOp

// ExternalCircuit is an ordered sequence of moments plus the source text it
// came from. The source is retained verbatim for display and is opaque here.
type ExternalCircuit struct {
	Name    string
	Source  string
	Moments []ExternalMoment
}

const expTolerance = 1e-9

func expIs(op ExternalOp, class string, exponent float64) bool {
	return op.Class == class && math.Abs(op.Exponent-exponent) < expTolerance
}

// plainGate builds a matcher for a fixed-exponent power gate.
func plainGate(class string, exponent float64, t GateType) func(ExternalOp) ([]Gate, bool) {
	return func(op ExternalOp) ([]Gate, bool) {
		if !expIs(op, class, exponent) {
			return nil, false
		}
		g, err := NewGate(t, op.Qubits, nil)
		if err != nil {
			return nil, false
		}
		return []Gate{g}, true
	}
}

// rotationGate builds a matcher for a parameterized single-axis rotation.
func rotationGate(class string, t GateType) func(ExternalOp) ([]Gate, bool) {
	return func(op ExternalOp) ([]Gate, bool) {
		if op.Class != class {
			return nil, false
		}
		g, err := NewGate(t, op.Qubits, map[string]float64{"angle": op.Args["rads"]})
		if err != nil {
			return nil, false
		}
		return []Gate{g}, true
	}
}

// sniffGate builds a name-based fallback matcher. It fires when the
// uppercased external name contains the substring, or equals one of the
// exact aliases.
func sniffGate(substr string, t GateType, exact ...string) func(ExternalOp) ([]Gate, bool) {
	return func(op ExternalOp) ([]Gate, bool) {
		name := strings.ToUpper(op.Name)
		hit := substr != "" && strings.Contains(name, substr)
		for _, e := range exact {
			hit = hit || name == e
		}
		if !hit {
			return nil, false
		}
		g, err := NewGate(t, op.Qubits, nil)
		if err != nil {
			return nil, false
		}
		return []Gate{g}, true
	}
}

// matchMeasurement expands a measurement over n qubits into n single-qubit
// measure gates.
func matchMeasurement(op ExternalOp) ([]Gate, bool) {
	if op.Class != "Measurement" {
		return nil, false
	}
	gates := make([]Gate, 0, len(op.Qubits))
	for _, q := range op.Qubits {
		gates = append(gates, Gate{Type: GateMeasure, Qubits: []int{q}})
	}
	return gates, true
}

// importRule maps one class of external operation onto internal gates.
type importRule struct {
	desc  string
	match func(op ExternalOp) ([]Gate, bool)
}

// importRules is the prioritized mapping from external operations to the
// internal gate enumeration. Rules are tried top to bottom and the first
// match wins: exact class+exponent matches first, then the name-sniffing
// fallbacks. Operations that match nothing are skipped with a warning.
var importRules = []importRule{
	{"H", plainGate("HPow", 1, GateH)},
	{"X", plainGate("XPow", 1, GateX)},
	{"Y", plainGate("YPow", 1, GateY)},
	{"Z", plainGate("ZPow", 1, GateZ)},
	{"S = Z^0.5", plainGate("ZPow", 0.5, GateS)},
	{"T = Z^0.25", plainGate("ZPow", 0.25, GateT)},
	{"RX", rotationGate("Rx", GateRX)},
	{"RY", rotationGate("Ry", GateRY)},
	{"RZ", rotationGate("Rz", GateRZ)},
	{"CX", plainGate("CXPow", 1, GateCX)},
	{"CZ", plainGate("CZPow", 1, GateCZ)},
	{"SWAP", plainGate("SwapPow", 1, GateSWAP)},
	{"CCX", plainGate("CCXPow", 1, GateCCX)},
	{"measure", matchMeasurement},
	{"name ~ CNOT/CX", sniffGate("CNOT", GateCX, "CX")},
	{"name = CZ", sniffGate("", GateCZ, "CZ")},
	{"name = H", sniffGate("", GateH, "H")},
}

// FromExternal converts an external circuit into a CircuitDefinition by
// walking its moments in time order. External qubit ids are re-indexed to a
// dense 0..N-1 range in ascending order of the external numbering.
// Unrecognized operations are dropped with a warning; the import is
// best-effort by design since it feeds a display, not an executor.
func FromExternal(ec *ExternalCircuit, logger *zap.Logger) *CircuitDefinition {
	if logger == nil {
		logger = zap.NewNop()
	}

	seen := make(map[int]bool)
	for _, moment := range ec.Moments {
		for _, op := range moment {
			for _, q := range op.Qubits {
				seen[q] = true
			}
		}
	}
	ids := make([]int, 0, len(seen))
	for q := range seen {
		ids = append(ids, q)
	}
	sort.Ints(ids)
	index := make(map[int]int, len(ids))
	for i, q := range ids {
		index[q] = i
	}

	circuit := NewCircuit(len(ids), ec.Name)
	circuit.source = ec.Source

	for _, moment := range ec.Moments {
		for _, op := range moment {
			remapped := op
			remapped.Qubits = make([]int, len(op.Qubits))
			for i, q := range op.Qubits {
				remapped.Qubits[i] = index[q]
			}

			matched := false
			for _, rule := range importRules {
				if gates, ok := rule.match(remapped); ok {
					circuit.Gates = append(circuit.Gates, gates...)
					matched = true
					break
				}
			}
			if !matched {
				logger.Warn("skipping unrecognized gate",
					zap.String("class", op.Class),
					zap.String("name", op.Name),
					zap.Ints("qubits", op.Qubits))
			}
		}
	}

	return circuit
}
