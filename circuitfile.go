package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// circuitFile is the on-disk YAML schema for user-defined circuits.
//
//	name: Bell State
//	qubits: 2
//	gates:
//	  - gate: h
//	    qubits: [0]
//	  - gate: cx
//	    qubits: [0, 1]
//	  - gate: rx
//	    qubits: [0]
//	    angle: pi/2
//	  - gate: measure
//	    qubits: [0, 1]
type circuitFile struct {
	Name   string            `yaml:"name"`
	Qubits int               `yaml:"qubits"`
	Gates  []circuitFileGate `yaml:"gates"`
}

type circuitFileGate struct {
	Gate   string `yaml:"gate"`
	Qubits []int  `yaml:"qubits"`
	Angle  string `yaml:"angle"`
}

// yamlKinds maps the lowercase gate names accepted in circuit files to the
// internal enumeration.
var yamlKinds = map[string]GateType{
	"h":       GateH,
	"x":       GateX,
	"y":       GateY,
	"z":       GateZ,
	"s":       GateS,
	"t":       GateT,
	"rx":      GateRX,
	"ry":      GateRY,
	"rz":      GateRZ,
	"cx":      GateCX,
	"cnot":    GateCX,
	"cz":      GateCZ,
	"swap":    GateSWAP,
	"ccx":     GateCCX,
	"toffoli": GateCCX,
	"measure": GateMeasure,
	"m":       GateMeasure,
}

// ParseCircuitYAML builds a circuit from YAML source. Unknown gate names and
// arity mismatches are rejected; unlike the best-effort external import, a
// hand-written circuit file is authoritative and silent drops would hide
// typos.
func ParseCircuitYAML(src []byte) (*CircuitDefinition, error) {
	var cf circuitFile
	if err := yaml.Unmarshal(src, &cf); err != nil {
		return nil, fmt.Errorf("parsing circuit file: %w", err)
	}
	if cf.Qubits <= 0 {
		return nil, fmt.Errorf("circuit file: qubits must be positive, got %d", cf.Qubits)
	}

	circuit := NewCircuit(cf.Qubits, cf.Name)
	circuit.source = string(src)

	for i, entry := range cf.Gates {
		kind, ok := yamlKinds[entry.Gate]
		if !ok {
			return nil, fmt.Errorf("circuit file: gate %d: unknown gate %q", i, entry.Gate)
		}

		for _, q := range entry.Qubits {
			if q < 0 || q >= cf.Qubits {
				return nil, fmt.Errorf("circuit file: gate %d: qubit %d out of range [0,%d)", i, q, cf.Qubits)
			}
		}

		var params map[string]float64
		if entry.Angle != "" {
			angle, ok := parseParamExpr(entry.Angle)
			if !ok {
				return nil, fmt.Errorf("circuit file: gate %d: bad angle %q", i, entry.Angle)
			}
			params = map[string]float64{"angle": angle}
		}

		// Measurements may list several qubits as a convenience.
		if kind == GateMeasure {
			for _, q := range entry.Qubits {
				circuit.Measure(q)
			}
			continue
		}

		g, err := NewGate(kind, entry.Qubits, params)
		if err != nil {
			return nil, fmt.Errorf("circuit file: gate %d: %w", i, err)
		}
		circuit.Gates = append(circuit.Gates, g)
	}

	return circuit, nil
}

// LoadCircuitFile reads and parses a YAML circuit file.
func LoadCircuitFile(path string) (*CircuitDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseCircuitYAML(data)
}
