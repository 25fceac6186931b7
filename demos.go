package main

import (
	"fmt"
	"strings"
)

// demo is a built-in example circuit.
type demo struct {
	key   string
	desc  string
	build func() *CircuitDefinition
}

var demos = []demo{
	{
		key:  "bell",
		desc: "2-qubit Bell state: |00> + |11>",
		build: func() *CircuitDefinition {
			return NewCircuit(2, "Bell State").H(0).CX(0, 1).MeasureAll()
		},
	},
	{
		key:  "ghz",
		desc: "3-qubit GHZ state: |000> + |111>",
		build: func() *CircuitDefinition {
			return NewCircuit(3, "GHZ State").H(0).CX(0, 1).CX(1, 2).MeasureAll()
		},
	},
	{
		key:  "star4",
		desc: "4-qubit star entanglement with q0 as hub",
		build: func() *CircuitDefinition {
			return NewCircuit(4, "4-Qubit Star").H(0).CX(0, 1).CX(0, 2).CX(0, 3).MeasureAll()
		},
	},
	{
		key:  "qft",
		desc: "QFT-style circuit with CZ gates",
		build: func() *CircuitDefinition {
			return NewCircuit(3, "QFT Style").
				H(0).CZ(0, 1).H(1).CZ(0, 2).CZ(1, 2).H(2)
		},
	},
	{
		key:  "custom",
		desc: "5-qubit circuit with entangling layers",
		build: func() *CircuitDefinition {
			c := NewCircuit(5, "Custom Circuit")
			for i := 0; i < 5; i++ {
				c.H(i)
			}
			c.CX(0, 1).CX(2, 3).CX(1, 2).CX(3, 4)
			c.CZ(0, 2).CZ(1, 3)
			return c.MeasureAll()
		},
	},
}

// demoCircuit builds the named demo, or errors with the list of valid names.
func demoCircuit(key string) (*CircuitDefinition, error) {
	for _, d := range demos {
		if d.key == key {
			return d.build(), nil
		}
	}
	keys := make([]string, len(demos))
	for i, d := range demos {
		keys[i] = d.key
	}
	return nil, fmt.Errorf("unknown demo %q (have: %s)", key, strings.Join(keys, ", "))
}
