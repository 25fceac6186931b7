package main

import (
	"fmt"
	"math"
	"strings"
)

// stage identifies one step of the compilation pipeline animation.
type stage int

const (
	stageTitle stage = iota
	stageLogical
	stageDecompose
	stageSpatial
	stagePulse
	stageHardware
	stageSummary
)

// stageInfo carries the header and narration for a stage.
type stageInfo struct {
	title    string
	subtitle string
	explain  string
}

var stageCatalog = map[stage]stageInfo{
	stageTitle: {
		title:    "Compilation Pipeline",
		subtitle: "from program to photons",
	},
	stageLogical: {
		title:    "Layer 1: Logical Circuit",
		subtitle: "abstract gates & qubits",
		explain: "The circuit as the user defines it. Qubits are abstract " +
			"handles with no physical location yet. Gates are ideal unitaries " +
			"in whatever vocabulary the programmer picked.",
	},
	stageDecompose: {
		title:    "Layer 2: Gate Decomposition",
		subtitle: "CNOT -> H·CZ·H",
		explain: "The hardware's native entangling interaction is a " +
			"Rydberg-blockade controlled phase, compiled as CZ. Every CNOT " +
			"becomes H·CZ·H on the target; SWAP becomes three of those. " +
			"CZ gates on disjoint qubit pairs are then grouped into layers " +
			"that can fire in parallel.",
	},
	stageSpatial: {
		title:    "Layer 3: Spatial Routing",
		subtitle: "atoms on the chip",
		explain: "Logical qubits map to individual atoms held in optical " +
			"tweezers. For each CZ layer the involved atom pairs are moved " +
			"into the entangling zone together; pairs in the same layer " +
			"interact simultaneously.",
	},
	stagePulse: {
		title:    "Layer 4: Pulse Control",
		subtitle: "laser waveforms",
		explain: "The compiler emits time-dependent laser pulses: the Rabi " +
			"frequency Ω(t) follows a smooth Blackman envelope while the " +
			"detuning Δ(t) sweeps through resonance. These waveforms realize " +
			"the gates from the layers above.",
	},
	stageHardware: {
		title:    "Layer 5: Hardware Execution",
		subtitle: "Rydberg atoms",
		explain: "Rubidium-87 atoms store qubits in hyperfine ground states " +
			"|0> and |1>. Entangling pulses lift atoms to the Rydberg state " +
			"|r>, where the blockade forbids neighbors from exciting " +
			"together. Measurement is a fluorescence image: bright atoms " +
			"read |0>, dark ones |1>.",
	},
	stageSummary: {
		title:    "Compilation Complete",
		subtitle: "pipeline summary",
	},
}

// pipelineSummary lists the stages for the title and summary screens.
var pipelineSummary = []struct {
	name string
	desc string
}{
	{"1. Logical Circuit", "abstract gates & qubits"},
	{"2. Gate Decomposition", "CNOT -> H·CZ·H"},
	{"3. Spatial Routing", "atom transport paths"},
	{"4. Pulse Control", "laser waveforms"},
	{"5. Hardware", "Rydberg atoms"},
}

// ──────────────────────────── Pulse waveforms ────────────────────────────

// blackmanWindow samples the Blackman window on n points. This is the pulse
// envelope the analog compiler uses for smooth Rabi drives.
func blackmanWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		w[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	}
	return w
}

// detuningRamp samples a smooth ramp from -1 to 1 on n points.
func detuningRamp(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		return w
	}
	for i := 0; i < n; i++ {
		x := 2*float64(i)/float64(n-1) - 1
		w[i] = math.Tanh(2 * x)
	}
	return w
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline renders samples (any range) as a one-line bar chart, revealing
// only the first upto samples.
func sparkline(samples []float64, upto int) string {
	lo, hi := samples[0], samples[0]
	for _, s := range samples {
		lo, hi = math.Min(lo, s), math.Max(hi, s)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	for i, s := range samples {
		if i >= upto {
			sb.WriteByte(' ')
			continue
		}
		idx := int((s - lo) / span * float64(len(sparkRunes)-1))
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}

// renderPulsePanel draws the Ω/Δ waveforms for one CZ pulse, revealed up to
// the given animation frame.
func renderPulsePanel(width, frame int) string {
	n := max(width-10, 16)
	omega := blackmanWindow(n)
	delta := detuningRamp(n)
	upto := min(frame*2, n)

	var sb strings.Builder
	sb.WriteString(dimStyle.Render("single CZ pulse, Levine-Pichler protocol: π · 2π · π") + "\n\n")
	sb.WriteString(waveOmegaStyle.Render("Ω(t) ") + waveOmegaStyle.Render(sparkline(omega, upto)) + "\n")
	sb.WriteString(dimStyle.Render("     Rabi frequency — Blackman envelope") + "\n\n")
	sb.WriteString(waveDeltaStyle.Render("Δ(t) ") + waveDeltaStyle.Render(sparkline(delta, upto)) + "\n")
	sb.WriteString(dimStyle.Render("     detuning — smooth sweep through resonance") + "\n")
	return sb.String()
}

// ──────────────────────────── Chip / hardware views ────────────────────────────

// layerForFrame maps an animation frame onto a CZ layer index, holding each
// layer for a few frames. Returns -1 before the first layer.
func layerForFrame(frame, framesPerLayer, numLayers int) int {
	if numLayers == 0 || frame < framesPerLayer {
		return -1
	}
	idx := frame/framesPerLayer - 1
	if idx >= numLayers {
		return numLayers - 1
	}
	return idx
}

// renderChipPanel draws the atom array with the active CZ layer's pairs
// pulled into the entangling zone.
func renderChipPanel(c *CircuitDefinition, layers [][]Gate, layerIdx int) string {
	active := make(map[int]bool)
	var pairs []string
	if layerIdx >= 0 && layerIdx < len(layers) {
		for _, g := range layers[layerIdx] {
			active[g.Qubits[0]] = true
			active[g.Qubits[1]] = true
			pairs = append(pairs, fmt.Sprintf("CZ(%d,%d)", g.Qubits[0], g.Qubits[1]))
		}
	}

	var storage, entangling strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		atom := fmt.Sprintf(" ◉ %d ", q)
		if active[q] {
			storage.WriteString(strings.Repeat(" ", len(atom)))
			entangling.WriteString(rydbergStyle.Render(atom))
		} else {
			storage.WriteString(atomStyle.Render(atom))
			entangling.WriteString(strings.Repeat(" ", len(atom)))
		}
	}

	var sb strings.Builder
	sb.WriteString(dimStyle.Render("storage zone") + "\n")
	sb.WriteString("  " + storage.String() + "\n\n")
	sb.WriteString(dimStyle.Render("entangling zone  (blockade radius ~ µm)") + "\n")
	sb.WriteString("  " + entangling.String() + "\n\n")
	switch {
	case len(layers) == 0:
		sb.WriteString(dimStyle.Render("no CZ layers — nothing to route"))
	case layerIdx < 0:
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%d CZ layer(s) scheduled", len(layers))))
	default:
		sb.WriteString(stageTitleStyle.Render(fmt.Sprintf("layer %d/%d: ", layerIdx+1, len(layers))))
		sb.WriteString(gateStyle.Render(strings.Join(pairs, "  ")))
	}
	return sb.String()
}

// renderHardwarePanel draws per-atom state during execution and the final
// fluorescence readout.
func renderHardwarePanel(c *CircuitDefinition, layers [][]Gate, layerIdx int, readout bool) string {
	excited := make(map[int]bool)
	if !readout && layerIdx >= 0 && layerIdx < len(layers) {
		for _, g := range layers[layerIdx] {
			excited[g.Qubits[0]] = true
			excited[g.Qubits[1]] = true
		}
	}

	var atoms, states strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		cell := fmt.Sprintf("  ◉ %d  ", q)
		switch {
		case readout:
			atoms.WriteString(readoutStyle.Render(cell))
			states.WriteString(readoutStyle.Render(padCenter("|0>/|1>", len(cell))))
		case excited[q]:
			atoms.WriteString(rydbergStyle.Render(cell))
			states.WriteString(rydbergStyle.Render(padCenter("|r>", len(cell))))
		default:
			atoms.WriteString(atomStyle.Render(cell))
			states.WriteString(dimStyle.Render(padCenter("|g>", len(cell))))
		}
	}

	var sb strings.Builder
	sb.WriteString(dimStyle.Render("Rb-87 atoms in optical tweezers") + "\n\n")
	sb.WriteString(atoms.String() + "\n")
	sb.WriteString(states.String() + "\n\n")
	switch {
	case readout:
		sb.WriteString(readoutStyle.Render("fluorescence readout: bright = |0>, dark = |1>"))
	case layerIdx >= 0:
		sb.WriteString(rydbergStyle.Render(fmt.Sprintf("Rydberg pulse — layer %d/%d", layerIdx+1, len(layers))))
	default:
		sb.WriteString(dimStyle.Render("idle — ground state"))
	}
	return sb.String()
}

// renderSummaryPanel draws the pipeline recap with circuit statistics.
func renderSummaryPanel(c *CircuitDefinition) string {
	var sb strings.Builder
	for i, s := range pipelineSummary {
		sb.WriteString(stageTitleStyle.Render(s.name))
		sb.WriteString(dimStyle.Render("  — " + s.desc))
		sb.WriteString("\n")
		if i < len(pipelineSummary)-1 {
			sb.WriteString(dimStyle.Render("      ↓") + "\n")
		}
	}
	sb.WriteString("\n")
	native := c.NativeDecomposition()
	layers := c.CZLayers()
	sb.WriteString(fmt.Sprintf("Circuit: %s\n", c.Name))
	sb.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"Qubits: %d | Gates: %d | Native gates: %d | CZ layers: %d",
		c.NumQubits, len(c.Gates), len(native), len(layers))))
	return sb.String()
}
