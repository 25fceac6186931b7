package main

import (
	"fmt"
	"strings"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// assignColumns packs gates into display columns, as early as each gate's
// qubits (and the wires its connector crosses) allow. Display-only: program
// order is the gate list, columns just keep the diagram compact.
func assignColumns(gates []Gate) []int {
	cols := make([]int, len(gates))
	nextFree := make(map[int]int)

	for i, g := range gates {
		lo, hi := g.Qubits[0], g.Qubits[0]
		for _, q := range g.Qubits {
			lo, hi = min(lo, q), max(hi, q)
		}
		col := 0
		for q := lo; q <= hi; q++ {
			col = max(col, nextFree[q])
		}
		cols[i] = col
		for q := lo; q <= hi; q++ {
			nextFree[q] = col + 1
		}
	}
	return cols
}

// diagramCell describes what occupies one (qubit, column) cell.
type diagramCell struct {
	gate        int // index into the gate slice, -1 when empty
	isControl   bool
	isTarget    bool
	passThrough bool
	vertAbove   bool
	vertBelow   bool
}

// buildCells lays the gates out on a numQubits × numCols grid.
func buildCells(gates []Gate, cols []int, numQubits, numCols int) [][]diagramCell {
	cells := make([][]diagramCell, numQubits)
	for q := range cells {
		cells[q] = make([]diagramCell, numCols)
		for c := range cells[q] {
			cells[q][c].gate = -1
		}
	}

	for i, g := range gates {
		col := cols[i]
		lo, hi := g.Qubits[0], g.Qubits[0]
		for _, q := range g.Qubits {
			lo, hi = min(lo, q), max(hi, q)
		}

		for q := lo; q <= hi; q++ {
			cell := &cells[q][col]
			onGate := false
			for pos, gq := range g.Qubits {
				if gq != q {
					continue
				}
				onGate = true
				cell.gate = i
				switch g.Type {
				case GateCX:
					cell.isControl = pos == 0
					cell.isTarget = pos == 1
				case GateCCX:
					cell.isControl = pos < 2
					cell.isTarget = pos == 2
				case GateCZ, GateSWAP:
					// Symmetric gates: both ends draw the same symbol.
					cell.isControl = true
				}
			}
			if !onGate {
				cell.gate = i
				cell.passThrough = true
			}
			cell.vertAbove = q > lo
			cell.vertBelow = q < hi
		}
	}
	return cells
}

// twoQubitSymbol returns the wire glyph for a control or target end.
func twoQubitSymbol(t GateType, isTarget bool) string {
	switch t {
	case GateSWAP:
		return "×"
	case GateCZ:
		return "●"
	default:
		if isTarget {
			return "⊕"
		}
		return "●"
	}
}

// renderCell returns the three lines (top, mid, bot) for one cell, each
// exactly cellW visible characters wide.
func renderCell(cell diagramCell, gates []Gate, highlight map[int]bool) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	style := gateStyle
	if cell.gate >= 0 && highlight[cell.gate] {
		style = highlightGateStyle
	}

	switch {
	case cell.gate >= 0 && cell.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow

	case cell.gate >= 0 && (cell.isControl || cell.isTarget):
		g := gates[cell.gate]
		top = emptyRow
		if cell.vertAbove {
			top = vertRow
		}
		sym := twoQubitSymbol(g.Type, cell.isTarget)
		mid = strings.Repeat("─", dashL) + style.Render(sym) + strings.Repeat("─", dashR)
		bot = emptyRow
		if cell.vertBelow {
			bot = vertRow
		}

	case cell.gate >= 0:
		g := gates[cell.gate]
		name := padCenter(g.DisplayName(), gateNameW)
		boxW := gateNameW + 2
		margin := (cellW - boxW) / 2
		rightMargin := cellW - margin - boxW
		top = strings.Repeat(" ", margin) + style.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + style.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + style.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)

	default:
		top = emptyRow
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
	}
	return
}

// renderCircuit draws the first len(gates) gates of a circuit as a wire
// diagram. highlight marks gate indexes to emphasize (e.g. the CZ layer the
// animation is on). maxWidth clips the diagram to its trailing columns when
// the circuit is wider than the panel.
func renderCircuit(gates []Gate, numQubits, maxWidth int, highlight map[int]bool) string {
	cols := assignColumns(gates)
	numCols := 0
	for _, c := range cols {
		numCols = max(numCols, c+1)
	}
	if numCols == 0 {
		numCols = 1
	}

	visible := numCols
	startCol := 0
	if maxWidth > 0 {
		fit := max((maxWidth-labelW)/cellW, 1)
		if numCols > fit {
			visible = fit
			startCol = numCols - fit
		}
	}

	cells := buildCells(gates, cols, numQubits, numCols)

	var sb strings.Builder
	if startCol > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  ◀ showing columns %d–%d", startCol, numCols-1)))
		sb.WriteString("\n")
	}

	for q := 0; q < numQubits; q++ {
		topLine := strings.Repeat(" ", labelW)
		label := fmt.Sprintf("q[%d]", q)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelW)

		for col := startCol; col < startCol+visible; col++ {
			top, mid, bot := renderCell(cells[q][col], gates, highlight)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}
	return sb.String()
}
