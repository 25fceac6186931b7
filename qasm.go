package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotQASM is returned when the input has no qreg declaration and so
// cannot be an OpenQASM 2.0 program. Import fails loudly rather than
// producing an empty circuit.
var ErrNotQASM = errors.New("not an OpenQASM program: missing qreg declaration")

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeQubitRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex         = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*(\w+)\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`qreg\s+(\w+)\[(\d+)\]`)
)

// qasmClass maps an uppercased QASM mnemonic to the external classifier and
// exponent the import rules expect. Rotations are handled separately because
// they carry an angle.
var qasmClass = map[string]struct {
	class    string
	exponent float64
}{
	"H":       {"HPow", 1},
	"X":       {"XPow", 1},
	"Y":       {"YPow", 1},
	"Z":       {"ZPow", 1},
	"S":       {"ZPow", 0.5},
	"T":       {"ZPow", 0.25},
	"CX":      {"CXPow", 1},
	"CZ":      {"CZPow", 1},
	"SWAP":    {"SwapPow", 1},
	"CCX":     {"CCXPow", 1},
	"TOFFOLI": {"CCXPow", 1},
}

var qasmRotation = map[string]string{
	"RX": "Rx",
	"RY": "Ry",
	"RZ": "Rz",
}

func qasmOp(mnemonic string, qubits ...int) ExternalOp {
	name := strings.ToUpper(mnemonic)
	op := ExternalOp{Name: name, Qubits: qubits}
	if c, ok := qasmClass[name]; ok {
		op.Class = c.class
		op.Exponent = c.exponent
	}
	return op
}

// ParseQASMSource parses a useful subset of OpenQASM 2.0 into the external
// moment/operation model. Each statement becomes its own moment, preserving
// program order. Statements the subset does not cover flow through as
// class-less operations, leaving the importer's fallback rules (and its
// skip-with-warning path) to deal with them.
func ParseQASMSource(name, src string) (*ExternalCircuit, error) {
	ec := &ExternalCircuit{Name: name, Source: src}
	sawQreg := false

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			if qregRegex.MatchString(line) {
				sawQreg = true
			}
			continue
		}
		if strings.HasPrefix(line, "creg") || strings.HasPrefix(line, "barrier") {
			continue
		}

		if matches := measureRegex.FindStringSubmatch(line); matches != nil {
			q, _ := strconv.Atoi(matches[1])
			ec.Moments = append(ec.Moments, ExternalMoment{
				{Class: "Measurement", Name: "MEASURE", Qubits: []int{q}},
			})
			continue
		}

		if matches := threeQubitRegex.FindStringSubmatch(line); matches != nil {
			a, _ := strconv.Atoi(matches[2])
			b, _ := strconv.Atoi(matches[3])
			c, _ := strconv.Atoi(matches[4])
			ec.Moments = append(ec.Moments, ExternalMoment{qasmOp(matches[1], a, b, c)})
			continue
		}

		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			a, _ := strconv.Atoi(matches[2])
			b, _ := strconv.Atoi(matches[3])
			ec.Moments = append(ec.Moments, ExternalMoment{qasmOp(matches[1], a, b)})
			continue
		}

		if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
			mnemonic := strings.ToUpper(matches[1])
			q, _ := strconv.Atoi(matches[3])
			angle, ok := parseParamExpr(matches[2])
			if rot, isRot := qasmRotation[mnemonic]; isRot && ok {
				ec.Moments = append(ec.Moments, ExternalMoment{
					{Class: rot, Name: mnemonic, Qubits: []int{q}, Args: map[string]float64{"rads": angle}},
				})
			} else {
				ec.Moments = append(ec.Moments, ExternalMoment{
					{Name: mnemonic, Qubits: []int{q}},
				})
			}
			continue
		}

		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			q, _ := strconv.Atoi(matches[2])
			ec.Moments = append(ec.Moments, ExternalMoment{qasmOp(matches[1], q)})
			continue
		}
	}

	if !sawQreg {
		return nil, ErrNotQASM
	}
	return ec, nil
}

// LoadQASMFile reads and parses an OpenQASM file.
func LoadQASMFile(path string) (*ExternalCircuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), ".qasm")
	return ParseQASMSource(name, string(data))
}
