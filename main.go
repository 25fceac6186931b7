package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDemo    string
	flagQASM    string
	flagFile    string
	flagVerbose bool
)

func newLogger() *zap.Logger {
	if flagVerbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadCircuit resolves the --qasm / --file / --demo flags into a circuit.
// QASM wins over a circuit file, which wins over the demo name.
func loadCircuit(logger *zap.Logger) (*CircuitDefinition, error) {
	switch {
	case flagQASM != "":
		ec, err := LoadQASMFile(flagQASM)
		if err != nil {
			return nil, err
		}
		return FromExternal(ec, logger), nil
	case flagFile != "":
		return LoadCircuitFile(flagFile)
	default:
		return demoCircuit(flagDemo)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qstackterm",
		Short: "Animated walkthrough of the neutral-atom compilation pipeline",
		Long: "qstackterm plays a terminal animation of how a quantum circuit\n" +
			"descends the compilation stack: logical gates, native-gate\n" +
			"decomposition, atom routing, laser pulses, and hardware execution.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			c, err := loadCircuit(logger)
			if err != nil {
				return err
			}

			p := tea.NewProgram(initialModel(c), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVarP(&flagDemo, "demo", "d", "bell", "built-in demo circuit to load")
	root.PersistentFlags().StringVar(&flagQASM, "qasm", "", "import a circuit from an OpenQASM 2.0 file")
	root.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "load a circuit from a YAML file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose import logging")

	root.AddCommand(newListCmd(), newDecomposeCmd(), newLayersCmd(), newCodeCmd(), newExportCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in demo circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range demos {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", d.key, d.desc)
			}
			return nil
		},
	}
}

func newDecomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose",
		Short: "Print the circuit after native-gate decomposition",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			c, err := loadCircuit(logger)
			if err != nil {
				return err
			}
			native := c.NativeDecomposition()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d gates -> %d native gates\n\n", c.Name, len(c.Gates), len(native))
			fmt.Fprintln(out, renderCircuit(native, c.NumQubits, 0, nil))
			return nil
		},
	}
}

func newLayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "Print the parallel CZ layer schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			c, err := loadCircuit(logger)
			if err != nil {
				return err
			}
			layers := c.CZLayers()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d CZ layer(s)\n", c.Name, len(layers))
			for i, layer := range layers {
				pairs := make([]string, len(layer))
				for j, g := range layer {
					pairs[j] = fmt.Sprintf("CZ(%d,%d)", g.Qubits[0], g.Qubits[1])
				}
				fmt.Fprintf(out, "  layer %d: %s\n", i+1, strings.Join(pairs, "  "))
			}
			return nil
		},
	}
}

func newCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code",
		Short: "Print the circuit as SQuIN-style kernel pseudocode",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			c, err := loadCircuit(logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.SquinCode())
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the circuit as OpenQASM 2.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			c, err := loadCircuit(logger)
			if err != nil {
				return err
			}
			qasm := c.ToQASM()
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), qasm)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(qasm), 0644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			logger.Info("exported circuit", zap.String("path", outPath), zap.Int("gates", len(c.Gates)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write QASM to a file instead of stdout")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
