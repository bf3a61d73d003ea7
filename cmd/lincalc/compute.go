// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lincalc/calc"
	"github.com/katalvlaran/lincalc/matrix"
	"github.com/katalvlaran/lincalc/solver"
)

// emit writes v as indented JSON or as the given text.
func (a *app) emit(v any, text string) error {
	if a.jsonOutput() {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(a.out, text)

	return err
}

// parseMatrix reads a JSON array of rows, "[[1,2],[3,4]]".
func parseMatrix(flag, raw string) (matrix.Matrix, error) {
	var rows [][]float64
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, fmt.Errorf("--%s: expected a JSON array of rows: %w", flag, err)
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}

	return m, nil
}

// operandFlags registers the --a/--b matrix operands.
func operandFlags(fs *pflag.FlagSet, rawA, rawB *string) {
	fs.StringVar(rawA, "a", "", "Matrix A as JSON rows, e.g. [[1,2],[3,4]]")
	fs.StringVar(rawB, "b", "", "Matrix B as JSON rows (binary operations)")
}

func (a *app) calcCmd() *cobra.Command {
	var rawA, rawB string
	cmd := &cobra.Command{
		Use:   "calc <operation>",
		Short: "Run one matrix or vector operation",
		Long: "Run one operation on --a (and --b for binary operations).\n" +
			"Operations: " + strings.Join(calc.Operations(), ", "),
		Example: `  lincalc calc multiply --a '[[1,2],[3,4]]' --b '[[5],[6]]'
  lincalc calc determinant --a '[[2,0],[0,3]]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			if rawA == "" {
				return errors.New("--a is required")
			}
			ma, err := parseMatrix("a", rawA)
			if err != nil {
				return err
			}
			var mb matrix.Matrix
			if calc.IsBinary(op) {
				if rawB == "" {
					return fmt.Errorf("%s needs --b", op)
				}
				if mb, err = parseMatrix("b", rawB); err != nil {
					return err
				}
			}
			res, err := a.engine.Perform(op, ma, mb)
			if err != nil {
				return err
			}

			return a.emit(res, calc.Format(res))
		},
	}
	operandFlags(cmd.Flags(), &rawA, &rawB)

	return cmd
}

func (a *app) crossCmd() *cobra.Command {
	var u, w []string
	cmd := &cobra.Command{
		Use:   "cross",
		Short: "Cross product of two 2D or 3D vectors, numeric or symbolic",
		Example: `  lincalc cross --a 1,2,3 --b 4,5,6
  lincalc cross --a 2,3x,y --b 1,3,5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.engine.CrossTokens(u, w)
			if err != nil {
				return err
			}

			return a.emit(res, calc.Format(res))
		},
	}
	cmd.Flags().StringSliceVar(&u, "a", nil, "Components of A, comma separated")
	cmd.Flags().StringSliceVar(&w, "b", nil, "Components of B, comma separated")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// solveOutput is the JSON shape of lincalc solve.
type solveOutput struct {
	solver.Result
	Verified bool `json:"verified"`
}

func (a *app) solveCmd() *cobra.Command {
	var raw, file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a square linear system with 2 to 4 unknowns",
		Example: `  lincalc solve --system '{"equations":[{"coefficients":[2,3],"result":13},{"coefficients":[1,-1],"result":-1}]}'
  lincalc solve --file system.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := []byte(raw)
			switch {
			case file != "" && raw != "":
				return errors.New("use either --system or --file")
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read system: %w", err)
				}
				data = b
			case raw == "":
				return errors.New("--system or --file is required")
			}

			var sys solver.System
			if err := json.Unmarshal(data, &sys); err != nil {
				return fmt.Errorf("failed to parse system: %w", err)
			}
			res, err := a.engine.Solve(sys)
			if err != nil {
				return err
			}
			out := solveOutput{Result: res, Verified: solver.Verified(sys.Equations, res)}
			text := res.Message
			if res.HasUniqueSolution {
				text = fmt.Sprintf("%s\nverified: %t", solver.Format(res), out.Verified)
			}

			return a.emit(out, text)
		},
	}
	cmd.Flags().StringVar(&raw, "system", "", `System as JSON: {"equations":[{"coefficients":[...],"result":n}],"unknowns":n}`)
	cmd.Flags().StringVar(&file, "file", "", "Read the system JSON from a file")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between polar and rectangular coordinates",
	}

	var r, theta float64
	polar := &cobra.Command{
		Use:     "polar",
		Short:   "Polar (r, θ in degrees) to rectangular",
		Example: "  lincalc convert polar --r 5 --theta 45",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.convert(calc.ModePolarToRect, r, theta)
		},
	}
	polar.Flags().Float64Var(&r, "r", 0, "Radius")
	polar.Flags().Float64Var(&theta, "theta", 0, "Angle in degrees")

	var x, y float64
	rect := &cobra.Command{
		Use:     "rect",
		Short:   "Rectangular (x, y) to polar",
		Example: "  lincalc convert rect --x 3 --y 4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.convert(calc.ModeRectToPolar, x, y)
		},
	}
	rect.Flags().Float64Var(&x, "x", 0, "X coordinate")
	rect.Flags().Float64Var(&y, "y", 0, "Y coordinate")

	cmd.AddCommand(polar, rect)

	return cmd
}

func (a *app) convert(mode string, p, q float64) error {
	out, err := a.engine.Convert(mode, p, q)
	if err != nil {
		return err
	}

	return a.emit(out, out.Display)
}

func (a *app) opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := calc.Operations()
			lines := make([]string, len(ops))
			for i, op := range ops {
				arity := "unary"
				if calc.IsBinary(op) {
					arity = "binary"
				}
				lines[i] = fmt.Sprintf("%-15s %s", op, arity)
			}

			return a.emit(ops, strings.Join(lines, "\n"))
		},
	}
}
