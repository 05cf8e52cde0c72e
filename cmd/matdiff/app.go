// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/matdiff/differ"
	"github.com/katalvlaran/matdiff/internal/input"
	"github.com/katalvlaran/matdiff/internal/log"
	"github.com/katalvlaran/matdiff/matrix"
)

// Exit codes.
const (
	exitSame   = 0
	exitDiffer = 1
	exitError  = 2
)

const (
	flagEps     = "eps"
	flagIndices = "indices"
	flagShape   = "shape"
	envEps      = "MATDIFF_EPS"
)

var errUsage = errors.New("expected exactly two files: PREV NEXT")

// newApp builds the root command. differs receives the comparison result.
func newApp(stdout, stderr io.Writer, differs *bool) *cli.Command {
	return &cli.Command{
		Name:      "matdiff",
		Usage:     "report whether two flattened matrices differ",
		ArgsUsage: "PREV NEXT",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagEps,
				Usage:   "absolute tolerance; empty means exact comparison",
				Sources: cli.NewValueSourceChain(cli.EnvVar(envEps)),
			},
			&cli.BoolFlag{
				Name:  flagIndices,
				Usage: "also print the mismatched element indices",
			},
			&cli.BoolFlag{
				Name:  flagShape,
				Usage: "compare as matrices: a shape change differs, NaN/Inf are rejected",
			},
		},
		// Errors are mapped to exit codes in run, never os.Exit here.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errUsage
			}
			d, err := compare(cmd.Args().Get(0), cmd.Args().Get(1), cmd.String(flagEps), cmd.Bool(flagIndices), cmd.Bool(flagShape), stdout)
			if err != nil {
				return err
			}
			*differs = d

			return nil
		},
	}
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var differs bool
	if err := newApp(stdout, stderr, &differs).Run(ctx, args); err != nil {
		// stderr carries the message; the log entry is for debug runs only.
		log.WithError(err).Debug("matdiff failed")
		fmt.Fprintf(stderr, "matdiff: %v\n", err)

		return exitError
	}
	if differs {
		return exitDiffer
	}

	return exitSame
}

// verdict is the outcome of one comparison.
type verdict struct {
	differs bool
	detail  string // "indices: ..." or "shape: ..." line; empty when no position differs
}

// compare loads both files, prints the verdict and returns whether they differ.
func compare(prevPath, nextPath, eps string, indices, shape bool, w io.Writer) (bool, error) {
	var (
		tol    float64
		hasTol = eps != ""
		err    error
	)
	if hasTol {
		if tol, err = strconv.ParseFloat(eps, 64); err != nil {
			return false, fmt.Errorf("--%s: %w", flagEps, err)
		}
		if err = differ.ValidateTolerance(tol); err != nil {
			return false, fmt.Errorf("--%s: %w", flagEps, err)
		}
	}

	var v verdict
	if shape {
		v, err = compareDense(prevPath, nextPath, tol, hasTol)
	} else {
		v, err = compareFlat(prevPath, nextPath, tol, hasTol)
	}
	if err != nil {
		return false, err
	}

	if !v.differs {
		fmt.Fprintln(w, "same")
		return false, nil
	}
	fmt.Fprintln(w, "differ")
	if indices && v.detail != "" {
		fmt.Fprintln(w, v.detail)
	}

	return true, nil
}

// compareFlat compares the row-major elements, ignoring shape.
func compareFlat(prevPath, nextPath string, tol float64, hasTol bool) (verdict, error) {
	prev, err := input.Load(prevPath)
	if err != nil {
		return verdict{}, err
	}
	next, err := input.Load(nextPath)
	if err != nil {
		return verdict{}, err
	}
	log.WithField("prev", prevPath).WithField("next", nextPath).Debugf("loaded %d and %d elements", len(prev), len(next))

	var v verdict
	if hasTol {
		if v.differs, err = differ.MatricesDifferWithin(prev, next, tol); err != nil {
			return verdict{}, fmt.Errorf("--%s: %w", flagEps, err)
		}
		log.Tracef("compared with eps=%g", tol)
	} else {
		v.differs = differ.MatricesDiffer(prev, next)
	}
	if v.differs {
		v.detail = indicesLine(prev, next, tol)
	}

	return v, nil
}

// compareDense loads both files as matrices, so a shape change differs.
func compareDense(prevPath, nextPath string, tol float64, hasTol bool) (verdict, error) {
	prev, err := input.LoadDense(prevPath)
	if err != nil {
		return verdict{}, err
	}
	next, err := input.LoadDense(nextPath)
	if err != nil {
		return verdict{}, err
	}
	log.WithField("prev", prevPath).WithField("next", nextPath).Debugf("loaded %dx%d and %dx%d", prev.Rows(), prev.Cols(), next.Rows(), next.Cols())

	var v verdict
	if hasTol {
		v.differs = differ.DenseDifferWithin(prev, next, matrix.WithEpsilon(tol))
		log.Tracef("compared with eps=%g", tol)
	} else {
		v.differs = differ.DenseDiffer(prev, next)
	}
	if !v.differs {
		return v, nil
	}

	pr, pc := prev.Shape()
	nr, nc := next.Shape()
	if pr != nr || pc != nc {
		v.detail = fmt.Sprintf("shape: %dx%d vs %dx%d", pr, pc, nr, nc)
	} else {
		v.detail = indicesLine(prev.Flat(), next.Flat(), tol)
	}

	return v, nil
}

// indicesLine renders the mismatched positions. Under a tolerance, positions
// that only differ by noise are dropped.
func indicesLine(prev, next []float64, tol float64) string {
	var parts []string
	for _, i := range differ.Indices(prev, next) {
		if i < len(prev) && i < len(next) && math.Abs(prev[i]-next[i]) <= tol {
			continue
		}
		parts = append(parts, strconv.Itoa(i))
	}
	if len(parts) == 0 {
		return ""
	}

	return "indices: " + strings.Join(parts, " ")
}
