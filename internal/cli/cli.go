// Package cli implements the interactive pieces of the coin-toss simulator:
// reading the run count and driving a series of runs.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/commitlab/blumflip-go/pkg/blumflip/flip"
)

// DefaultRuns is the run count selected by an empty input line.
const DefaultRuns = 1

var (
	ErrNotANumber = errors.New("run count is not a number")
	ErrOutOfRange = errors.New("run count must be at least 1")
)

// ParseRunCount interprets one line of user input as a run count. An empty
// line, whitespace included, selects DefaultRuns; anything else must parse as
// a positive integer.
func ParseRunCount(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return DefaultRuns, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, trimmed)
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrOutOfRange, v)
	}
	return v, nil
}

// PromptRunCount asks for a run count on out and reads answers from in,
// re-prompting until a valid line arrives. Pressing Enter selects the
// default; end of input does too.
func PromptRunCount(in io.Reader, out io.Writer) int {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Enter number of runs (positive integer). Press Enter to use default [%d]: ", DefaultRuns)
		if !sc.Scan() {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Using default: %d\n", DefaultRuns)
			return DefaultRuns
		}
		v, err := ParseRunCount(sc.Text())
		switch {
		case err == nil:
			if strings.TrimSpace(sc.Text()) == "" {
				fmt.Fprintf(out, "Using default: %d\n", DefaultRuns)
			}
			return v
		case errors.Is(err, ErrOutOfRange):
			fmt.Fprintf(out, "Please enter a positive integer (>= 1), or press Enter to use the default (%d).\n", DefaultRuns)
		default:
			fmt.Fprintf(out, "Invalid input. Please enter a positive integer, or press Enter for the default (%d).\n", DefaultRuns)
		}
	}
}

// RunSeries executes runs back to back, printing a banner line before each
// one and a blank line after. Every run gets a fresh Flip over the same
// params. Aborted runs are normal outcomes and do not stop the series; only
// real errors do.
func RunSeries(out io.Writer, runs int, params flip.Params) ([]flip.Outcome, error) {
	outcomes := make([]flip.Outcome, 0, runs)
	for i := 1; i <= runs; i++ {
		fmt.Fprintf(out, "---- Run #%d ----\n", i)
		f, err := flip.New(params)
		if err != nil {
			return outcomes, err
		}
		outcome, err := f.Run()
		if err != nil {
			return outcomes, fmt.Errorf("run %d: %w", i, err)
		}
		outcomes = append(outcomes, outcome)
		fmt.Fprintln(out)
	}
	return outcomes, nil
}
