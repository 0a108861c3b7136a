// SPDX-License-Identifier: MIT

// Command matsolve runs one matrix operation over matrices read from files or
// standard input and prints the result as text or HTML.
//
// Usage:
//
//	matsolve [-op solve|det|transpose|inverse|rank|multiply] [-a file] [-b file]
//	         [-format text|html] [-max n] [-tol eps]
//
// Matrix A comes from -a, or standard input when -a is empty or "-".
// Matrix B (multiply only) must come from -b. One row per line; cells are
// separated by spaces, commas or semicolons.
//
// Example:
//
//	$ printf '4 7\n2 6\n' | matsolve -op det
//	Input matrix:
//	4.00  7.00
//	2.00  6.00
//	Matrix determinant: 10.0000
//
// The exit status is 1 when the operation failed (the error is part of the
// rendered output) and 2 on usage or input errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/matsolve/matrix"
	"github.com/katalvlaran/matsolve/report"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, executes one operation and returns the exit status.
// Usage and input errors are logged to stderr followed by the flag usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "matsolve: ", 0)
	fs := flag.NewFlagSet("matsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		opName  = fs.String("op", "solve", "Operation: solve, det, transpose, inverse, rank, multiply")
		aPath   = fs.String("a", "", "File holding matrix A; empty or - reads standard input")
		bPath   = fs.String("b", "", "File holding matrix B (multiply only)")
		format  = fs.String("format", "text", "Output format: text or html")
		maxDim  = fs.Int("max", report.DefaultMaxDim, "Largest accepted row or column count")
		rankTol = fs.Float64("tol", matrix.DefaultRankTolerance, "Pivot tolerance used for rank")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		// the flag set already printed the error and usage
		return exitUsage
	}
	usageErr := func(err error) int {
		logger.Print(err)
		fs.Usage()
		return exitUsage
	}

	op, err := report.ParseOp(*opName)
	if err != nil {
		return usageErr(err)
	}
	render, err := renderer(*format)
	if err != nil {
		return usageErr(err)
	}
	if math.IsNaN(*rankTol) || math.IsInf(*rankTol, 0) || *rankTol < 0 {
		return usageErr(fmt.Errorf("-tol must be finite and non-negative, got %v", *rankTol))
	}
	if op.NeedsSecond() && *bPath == "" {
		return usageErr(fmt.Errorf("-op %s needs -b", op))
	}

	a, err := load(*aPath, stdin, *maxDim)
	if err != nil {
		return usageErr(fmt.Errorf("reading A: %w", err))
	}
	var b matrix.Matrix
	if op.NeedsSecond() {
		if b, err = load(*bPath, nil, *maxDim); err != nil {
			return usageErr(fmt.Errorf("reading B: %w", err))
		}
	}

	r := report.Build(op, a, b, matrix.WithRankTolerance(*rankTol))
	if err = render(stdout, r); err != nil {
		logger.Printf("writing output: %v", err)
		return exitFailed
	}
	if r.Failed() {
		return exitFailed
	}

	return exitOK
}

// renderer maps a -format value to a report writer.
func renderer(name string) (func(io.Writer, *report.Report) error, error) {
	switch name {
	case "text", "txt":
		return report.WriteText, nil
	case "html":
		return report.WriteHTML, nil
	}

	return nil, fmt.Errorf("unknown format %q", name)
}

// load reads one matrix from path, or from stdin when path is empty or "-".
func load(path string, stdin io.Reader, maxDim int) (*matrix.Dense, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, errors.New("no input")
		}
		return report.ReadMatrix(stdin, maxDim)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return report.ReadMatrix(f, maxDim)
}
