// Command sigmatch counts pattern occurrences in a text.
//
// The problem is read from standard input: an ASCII decimal text length,
// one whitespace byte, the text, one whitespace byte, the pattern count,
// then one length-prefixed block per pattern. One line per pattern is
// written to standard output: "<i> <count>" with 1-based ids.
//
// Exit status is non-zero on any failure, with a diagnostic on standard
// error and nothing further on standard output.
package main

import (
	"flag"
	"os"

	"github.com/grailbio/base/log"

	"github.com/coregx/sigmatch"
	"github.com/coregx/sigmatch/compute"
	"github.com/coregx/sigmatch/engine"
	"github.com/coregx/sigmatch/input"
)

var (
	referenceFlag = flag.Bool("reference", false,
		"count every pattern with the sequential reference matcher (no kernel passes)")
	workersFlag = flag.Int("workers", 0,
		"device worker count (0 = one per processor)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error.Printf("sigmatch: %v", err)
		os.Exit(1)
	}
}

func run() error {
	problem, err := input.ReadProblem(os.Stdin)
	if err != nil {
		return err
	}

	var dev *compute.Device
	if *workersFlag > 0 {
		dev, err = compute.NewDevice("cpu", *workersFlag)
	} else {
		dev, err = compute.Default()
	}
	if err != nil {
		return err
	}

	config := engine.DefaultConfig()
	config.EnableKernel = !*referenceFlag

	m, err := sigmatch.NewWithDevice(problem.Patterns, dev, config)
	if err != nil {
		return err
	}

	counts, err := m.Count(problem.Text)
	if err != nil {
		return err
	}

	return input.WriteCounts(os.Stdout, counts)
}
