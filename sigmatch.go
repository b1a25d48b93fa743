// Package sigmatch counts, for each pattern in a set, the occurrences of
// that pattern as a contiguous substring of one large text.
//
// The cost of scanning the text is amortized across the whole pattern set:
// patterns long enough are grouped by their first two bytes into a dense
// 256×256 index, each bucket depth contributes a table of 4-byte signatures
// (pattern bytes 2..5), and a data-parallel kernel evaluates every text
// position against one table per pass. Flagged candidates are verified
// against the full pattern on the host, so counts are exact. Patterns below
// six bytes are counted by a SWAR reference scanner seeded with an
// Aho-Corasick prescan.
//
// Counts are overlap-inclusive: in "aaaa" the pattern "aa" counts 3.
//
// Basic usage:
//
//	m, err := sigmatch.New([][]byte{
//	    []byte("abcdef"),
//	    []byte("cad"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	counts, err := m.Count(text)
//	// counts[i] is the occurrence count of pattern i
//
// Advanced usage with an explicit device and configuration:
//
//	dev, err := compute.NewDevice("cpu", 8)
//	config := engine.DefaultConfig()
//	config.EnableKernel = false // reference-only counting
//	m, err := sigmatch.NewWithDevice(patterns, dev, config)
package sigmatch

import (
	"github.com/coregx/sigmatch/compute"
	"github.com/coregx/sigmatch/engine"
)

// Matcher counts occurrences of a fixed pattern set.
//
// A Matcher is safe for concurrent use: the index is immutable after
// construction and every Count runs on its own device queue.
type Matcher struct {
	engine *engine.Engine
}

// New builds a matcher for the pattern set on the default device (the host
// CPU, probed for its vector extensions).
//
// Pattern ids are positions in the input slice; duplicates are legal and
// counted independently. The slices are copied.
func New(patterns [][]byte) (*Matcher, error) {
	dev, err := compute.Default()
	if err != nil {
		return nil, err
	}
	return NewWithDevice(patterns, dev, engine.DefaultConfig())
}

// NewWithDevice builds a matcher on an explicit device with an explicit
// configuration.
func NewWithDevice(patterns [][]byte, dev *compute.Device, config engine.Config) (*Matcher, error) {
	eng, err := engine.New(patterns, dev, config)
	if err != nil {
		return nil, err
	}
	return &Matcher{engine: eng}, nil
}

// Count returns the occurrence count of every pattern in the text, indexed
// by pattern id. The returned slice always has one entry per pattern.
func (m *Matcher) Count(text []byte) ([]uint64, error) {
	return m.engine.Count(text)
}

// NumPatterns returns the size of the pattern set.
func (m *Matcher) NumPatterns() int {
	return m.engine.NumPatterns()
}

// Stats returns a snapshot of the matcher's execution counters.
func (m *Matcher) Stats() engine.Stats {
	return m.engine.Stats()
}
