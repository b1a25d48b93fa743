package engine

import (
	"errors"

	"github.com/grailbio/base/log"

	"github.com/coregx/sigmatch/compute"
	"github.com/coregx/sigmatch/index"
	"github.com/coregx/sigmatch/refmatch"
)

// Common engine errors.
var (
	// ErrNilDevice indicates the engine was constructed without a device.
	ErrNilDevice = errors.New("engine: nil device")
)

// Engine counts occurrences of a fixed pattern set in texts.
//
// An Engine is immutable after construction; the derived index and tables
// are shared by all counts. Count itself creates a fresh queue and fresh
// device buffers per call, so an Engine is safe for concurrent use.
type Engine struct {
	// stats MUST be the first field so its uint64 counters stay 8-byte
	// aligned on 32-bit platforms.
	stats Stats

	patterns [][]byte
	device   *compute.Device
	config   Config

	short   *refmatch.Scanner
	buckets *index.BucketTable
	sigs    *index.SignatureTables
}

// New builds an engine for the pattern set on the given device.
//
// Patterns are copied to prevent aliasing; ids are slice positions. An empty
// pattern set is valid — Count then returns an empty vector. The device is
// required even when the configuration disables the kernel path.
func New(patterns [][]byte, dev *compute.Device, config Config) (*Engine, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}

	patternsCopy := make([][]byte, len(patterns))
	for i, p := range patterns {
		patternsCopy[i] = make([]byte, len(p))
		copy(patternsCopy[i], p)
	}

	buckets := index.Build(patternsCopy)
	e := &Engine{
		patterns: patternsCopy,
		device:   dev,
		config:   config,
		short:    refmatch.NewScanner(patternsCopy, config.EnablePrescan),
		buckets:  buckets,
		sigs:     index.BuildSignatures(patternsCopy, buckets),
	}

	if log.At(log.Debug) {
		log.Debug.Printf("engine: %d patterns on %s (%d workers): depth=%d short=%d hostonly=%d",
			len(patternsCopy), dev.Name(), dev.Workers(),
			buckets.MaxDepth(), e.short.NumShort(), len(buckets.HostOnly()))
	}

	return e, nil
}

// NumPatterns returns the size of the pattern set.
func (e *Engine) NumPatterns() int {
	return len(e.patterns)
}

// Depth returns the number of kernel passes a count performs (the largest
// bucket of the pattern index). Zero means the device pipeline is skipped.
func (e *Engine) Depth() int {
	return e.sigs.Depth()
}
