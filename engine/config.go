// Package engine orchestrates multi-pattern counting across the reference
// scanner and the signature kernel.
//
// The engine owns the derived match state: the short-pattern scanner, the
// bucket table, and the per-depth signature tables. A count proceeds in two
// stages: the reference side seeds the vector with every pattern the kernel
// does not cover, then the device pipeline runs one kernel pass per bucket
// depth and verifies flagged candidates against the full patterns.
package engine

// Config controls engine behavior.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.EnableKernel = false // reference-only counting
//	eng, err := engine.New(patterns, dev, config)
type Config struct {
	// EnablePrescan enables the Aho-Corasick prescan over short patterns.
	// The prescan proves "no short pattern occurs" in one automaton pass;
	// disabling it only costs per-pattern scans on non-matching texts.
	// Default: true
	EnablePrescan bool

	// EnableKernel enables the device pipeline. When false every pattern is
	// counted by the reference matcher; results are identical, only slower
	// on large pattern sets. Default: true
	EnableKernel bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrescan: true,
		EnableKernel:  true,
	}
}
