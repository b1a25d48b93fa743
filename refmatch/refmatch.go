// Package refmatch implements the sequential reference matcher.
//
// It serves three roles: the counting path for patterns too short for the
// signature kernel, the exact path for kernel-length patterns the kernel
// cannot see (NUL-keyed or zero-signature patterns), and the oracle the
// kernel path is regression-tested against.
package refmatch

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/sigmatch/index"
	"github.com/coregx/sigmatch/simd"
)

// Count returns the number of positions at which pattern occurs in text.
// Occurrences may overlap. An empty pattern, or a pattern longer than the
// text, counts zero. Count never fails.
func Count(text, pattern []byte) uint64 {
	return uint64(simd.CountOccurrences(text, pattern))
}

// Scanner counts the patterns of a set that fall below the kernel minimum
// length. It seeds the result vector the kernel path then increments.
//
// Thread-safety: a Scanner is immutable after construction and safe for
// concurrent use.
type Scanner struct {
	patterns [][]byte

	// short lists the ids this scanner owns: 0 < len < MinKernelPatternLen.
	short []int

	// prescan, when non-nil, is an Aho-Corasick automaton over the short
	// patterns. One automaton pass proves "no short pattern occurs at all",
	// which skips every per-pattern scan on texts that cannot match.
	prescan *ahocorasick.Automaton
}

// NewScanner builds a scanner over the short patterns of the set.
//
// The pattern slices are retained, not copied; the caller owns making them
// immutable. When enablePrescan is set, an Aho-Corasick automaton is built
// over the short patterns; if the automaton cannot be built the scanner
// silently falls back to plain per-pattern scanning.
func NewScanner(patterns [][]byte, enablePrescan bool) *Scanner {
	s := &Scanner{patterns: patterns}

	for id, p := range patterns {
		if len(p) > 0 && len(p) < index.MinKernelPatternLen {
			s.short = append(s.short, id)
		}
	}

	if enablePrescan && len(s.short) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, id := range s.short {
			builder.AddPattern(patterns[id])
		}
		if auto, err := builder.Build(); err == nil {
			s.prescan = auto
		}
	}

	return s
}

// NumShort returns how many pattern ids the scanner owns.
func (s *Scanner) NumShort() int {
	return len(s.short)
}

// Counts returns a vector of len(patterns) counts: the occurrence count for
// every short pattern, zero everywhere else. Empty patterns stay zero by
// definition.
func (s *Scanner) Counts(text []byte) []uint64 {
	counts := make([]uint64, len(s.patterns))
	if len(s.short) == 0 {
		return counts
	}

	if s.prescan != nil && s.prescan.Find(text, 0) == nil {
		// No short pattern occurs anywhere in the text.
		return counts
	}

	for _, id := range s.short {
		counts[id] = Count(text, s.patterns[id])
	}
	return counts
}
