package index

import "testing"

func pats(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

// TestBuild_Bucketing tests bucket assignment, id ordering, and MaxDepth.
func TestBuild_Bucketing(t *testing.T) {
	patterns := pats(
		"abcdef",  // id 0 → bucket ('a','b')
		"abXYZW",  // id 1 → bucket ('a','b'), depth 1
		"short",   // id 2 → below kernel length, skipped
		"zzzzzz",  // id 3 → bucket ('z','z')
		"abcdef",  // id 4 → duplicate of id 0, own slot at depth 2
	)

	bt := Build(patterns)

	if got := bt.MaxDepth(); got != 3 {
		t.Fatalf("MaxDepth = %d, want 3", got)
	}

	ab := bt.Bucket('a', 'b')
	if len(ab) != 3 || ab[0] != 0 || ab[1] != 1 || ab[2] != 4 {
		t.Errorf("Bucket('a','b') = %v, want [0 1 4]", ab)
	}

	zz := bt.Bucket('z', 'z')
	if len(zz) != 1 || zz[0] != 3 {
		t.Errorf("Bucket('z','z') = %v, want [3]", zz)
	}

	if empty := bt.Bucket('q', 'q'); len(empty) != 0 {
		t.Errorf("Bucket('q','q') = %v, want empty", empty)
	}

	if len(bt.HostOnly()) != 0 {
		t.Errorf("HostOnly = %v, want empty", bt.HostOnly())
	}
}

// TestBuild_AllShort tests that a pattern set with no kernel-length pattern
// produces an empty table.
func TestBuild_AllShort(t *testing.T) {
	bt := Build(pats("a", "ab", "abc", "abcde", ""))
	if got := bt.MaxDepth(); got != 0 {
		t.Errorf("MaxDepth = %d, want 0", got)
	}
}

// TestBuild_HostOnlyRouting tests that kernel-length patterns the kernel
// cannot see are routed to the host-only list rather than a bucket.
func TestBuild_HostOnlyRouting(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		reason  string
	}{
		{
			name:    "NUL first byte",
			pattern: "\x00bcdef",
			reason:  "a zero answer coordinate is indistinguishable from no candidate",
		},
		{
			name:    "NUL second byte",
			pattern: "a\x00cdef",
			reason:  "a zero answer coordinate is indistinguishable from no candidate",
		},
		{
			name:    "all-NUL signature",
			pattern: "ab\x00\x00\x00\x00xy",
			reason:  "zero signature collides with the unused-slot sentinel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt := Build(pats("abcdef", tt.pattern))
			host := bt.HostOnly()
			if len(host) != 1 || host[0] != 1 {
				t.Fatalf("HostOnly = %v, want [1] (%s)", host, tt.reason)
			}
			if got := bt.MaxDepth(); got != 1 {
				t.Errorf("MaxDepth = %d, want 1", got)
			}
		})
	}
}

// TestKernelEligible tests the eligibility predicate directly.
func TestKernelEligible(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{name: "empty", pattern: "", want: false},
		{name: "five bytes", pattern: "abcde", want: false},
		{name: "exactly six", pattern: "abcdef", want: true},
		{name: "long", pattern: "abcdefghij", want: true},
		{name: "NUL head", pattern: "\x00bcdef", want: false},
		{name: "NUL signature", pattern: "ab\x00\x00\x00\x00", want: false},
		{name: "partial NUL signature", pattern: "ab\x00\x00\x00g", want: true},
		{name: "NUL tail only", pattern: "abcdef\x00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KernelEligible([]byte(tt.pattern)); got != tt.want {
				t.Errorf("KernelEligible(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}
