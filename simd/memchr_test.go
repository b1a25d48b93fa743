package simd

import (
	"bytes"
	"testing"
)

// TestMemchr_Basic tests basic byte search behavior.
func TestMemchr_Basic(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{name: "empty haystack", haystack: "", needle: 'a', want: -1},
		{name: "single byte hit", haystack: "a", needle: 'a', want: 0},
		{name: "single byte miss", haystack: "b", needle: 'a', want: -1},
		{name: "short haystack", haystack: "abcdefg", needle: 'd', want: 3},
		{name: "first of many", haystack: "xxaxxaxxa", needle: 'a', want: 2},
		{name: "hit in last word", haystack: "0123456789abcdef", needle: 'f', want: 15},
		{name: "hit in unaligned tail", haystack: "0123456789abcdefXYZ", needle: 'Z', want: 18},
		{name: "no hit long", haystack: "0123456789abcdefghij", needle: '!', want: -1},
		{name: "zero byte", haystack: "ab\x00cd", needle: 0, want: 2},
		{name: "high bit byte", haystack: "ab\x80cd", needle: 0x80, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr([]byte(tt.haystack), tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemchr_AgainstStdlib cross-checks Memchr against bytes.IndexByte on
// generated inputs covering every alignment of hit position and length.
func TestMemchr_AgainstStdlib(t *testing.T) {
	for size := 0; size <= 40; size++ {
		haystack := bytes.Repeat([]byte{'x'}, size)
		for pos := 0; pos < size; pos++ {
			haystack[pos] = 'y'
			got := Memchr(haystack, 'y')
			want := bytes.IndexByte(haystack, 'y')
			if got != want {
				t.Fatalf("size=%d pos=%d: Memchr = %d, want %d", size, pos, got, want)
			}
			haystack[pos] = 'x'
		}
	}
}

// TestCountByte tests the exact per-byte population count.
func TestCountByte(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{name: "empty", haystack: "", needle: 'a', want: 0},
		{name: "none", haystack: "bcdef", needle: 'a', want: 0},
		{name: "all", haystack: "aaaa", needle: 'a', want: 4},
		{name: "mixed long", haystack: "abcabcabcabcabcabc", needle: 'b', want: 6},
		// A zero byte next to a 0x01 byte defeats the inexact borrow-based
		// zero detector. The 2-byte case is shorter than a word and goes
		// through the byte loop; the full-word case goes through the exact
		// mask, which must count 4 there, not more.
		{name: "borrow adjacency", haystack: "\x00\x01", needle: 0, want: 1},
		{name: "borrow adjacency full word", haystack: "\x00\x01\x00\x01\x00\x01\x00\x01", needle: 0, want: 4},
		{name: "zero run", haystack: "\x00\x00\x00\x00\x00\x00\x00\x00\x00", needle: 0, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountByte([]byte(tt.haystack), tt.needle)
			if got != tt.want {
				t.Errorf("CountByte(%q, %#x) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestCountByte_AgainstStdlib cross-checks CountByte against bytes.Count.
func TestCountByte_AgainstStdlib(t *testing.T) {
	haystack := make([]byte, 257)
	for i := range haystack {
		haystack[i] = byte(i % 7)
	}
	for needle := byte(0); needle < 8; needle++ {
		got := CountByte(haystack, needle)
		want := bytes.Count(haystack, []byte{needle})
		if got != want {
			t.Errorf("needle %d: CountByte = %d, want %d", needle, got, want)
		}
	}
}
