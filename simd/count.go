package simd

import "bytes"

// CountOccurrences returns the number of positions at which needle occurs in
// haystack. Occurrences may overlap: in "aaaa" the needle "aa" occurs 3
// times. An empty needle, or a needle longer than the haystack, yields 0.
//
// Algorithm (rare-byte skip loop):
//  1. Anchor on the last byte of the needle. Word endings are distinctive in
//     natural text, and anchoring on the end means every candidate start is
//     distinct, so the skip loop counts overlapping occurrences for free.
//  2. Memchr scans for the anchor byte 8 bytes per step.
//  3. Each anchor hit is mapped back to a candidate start and verified with
//     a full byte comparison.
func CountOccurrences(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 || needleLen > haystackLen {
		return 0
	}

	if needleLen == 1 {
		return CountByte(haystack, needle[0])
	}

	anchor := needle[needleLen-1]
	anchorOff := needleLen - 1

	count := 0
	// The first possible anchor position is anchorOff.
	searchStart := anchorOff
	for searchStart < haystackLen {
		rel := Memchr(haystack[searchStart:], anchor)
		if rel == -1 {
			break
		}
		anchorPos := searchStart + rel
		start := anchorPos - anchorOff
		if start >= 0 && bytes.Equal(haystack[start:anchorPos+1], needle) {
			count++
		}
		searchStart = anchorPos + 1
	}
	return count
}
