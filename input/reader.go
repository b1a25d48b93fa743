// Package input reads and writes the matcher's wire format.
//
// A problem is a byte stream: an ASCII decimal text length, one whitespace
// byte, the raw text bytes, one whitespace byte, an ASCII decimal pattern
// count, then one length-prefixed block per pattern in the same shape. The
// explicit lengths are what allow texts and patterns to contain whitespace
// and NUL bytes.
package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
)

// Problem is one parsed counting task.
type Problem struct {
	// Text is the haystack.
	Text []byte

	// Patterns are the needles; slice position is the pattern id.
	Patterns [][]byte
}

// ReadProblem parses a problem from the stream.
//
// Leading whitespace before each decimal is skipped; a block's payload is
// read verbatim. A malformed stream (missing digits, truncated payload,
// negative or overflowing sizes) yields a wrapped, human-readable error.
func ReadProblem(r io.Reader) (*Problem, error) {
	br := bufio.NewReader(r)

	text, err := readBlock(br)
	if err != nil {
		return nil, errors.E(err, "reading text")
	}

	k, err := readDecimal(br)
	if err != nil {
		return nil, errors.E(err, "reading pattern count")
	}

	patterns := make([][]byte, 0, k)
	for i := 0; i < k; i++ {
		p, err := readBlock(br)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("reading pattern %d of %d", i+1, k))
		}
		patterns = append(patterns, p)
	}

	return &Problem{Text: text, Patterns: patterns}, nil
}

// readBlock reads one length-prefixed payload: decimal length, one
// separator byte, then exactly that many raw bytes, then one trailing
// separator byte (absent at end of stream).
func readBlock(br *bufio.Reader) ([]byte, error) {
	n, err := readDecimal(br)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}

	// One separator byte between the length and the payload.
	if _, err := br.ReadByte(); err != nil {
		return nil, errors.E(err, "block separator")
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(br, payload); err != nil {
		return nil, errors.E(err, fmt.Sprintf("block payload of %d bytes", n))
	}

	// Trailing separator; end of stream is fine after the last block.
	if _, err := br.ReadByte(); err != nil && err != io.EOF {
		return nil, errors.E(err, "block terminator")
	}
	return payload, nil
}

// maxDecimal caps parsed sizes well below int overflow.
const maxDecimal = 1 << 40

// readDecimal skips leading whitespace and parses a non-negative ASCII
// decimal.
func readDecimal(br *bufio.Reader) (int, error) {
	c, err := skipSpace(br)
	if err != nil {
		return 0, err
	}
	if c < '0' || c > '9' {
		return 0, errors.E(fmt.Sprintf("expected decimal, found byte %#x", c))
	}

	n := 0
	for {
		n = n*10 + int(c-'0')
		if n > maxDecimal {
			return 0, errors.E("decimal too large")
		}
		c, err = br.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if err := br.UnreadByte(); err != nil {
				return 0, err
			}
			return n, nil
		}
	}
}

// skipSpace consumes whitespace bytes and returns the first byte after.
func skipSpace(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			continue
		default:
			return c, nil
		}
	}
}

// WriteCounts writes one line per pattern: "<i> <count>", 1-based.
func WriteCounts(w io.Writer, counts []uint64) error {
	bw := bufio.NewWriter(w)
	for i, c := range counts {
		if _, err := fmt.Fprintf(bw, "%d %d\n", i+1, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}
