package engine

import (
	"encoding/binary"

	"github.com/coregx/sigmatch/index"
)

// signatureKernel is the per-depth candidate kernel.
//
// For each text position n it computes the bucket key (T[n], T[n+1]), looks
// up the depth's signature for that key, and compares it against the packed
// text bytes T[n+2..n+6]. A non-zero signature that matches flags the
// position by writing the key pair into the answer array; everything else —
// including positions too close to the end of the text for a minimum-length
// match — yields the (0, 0) tuple.
//
// One work item covers two adjacent positions: the byte reads of neighbor
// positions overlap, and halving the dispatch width halves the per-item
// overhead.
//
// All fields are read-only during a dispatch except answers, and distinct
// work items write distinct answer cells.
type signatureKernel struct {
	text    []byte // device copy of the text
	textLen uint32
	table   []byte // device copy of the depth's signature table
	answers []byte // one 2-byte tuple per position
}

// Run evaluates positions 2*id and 2*id+1.
func (k *signatureKernel) Run(id int) {
	n := 2 * id
	k.eval(n)
	k.eval(n + 1)
}

func (k *signatureKernel) eval(n int) {
	if uint32(n) >= k.textLen {
		return
	}
	if uint32(n)+index.MinKernelPatternLen > k.textLen {
		// No minimum-length match can start here.
		k.answers[2*n] = 0
		k.answers[2*n+1] = 0
		return
	}

	b0 := k.text[n]
	b1 := k.text[n+1]
	sig := binary.LittleEndian.Uint32(k.table[index.CellOffset(b0, b1):])
	cand := binary.LittleEndian.Uint32(k.text[n+2:])

	if sig != 0 && sig == cand {
		k.answers[2*n] = b0
		k.answers[2*n+1] = b1
	} else {
		k.answers[2*n] = 0
		k.answers[2*n+1] = 0
	}
}
