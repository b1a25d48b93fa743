package engine

import (
	"bytes"
	"fmt"

	"github.com/grailbio/base/log"

	"github.com/coregx/sigmatch/compute"
	"github.com/coregx/sigmatch/index"
	"github.com/coregx/sigmatch/internal/conv"
	"github.com/coregx/sigmatch/refmatch"
)

// Count returns the occurrence count of every pattern in the text, indexed
// by pattern id. Occurrences overlap; the reference scanner and the kernel
// path cover disjoint pattern sets, so each id is counted by exactly one of
// them.
func (e *Engine) Count(text []byte) ([]uint64, error) {
	// Reference side: short patterns seed the vector, and kernel-length
	// patterns the kernel cannot see are scanned exactly.
	counts := e.short.Counts(text)
	e.stats.addShortScans(1)
	for _, id := range e.buckets.HostOnly() {
		counts[id] = refmatch.Count(text, e.patterns[id])
	}

	depth := e.sigs.Depth()
	if depth == 0 {
		return counts, nil
	}

	if !e.config.EnableKernel {
		for id, p := range e.patterns {
			if index.KernelEligible(p) {
				counts[id] = refmatch.Count(text, p)
			}
		}
		return counts, nil
	}

	if len(text) < index.MinKernelPatternLen {
		// Every bucketed pattern is longer than the text.
		return counts, nil
	}

	if err := e.runKernels(text, counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// runKernels drives the device pipeline: upload the text once, then per
// depth rewrite the shared signature-table buffer, dispatch the kernel over
// ⌈N/2⌉ work items, read the depth's answers back, and verify them.
//
// The single queue is in-order, so the table rewrite for depth d+1 cannot
// overtake the kernel of depth d even though all commands are enqueued up
// front. Answer buffers are per depth; the final counts do not depend on
// the order depths are drained in, because increments are additive and each
// (position, id) pair is produced by at most one depth.
func (e *Engine) runKernels(text []byte, counts []uint64) error {
	n := len(text)
	depth := e.sigs.Depth()

	queue := e.device.NewQueue()
	defer queue.Release()

	textBuf, err := e.device.NewBuffer(n)
	if err != nil {
		return fmt.Errorf("text buffer: %w", err)
	}
	tableBuf, err := e.device.NewBuffer(index.TableDim * index.TableDim * index.SignatureSize)
	if err != nil {
		return fmt.Errorf("signature table buffer: %w", err)
	}
	if err := queue.EnqueueWrite(textBuf, text).Wait(); err != nil {
		return fmt.Errorf("text upload: %w", err)
	}

	global := (n + 1) / 2
	answerBufs := make([]*compute.Buffer, depth)
	kernelEvents := make([]*compute.Event, depth)

	for d := 0; d < depth; d++ {
		answerBufs[d], err = e.device.NewBuffer(2 * n)
		if err != nil {
			return fmt.Errorf("answer buffer depth %d: %w", d, err)
		}
		// The rewrite's size matches the allocation; any queue failure
		// surfaces through the kernel event below.
		queue.EnqueueWrite(tableBuf, e.sigs.Table(d))
		k := &signatureKernel{
			text:    textBuf.Bytes(),
			textLen: conv.IntToUint32(n),
			table:   tableBuf.Bytes(),
			answers: answerBufs[d].Bytes(),
		}
		kernelEvents[d] = queue.EnqueueKernel(k, global)
	}
	e.stats.addKernelLaunches(uint64(depth))

	answers := make([]byte, 2*n)
	for d := 0; d < depth; d++ {
		if err := kernelEvents[d].Wait(); err != nil {
			return fmt.Errorf("kernel depth %d: %w", d, err)
		}
		if err := queue.EnqueueRead(answerBufs[d], answers).Wait(); err != nil {
			return fmt.Errorf("answer readback depth %d: %w", d, err)
		}
		e.verifyDepth(text, answers, d, counts)
	}
	return nil
}

// verifyDepth resolves the flagged positions of one depth against the full
// patterns and increments the per-id counts.
//
// A flagged position carries the bucket key; the depth picks the id within
// the bucket. The kernel has already proven bytes 0..5, so only the pattern
// tail needs comparing, and a tail that would run past the end of the text
// fails. The kernel only flags positions whose bucket holds an entry at this
// depth — a missing entry would be an index construction bug, hence the
// panic.
func (e *Engine) verifyDepth(text []byte, answers []byte, d int, counts []uint64) {
	var candidates, verified, falsePositives uint64

	limit := len(text) - index.MinKernelPatternLen
	for n := 0; n <= limit; n++ {
		b0 := answers[2*n]
		b1 := answers[2*n+1]
		if b0 == 0 && b1 == 0 {
			continue
		}

		bucket := e.buckets.Bucket(b0, b1)
		if d >= len(bucket) {
			panic("engine: flagged candidate without bucket entry")
		}
		id := bucket[d]
		p := e.patterns[id]
		candidates++

		if len(p) == index.MinKernelPatternLen {
			counts[id]++
			verified++
			continue
		}
		end := n + len(p)
		if end <= len(text) && bytes.Equal(text[n+index.MinKernelPatternLen:end], p[index.MinKernelPatternLen:]) {
			counts[id]++
			verified++
		} else {
			falsePositives++
		}
	}

	e.stats.addVerification(candidates, verified, falsePositives)
	if log.At(log.Debug) {
		log.Debug.Printf("engine: depth %d: %d candidates, %d verified, %d false positives",
			d, candidates, verified, falsePositives)
	}
}
