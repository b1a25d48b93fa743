package index

import "encoding/binary"

// Signature packs pattern bytes 2..5 into a little-endian uint32.
//
// The value is opaque: the kernel compares it bytewise against the four text
// bytes following a candidate's bucket key, nothing more. A pattern shorter
// than MinKernelPatternLen has no signature; callers must check first.
func Signature(p []byte) uint32 {
	_ = p[MinKernelPatternLen-1] // bounds hint
	return uint32(p[2]) | uint32(p[3])<<8 | uint32(p[4])<<16 | uint32(p[5])<<24
}

// SignatureTables holds one dense 256×256 signature matrix per bucket depth.
//
// Each table is a row-major byte slice of TableDim*TableDim little-endian
// uint32 cells, laid out exactly as the kernel's table buffer expects, so a
// depth's table can be uploaded with a single buffer write. A zero cell
// means "no pattern at this depth for this byte pair".
type SignatureTables struct {
	tables [][]byte
}

// BuildSignatures derives the per-depth signature tables from the bucket
// table. The shape is fixed by MaxDepth and independent of which buckets
// are populated.
func BuildSignatures(patterns [][]byte, bt *BucketTable) *SignatureTables {
	depth := bt.MaxDepth()
	s := &SignatureTables{
		tables: make([][]byte, depth),
	}

	for d := 0; d < depth; d++ {
		s.tables[d] = make([]byte, TableDim*TableDim*SignatureSize)
	}

	for b0 := 0; b0 < TableDim; b0++ {
		for b1 := 0; b1 < TableDim; b1++ {
			bucket := bt.Bucket(byte(b0), byte(b1))
			for d, id := range bucket {
				cell := CellOffset(byte(b0), byte(b1))
				binary.LittleEndian.PutUint32(s.tables[d][cell:], Signature(patterns[id]))
			}
		}
	}

	return s
}

// Depth returns the number of tables (the bucket table's MaxDepth).
func (s *SignatureTables) Depth() int {
	return len(s.tables)
}

// Table returns the raw depth-d table in upload-ready layout. The returned
// slice is owned by the tables and must not be mutated.
func (s *SignatureTables) Table(d int) []byte {
	return s.tables[d]
}

// CellOffset returns the byte offset of the (b0, b1) cell within a table.
func CellOffset(b0, b1 byte) int {
	return (int(b0)*TableDim + int(b1)) * SignatureSize
}
