package compute

import "fmt"

// Buffer is fixed-size device-resident byte memory.
//
// Host code moves data in and out through Queue.EnqueueWrite and
// Queue.EnqueueRead; kernels access the storage directly through Bytes.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a device buffer of the given size in bytes.
// A negative size yields ErrAllocation.
func (d *Device) NewBuffer(size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, size)
	}
	return &Buffer{data: make([]byte, size)}, nil
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int { return len(b.data) }

// Bytes exposes the device-resident storage for kernel arguments.
//
// The returned slice aliases the buffer for its whole lifetime, so a kernel
// enqueued on an in-order queue observes whatever the most recent preceding
// write put there. Host code must not touch it while commands that use the
// buffer are in flight.
func (b *Buffer) Bytes() []byte { return b.data }
