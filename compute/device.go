package compute

import (
	"fmt"
	"runtime"

	"github.com/grailbio/base/traverse"
)

// Device is a named data-parallel execution resource.
//
// A Device is immutable after construction and may back any number of
// queues and buffers. The worker count bounds how many work-item ranges of
// a kernel dispatch execute concurrently.
type Device struct {
	name    string
	workers int
}

// Default returns a device over the host CPU. The name reflects the widest
// vector extension the CPU reports (see probeDeviceName), the worker count
// is the scheduler's processor count.
func Default() (*Device, error) {
	return NewDevice(probeDeviceName(), runtime.GOMAXPROCS(0))
}

// NewDevice constructs a device with an explicit worker count.
// A worker count below one yields ErrDeviceUnavailable.
func NewDevice(name string, workers int) (*Device, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d workers", ErrDeviceUnavailable, workers)
	}
	return &Device{name: name, workers: workers}, nil
}

// Name returns the device name, e.g. "cpu/avx2".
func (d *Device) Name() string { return d.name }

// Workers returns the device's concurrent worker count.
func (d *Device) Workers() int { return d.workers }

// dispatch executes one kernel over global work items, partitioning the id
// range evenly across the device workers. It returns after every work item
// has run.
func (d *Device) dispatch(k Kernel, global int) error {
	if global <= 0 {
		return nil
	}
	workers := d.workers
	if workers > global {
		workers = global
	}
	return traverse.Each(workers, func(w int) error {
		lo := w * global / workers
		hi := (w + 1) * global / workers
		for id := lo; id < hi; id++ {
			k.Run(id)
		}
		return nil
	})
}
