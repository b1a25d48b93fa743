//go:build !amd64

package compute

import "golang.org/x/sys/cpu"

// probeDeviceName names the host CPU device. On arm64 the ASIMD flag is the
// baseline vector extension; everything else reports generic.
func probeDeviceName() string {
	if cpu.ARM64.HasASIMD {
		return "cpu/asimd"
	}
	return "cpu/generic"
}
