//go:build amd64

package compute

import "golang.org/x/sys/cpu"

// probeDeviceName names the host CPU device after the widest vector
// extension it reports. The name is informational (logging, diagnostics);
// dispatch behavior does not depend on it.
func probeDeviceName() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "cpu/avx512"
	case cpu.X86.HasAVX2:
		return "cpu/avx2"
	case cpu.X86.HasSSSE3:
		return "cpu/ssse3"
	default:
		return "cpu/generic"
	}
}
