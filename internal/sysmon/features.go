package sysmon

import xcpu "golang.org/x/sys/cpu"

// CPUFeatures lists the SIMD extensions relevant to vectorised integer
// loops that the current CPU reports.
func CPUFeatures() []string {
	var f []string
	add := func(ok bool, name string) {
		if ok {
			f = append(f, name)
		}
	}
	add(xcpu.X86.HasSSE2, "sse2")
	add(xcpu.X86.HasSSE41, "sse4.1")
	add(xcpu.X86.HasAVX, "avx")
	add(xcpu.X86.HasAVX2, "avx2")
	add(xcpu.X86.HasAVX512F, "avx512f")
	add(xcpu.ARM64.HasASIMD, "asimd")
	add(xcpu.ARM64.HasSVE, "sve")
	return f
}
