package xdict

import (
	"fmt"
	"os"
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// PrintStats reports thread/core/memory counts to stderr, in the same
// shape as the teacher's eutils.PrintStats. cmd/xwordfill prints this
// under --debug; internal/dance also consults cpuid/memory directly
// before sizing the search matrix (spec.md section 7's resource-
// exhaustion awareness).
func PrintStats() {
	ncpu := runtime.NumCPU()
	fmt.Fprintf(os.Stderr, "Thrd %d\n", ncpu)
	if cpuid.CPU.ThreadsPerCore > 0 {
		fmt.Fprintf(os.Stderr, "Core %d\n", ncpu/cpuid.CPU.ThreadsPerCore)
	}
	if cpuid.CPU.LogicalCores > 0 {
		fmt.Fprintf(os.Stderr, "Sock %d\n", ncpu/cpuid.CPU.LogicalCores)
	}
	fmt.Fprintf(os.Stderr, "Mmry %d GiB\n", memory.TotalMemory()/(1024*1024*1024))
}

// AvailableMemory returns the total system memory in bytes. internal/dance
// does not call it; its matrix-size guard reads memory.TotalMemory directly.
func AvailableMemory() uint64 {
	return memory.TotalMemory()
}
