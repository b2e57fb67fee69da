package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which population count kernel is active so CI logs show
// whether the hardware path was exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("BITKIT_SIMD=%q\n", os.Getenv("BITKIT_SIMD"))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())

	switch runtime.GOARCH {
	case "amd64":
		fmt.Printf("  POPCNT: %v\n", HasPOPCNT())
	case "arm64":
		fmt.Printf("  ASIMD (NEON): %v\n", HasASIMD())
	}

	fmt.Printf("==========================\n\n")

	os.Exit(m.Run())
}
