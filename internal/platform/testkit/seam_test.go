package testkit

import "testing"

var parseFn = func(s string) int { return len(s) }

func TestSwap_ReplacesAndRestores(t *testing.T) {
	// swap inside a subtest so Cleanup fires before the outer assertions
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &parseFn, func(string) int { return -1 })
		if got := parseFn("README.md"); got != -1 {
			t.Fatalf("swap did not take effect, got %d", got)
		}
	})

	if got := parseFn("README.md"); got != 9 {
		t.Fatalf("swap did not restore the original, got %d", got)
	}
}
