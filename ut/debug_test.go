//go:build !debug

package ut

import "testing"

func TestAssertReleaseNoop(t *testing.T) {
	if Enabled {
		t.Fatalf("expected assertions disabled")
	}
	Assert(false, "must not panic in release builds")
}
