//go:build !debug

package ut

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Assert is a no-op in release builds.
func Assert(bool, string) {}
