//go:build debug

package ut

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("ut: assertion failed: " + msg)
	}
}
