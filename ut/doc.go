// Package ut holds the precondition-check layer shared by the container
// packages. Checks compile to panics under the debug build tag and to
// no-ops otherwise; release builds rely on the runtime's native bounds
// checks for out-of-range access.
package ut
