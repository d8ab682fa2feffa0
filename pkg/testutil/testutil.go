// Package testutil contains common test utilities.
package testutil

// Errorfer wraps the Helper and Errorf methods. It is a subset of
// [testing.TB], thus satisfied by [*testing.T] and [*testing.B].
type Errorfer interface {
	Helper()
	Errorf(format string, args ...any)
}
