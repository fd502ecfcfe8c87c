// Package memzero wipes secrets held in byte slices.
package memzero

import "runtime"

// Zero overwrites b with zeros. The write is kept alive so the compiler
// cannot drop it when b is not read afterwards.
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
