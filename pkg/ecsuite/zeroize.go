package ecsuite

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents
// compiler dead store elimination using runtime.KeepAlive.
//
// This follows the pattern discussed in golang/go#33325. It cannot
// guarantee complete sanitization (the garbage collector and the primitive
// libraries may hold copies), but it is the accepted practice for sensitive
// buffers in Go. The suites apply it to decoded private-key material after
// signing; callers holding their own key buffers should do the same.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
