// Package goid extracts the identifier of the calling goroutine for use as
// the thread field of log events.
package goid

import (
	"bytes"
	"runtime"
)

var prefix = []byte("goroutine ")

// ID returns the current goroutine id as decimal text. It parses the first
// line of the goroutine's stack dump ("goroutine N [running]:"), which is the
// only portable way to obtain the id. Returns an empty string if the header
// cannot be parsed.
func ID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	b := buf[:n]

	if !bytes.HasPrefix(b, prefix) {
		return ""
	}
	b = b[len(prefix):]
	if idx := bytes.IndexByte(b, ' '); idx > 0 {
		return string(b[:idx])
	}
	return ""
}
