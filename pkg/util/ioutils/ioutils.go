package ioutils

import "io"

// QuiteClose closes c and swallows the error. Meant for defers on
// response bodies and files opened read-only.
func QuiteClose(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
