// Package bytealg holds the element search primitives the tracker uses to
// skip over stretches of the subject where no candidate can start.
package bytealg

import "bytes"

// IndexElem returns the index of the first element of s equal to e, or -1.
// Byte slices go through bytes.IndexByte.
func IndexElem[E comparable](s []E, e E) int {
	if b, ok := any(s).([]byte); ok {
		return bytes.IndexByte(b, any(e).(byte))
	}
	for i, v := range s {
		if v == e {
			return i
		}
	}
	return -1
}
