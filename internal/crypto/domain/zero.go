package domain

// Zero overwrites every given buffer with zeros. Nil buffers are ignored.
func Zero(buffers ...[]byte) {
	for _, b := range buffers {
		clear(b)
	}
}
