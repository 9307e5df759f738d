package common

// WipeByteArray overwrites the buffer with zeros. Used to clear password
// bytes once they have been sent to the backend.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
