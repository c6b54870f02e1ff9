package lebuf

func AppendUint32(b []byte, v uint32) []byte {
	return append(
		b,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
	)
}

func PutUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func Uint32At(b []byte, off int) uint32 {
	var r uint32
	r |= uint32(b[off])
	r |= uint32(b[off+1]) << 8
	r |= uint32(b[off+2]) << 16
	r |= uint32(b[off+3]) << 24
	return r
}

// Words reinterprets b as little-endian 32-bit words.
// Caller guarantees len(b) is a multiple of 4.
func Words(b []byte) []uint32 {
	w := make([]uint32, 0, len(b)/4)
	for off := 0; off+4 <= len(b); off += 4 {
		w = append(w, Uint32At(b, off))
	}
	return w
}

func Bytes(w []uint32) []byte {
	b := make([]byte, 0, len(w)*4)
	for _, v := range w {
		b = AppendUint32(b, v)
	}
	return b
}
