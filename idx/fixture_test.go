package idx_test

import (
	"bytes"
	"encoding/binary"
)

// idxFile builds an idx stream from a magic number, header dimensions and a
// raw payload.
func idxFile(magic uint32, dims []uint32, payload []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, magic)
	for _, d := range dims {
		binary.Write(&buf, binary.BigEndian, d)
	}
	buf.Write(payload)
	return buf.Bytes()
}

func labelFile(count uint32, payload ...byte) []byte {
	return idxFile(2049, []uint32{count}, payload)
}

func imageFile(count, rows, cols uint32, payload ...byte) []byte {
	return idxFile(2051, []uint32{count, rows, cols}, payload)
}

// sequence returns n bytes counting up from 0, wrapping at 256.
func sequence(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
