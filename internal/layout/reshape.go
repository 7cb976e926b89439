package layout

// Chunk splits buf into consecutive, non-overlapping pieces of exactly size
// bytes. A trailing remainder shorter than size is dropped. The pieces alias
// buf. A size of 0 yields no pieces.
func Chunk(buf []byte, size uint64) [][]byte {
	if size == 0 || uint64(len(buf)) < size {
		return nil
	}
	n := uint64(len(buf)) / size
	out := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		out = append(out, buf[i*size:(i+1)*size:(i+1)*size])
	}
	return out
}

// Remainder returns how many trailing bytes Chunk drops for the given size.
func Remainder(n int, size uint64) int {
	if size == 0 {
		return n
	}
	return int(uint64(n) % size)
}

// Reshape partitions a row-major buffer into images of rows*cols bytes, each
// split into rows of cols bytes. Every row is copied into its own slice so
// the result does not retain buf. Bytes that do not fill a complete image
// are dropped.
func Reshape(buf []byte, rows, cols uint32) [][][]byte {
	imageSize := uint64(rows) * uint64(cols)
	chunks := Chunk(buf, imageSize)
	images := make([][][]byte, 0, len(chunks))
	for _, chunk := range chunks {
		image := make([][]byte, 0, rows)
		for _, row := range Chunk(chunk, uint64(cols)) {
			image = append(image, append([]byte(nil), row...))
		}
		images = append(images, image)
	}
	return images
}
