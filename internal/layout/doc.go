// Package layout reshapes flat idx payloads into nested collections.
//
// idx image payloads are stored row-major with no padding: image 0 row 0,
// image 0 row 1, ..., image 1 row 0, and so on. [Reshape] recovers that
// structure using exact chunking. The payload is cut into fixed-size pieces
// and any remainder too short to fill a piece is discarded without error.
// Callers that need to know about discarded bytes use [Remainder].
//
// # Key Functions
//
//   - [Chunk]: Fixed-size, non-overlapping partitioning
//   - [Reshape]: Flat payload to images of rows of pixels
//   - [Remainder]: Bytes that [Chunk] would drop
package layout
