// Package binary provides low-level binary I/O operations for idx file parsing.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned when the stream ends before a fixed-size field
// has been read completely.
var ErrTruncated = errors.New("unexpected end of input")

// FieldSize is the width in bytes of every idx header field.
const FieldSize = 4

// Reader reads idx fields from a sequential stream. All multi-byte fields
// are big-endian.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	pos   int64
}

// NewReader creates a big-endian reader over r. The reader starts at
// position 0 regardless of where r is positioned.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:     r,
		order: binary.BigEndian,
	}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int64 {
	return r.pos
}

// ReadBytes reads exactly n bytes. A short read is reported as ErrTruncated
// and the partial data is discarded.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	r.pos += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w: need %d bytes at offset %d, got %d",
				ErrTruncated, io.ErrUnexpectedEOF, n, r.Pos()-int64(got), got)
		}
		return nil, err
	}
	return buf, nil
}

// ReadUint32 reads one 4-byte big-endian unsigned field.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(FieldSize)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadUint32s reads n consecutive fields in order.
func (r *Reader) ReadUint32s(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadRest reads everything left in the stream. hint pre-sizes the
// destination and does not limit how much is read. A payload of exactly hint
// bytes is returned without reallocation.
func (r *Reader) ReadRest(hint int) ([]byte, error) {
	if hint < 0 {
		hint = 0
	}
	buf := make([]byte, hint)
	n, err := io.ReadFull(r.r, buf)
	r.pos += int64(n)
	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		return buf[:n], nil
	case err != nil:
		return nil, fmt.Errorf("reading payload at offset %d: %w", r.Pos(), err)
	}

	rest, err := io.ReadAll(r.r)
	r.pos += int64(len(rest))
	if err != nil {
		return nil, fmt.Errorf("reading payload at offset %d: %w", r.Pos(), err)
	}
	if len(rest) == 0 {
		return buf, nil
	}
	return append(buf, rest...), nil
}
