package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		size     uint64
		expected [][]byte
	}{
		{"exact", []byte{1, 2, 3, 4}, 2, [][]byte{{1, 2}, {3, 4}}},
		{"remainder dropped", []byte{1, 2, 3, 4, 5}, 2, [][]byte{{1, 2}, {3, 4}}},
		{"shorter than size", []byte{1, 2, 3}, 4, nil},
		{"empty", nil, 3, nil},
		{"zero size", []byte{1, 2, 3}, 0, nil},
		{"size one", []byte{7, 8}, 1, [][]byte{{7}, {8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Chunk(tt.buf, tt.size))
		})
	}
}

func TestChunkCapacityIsolated(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	chunks := Chunk(buf, 2)

	// Appending to one chunk must not overwrite its neighbour.
	_ = append(chunks[0], 0xFF)
	assert.Equal(t, byte(3), buf[2])
}

func TestRemainder(t *testing.T) {
	assert.Equal(t, 2, Remainder(10, 4))
	assert.Equal(t, 0, Remainder(8, 4))
	assert.Equal(t, 5, Remainder(5, 0))
}

func TestReshape(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	expected := [][][]byte{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	}
	assert.Equal(t, expected, Reshape(buf, 2, 3))
}

func TestReshapeCopiesRows(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	images := Reshape(buf, 2, 2)

	buf[0] = 0xFF
	assert.Equal(t, byte(1), images[0][0][0], "reshaped rows must not alias the source buffer")
}

func TestReshapeDropsPartialImage(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		rows     uint32
		cols     uint32
		expected int
	}{
		{"one byte short", []byte{1, 2, 3}, 2, 2, 0},
		{"one full plus partial", []byte{1, 2, 3, 4, 5, 6}, 2, 2, 1},
		{"zero rows", []byte{1, 2, 3}, 0, 2, 0},
		{"zero cols", []byte{1, 2, 3}, 2, 0, 0},
		{"empty payload", nil, 28, 28, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := Reshape(tt.buf, tt.rows, tt.cols)
			require.NotNil(t, images)
			assert.Len(t, images, tt.expected)
		})
	}
}
