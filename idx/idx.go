package idx

import (
	"io"

	"github.com/robert-malhotra/go-mnist/internal/binary"
	"github.com/robert-malhotra/go-mnist/internal/header"
)

// Magic numbers identifying the two idx file kinds.
const (
	LabelMagic = header.LabelMagic
	ImageMagic = header.ImageMagic
)

// Kind identifies an idx file kind.
type Kind = header.Kind

// File kinds.
const (
	KindUnknown = header.KindUnknown
	KindLabels  = header.KindLabels
	KindImages  = header.KindImages
)

// LabelHeader holds the dimensions of a label file.
type LabelHeader = header.Label

// ImageHeader holds the dimensions of an image file.
type ImageHeader = header.Image

// Image is one decoded image: a list of rows, each a list of pixel
// intensities from 0 to 255.
type Image [][]uint8

// Rows returns the number of rows.
func (img Image) Rows() int {
	return len(img)
}

// Cols returns the number of pixels per row, or 0 for an empty image.
func (img Image) Cols() int {
	if len(img) == 0 {
		return 0
	}
	return len(img[0])
}

// At returns the pixel at row y, column x.
func (img Image) At(y, x int) uint8 {
	return img[y][x]
}

// ReadLabelHeader validates the label magic number and returns the header,
// leaving r positioned at the start of the payload.
func ReadLabelHeader(r io.Reader) (LabelHeader, error) {
	return header.ReadLabelFile(binary.NewReader(r))
}

// ReadImageHeader validates the image magic number and returns the header,
// leaving r positioned at the start of the payload.
func ReadImageHeader(r io.Reader) (ImageHeader, error) {
	return header.ReadImageFile(binary.NewReader(r))
}
