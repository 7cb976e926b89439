package header

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-mnist/internal/binary"
)

// Magic numbers identifying the two idx file kinds.
const (
	LabelMagic uint32 = 2049
	ImageMagic uint32 = 2051
)

// Errors
var (
	ErrWrongMagic   = errors.New("invalid magic number")
	ErrUnknownMagic = errors.New("unknown idx magic number")
)

// Kind identifies an idx file kind by its magic number.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindLabels
	KindImages
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLabels:
		return "labels"
	case KindImages:
		return "images"
	default:
		return "unknown"
	}
}

// Magic returns the magic number for the kind, or 0 for KindUnknown.
func (k Kind) Magic() uint32 {
	switch k {
	case KindLabels:
		return LabelMagic
	case KindImages:
		return ImageMagic
	default:
		return 0
	}
}

// KindOf maps a magic number to its kind.
func KindOf(magic uint32) Kind {
	switch magic {
	case LabelMagic:
		return KindLabels
	case ImageMagic:
		return KindImages
	default:
		return KindUnknown
	}
}

// Label is the header of a label file.
type Label struct {
	// Count is the declared number of labels.
	Count uint32
}

// PayloadSize returns the declared payload length in bytes.
func (h Label) PayloadSize() uint64 {
	return uint64(h.Count)
}

// Image is the header of an image file.
type Image struct {
	Count uint32 // number of images
	Rows  uint32 // rows per image
	Cols  uint32 // pixels per row
}

// ImageSize returns the number of bytes in one image.
func (h Image) ImageSize() uint64 {
	return uint64(h.Rows) * uint64(h.Cols)
}

// PayloadSize returns the declared payload length in bytes.
// The product of three 32-bit values can exceed 64 bits; the result then
// saturates at the maximum uint64.
func (h Image) PayloadSize() uint64 {
	size := h.ImageSize()
	if size != 0 && uint64(h.Count) > ^uint64(0)/size {
		return ^uint64(0)
	}
	return size * uint64(h.Count)
}

// ReadKind reads the magic number and classifies it. An unrecognised magic
// returns KindUnknown together with ErrUnknownMagic.
func ReadKind(r *binary.Reader) (Kind, error) {
	magic, err := r.ReadUint32()
	if err != nil {
		return KindUnknown, fmt.Errorf("reading magic number: %w", err)
	}
	kind := KindOf(magic)
	if kind == KindUnknown {
		return KindUnknown, fmt.Errorf("%w: %d", ErrUnknownMagic, magic)
	}
	return kind, nil
}

// expectMagic reads the magic number and checks it against want.
func expectMagic(r *binary.Reader, want Kind) error {
	magic, err := r.ReadUint32()
	if err != nil {
		return fmt.Errorf("reading magic number: %w", err)
	}
	if magic != want.Magic() {
		return fmt.Errorf("%w for %s file: got %d, want %d", ErrWrongMagic, want, magic, want.Magic())
	}
	return nil
}

// ReadLabel reads the dimension field of a label file. The magic number must
// already have been consumed.
func ReadLabel(r *binary.Reader) (Label, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return Label{}, fmt.Errorf("reading label count: %w", err)
	}
	return Label{Count: count}, nil
}

// ReadImage reads the three dimension fields of an image file. The magic
// number must already have been consumed.
func ReadImage(r *binary.Reader) (Image, error) {
	dims, err := r.ReadUint32s(3)
	if err != nil {
		return Image{}, fmt.Errorf("reading image dimensions: %w", err)
	}
	return Image{Count: dims[0], Rows: dims[1], Cols: dims[2]}, nil
}

// ReadLabelFile validates the label magic number and reads the label header.
func ReadLabelFile(r *binary.Reader) (Label, error) {
	if err := expectMagic(r, KindLabels); err != nil {
		return Label{}, err
	}
	return ReadLabel(r)
}

// ReadImageFile validates the image magic number and reads the image header.
func ReadImageFile(r *binary.Reader) (Image, error) {
	if err := expectMagic(r, KindImages); err != nil {
		return Image{}, err
	}
	return ReadImage(r)
}
