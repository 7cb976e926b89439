package idx

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-mnist/internal/binary"
	"github.com/robert-malhotra/go-mnist/internal/header"
	"github.com/robert-malhotra/go-mnist/internal/layout"
)

// ImageDecoder decodes idx image files.
type ImageDecoder struct {
	opts *options
}

// NewImageDecoder creates an image decoder with the given options.
func NewImageDecoder(opts ...Option) *ImageDecoder {
	return &ImageDecoder{opts: newOptions(opts)}
}

// ParseImages decodes an image file with a decoder built from opts.
func ParseImages(r io.Reader, opts ...Option) ([]Image, error) {
	return NewImageDecoder(opts...).Parse(r)
}

// Parse reads an image file from r and reshapes the payload into images of
// Rows rows with Cols pixels each. A trailing partial image is dropped unless
// the decoder is strict.
func (d *ImageDecoder) Parse(r io.Reader) ([]Image, error) {
	br := binary.NewReader(r)
	h, err := header.ReadImageFile(br)
	if err != nil {
		return nil, err
	}
	return d.readPayload(br, h)
}

func (d *ImageDecoder) readPayload(br *binary.Reader, h header.Image) ([]Image, error) {
	log := d.opts.log()
	log.Debug("idx image header loaded",
		zap.Uint32("count", h.Count),
		zap.Uint32("rows", h.Rows),
		zap.Uint32("cols", h.Cols))

	buf, err := br.ReadRest(d.opts.hint(h.PayloadSize()))
	if err != nil {
		return nil, err
	}

	if got := uint64(len(buf)); got != h.PayloadSize() {
		if d.opts.strict {
			return nil, fmt.Errorf("%w: image file declares %d images of %dx%d (%d bytes), payload has %d bytes",
				ErrLengthMismatch, h.Count, h.Rows, h.Cols, h.PayloadSize(), got)
		}
		log.Warn("idx image payload mismatch",
			zap.Uint32("declared", h.Count),
			zap.Uint64("declared_bytes", h.PayloadSize()),
			zap.Int("actual_bytes", len(buf)),
			zap.Int("dropped_bytes", layout.Remainder(len(buf), h.ImageSize())),
			zap.Int64("end_offset", br.Pos()))
	}

	chunks := layout.Reshape(buf, h.Rows, h.Cols)
	images := make([]Image, len(chunks))
	for i, rows := range chunks {
		images[i] = Image(rows)
	}
	return images, nil
}
