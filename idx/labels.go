package idx

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-mnist/internal/binary"
	"github.com/robert-malhotra/go-mnist/internal/header"
)

// LabelDecoder decodes idx label files.
type LabelDecoder struct {
	opts *options
}

// NewLabelDecoder creates a label decoder with the given options.
func NewLabelDecoder(opts ...Option) *LabelDecoder {
	return &LabelDecoder{opts: newOptions(opts)}
}

// ParseLabels decodes a label file with a decoder built from opts.
func ParseLabels(r io.Reader, opts ...Option) ([]uint8, error) {
	return NewLabelDecoder(opts...).Parse(r)
}

// Parse reads a label file from r and returns every payload byte as a label,
// in file order. The values are expected, not verified, to be digits 0-9.
func (d *LabelDecoder) Parse(r io.Reader) ([]uint8, error) {
	br := binary.NewReader(r)
	h, err := header.ReadLabelFile(br)
	if err != nil {
		return nil, err
	}
	return d.readPayload(br, h)
}

func (d *LabelDecoder) readPayload(br *binary.Reader, h header.Label) ([]uint8, error) {
	log := d.opts.log()
	log.Debug("idx label header loaded", zap.Uint32("count", h.Count))

	labels, err := br.ReadRest(d.opts.hint(h.PayloadSize()))
	if err != nil {
		return nil, err
	}

	if got := uint64(len(labels)); got != h.PayloadSize() {
		if d.opts.strict {
			return nil, fmt.Errorf("%w: label file declares %d labels, payload has %d bytes",
				ErrLengthMismatch, h.Count, got)
		}
		log.Warn("idx label count mismatch",
			zap.Uint32("declared", h.Count),
			zap.Int("actual", len(labels)),
			zap.Int64("end_offset", br.Pos()))
	}

	if labels == nil {
		labels = []uint8{}
	}
	return labels, nil
}
