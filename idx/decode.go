package idx

import (
	"io"

	"github.com/robert-malhotra/go-mnist/internal/binary"
	"github.com/robert-malhotra/go-mnist/internal/header"
)

// Dataset is the result of Decode. Exactly one of Labels and Images is set,
// according to Kind.
type Dataset struct {
	Kind   Kind
	Labels []uint8
	Images []Image
}

// Len returns the number of decoded labels or images.
func (ds *Dataset) Len() int {
	switch ds.Kind {
	case KindLabels:
		return len(ds.Labels)
	case KindImages:
		return len(ds.Images)
	default:
		return 0
	}
}

// Decode reads the magic number from r and decodes the file with the matching
// decoder. A magic number of neither kind fails with ErrUnknownKind after
// consuming only the magic field.
func Decode(r io.Reader, opts ...Option) (*Dataset, error) {
	o := newOptions(opts)
	br := binary.NewReader(r)

	kind, err := header.ReadKind(br)
	if err != nil {
		return nil, err
	}

	if kind == KindLabels {
		h, err := header.ReadLabel(br)
		if err != nil {
			return nil, err
		}
		labels, err := (&LabelDecoder{opts: o}).readPayload(br, h)
		if err != nil {
			return nil, err
		}
		return &Dataset{Kind: kind, Labels: labels}, nil
	}

	h, err := header.ReadImage(br)
	if err != nil {
		return nil, err
	}
	images, err := (&ImageDecoder{opts: o}).readPayload(br, h)
	if err != nil {
		return nil, err
	}
	return &Dataset{Kind: kind, Images: images}, nil
}
