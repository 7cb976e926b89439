package idx

import (
	"errors"

	"github.com/robert-malhotra/go-mnist/internal/binary"
	"github.com/robert-malhotra/go-mnist/internal/header"
)

// Common errors
var (
	// ErrTruncated reports that the stream ended inside a header field.
	// Errors wrapping it also match io.ErrUnexpectedEOF.
	ErrTruncated = binary.ErrTruncated

	// ErrWrongMagic reports that the file is not of the kind the decoder reads.
	ErrWrongMagic = header.ErrWrongMagic

	// ErrUnknownKind reports a magic number that is neither LabelMagic nor ImageMagic.
	ErrUnknownKind = header.ErrUnknownMagic

	// ErrLengthMismatch reports, in strict mode, a payload whose length differs
	// from the size declared by the header.
	ErrLengthMismatch = errors.New("payload length does not match header")
)
