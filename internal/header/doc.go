// Package header handles parsing of idx file headers.
//
// Every idx file starts with a 4-byte big-endian magic number that names the
// file kind, followed by one big-endian 4-byte dimension field per axis of the
// payload. Two kinds are recognised:
//
//	Offset  Size  Label file        Image file
//	0       4     magic (2049)      magic (2051)
//	4       4     label count       image count
//	8       4     -                 row count
//	12      4     -                 column count
//
// The payload follows immediately after the last dimension field.
//
// # Usage
//
// Read the magic number first, then the header matching it:
//
//	r := binary.NewReader(src)
//	kind, err := header.ReadKind(r)
//	if errors.Is(err, header.ErrUnknownMagic) {
//	    // Not an idx label or image file
//	}
//	h, err := header.ReadImage(r)
//
// [ReadLabelFile] and [ReadImageFile] combine both steps and fail with
// [ErrWrongMagic] before reading any dimension when the magic does not match.
//
// # Errors
//
//   - [ErrWrongMagic]: Magic number does not match the requested kind
//   - [ErrUnknownMagic]: Magic number matches neither kind
//   - binary.ErrTruncated: Stream ended inside the header
package header
