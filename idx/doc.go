// Package idx decodes the idx binary format used by the MNIST handwritten
// digit dataset.
//
// An idx file is a big-endian header followed by a raw byte payload. Label
// files (magic 2049) carry one dimension, the label count, and one byte per
// label. Image files (magic 2051) carry three dimensions, the image, row and
// column counts, and one byte per pixel in row-major order.
//
// # Decoding
//
// Use a decoder for the kind you expect:
//
//	labels, err := idx.ParseLabels(f)
//	images, err := idx.ParseImages(f)
//
// or let [Decode] pick the decoder from the magic number:
//
//	ds, err := idx.Decode(f)
//	switch ds.Kind {
//	case idx.KindLabels:
//	    use(ds.Labels)
//	case idx.KindImages:
//	    use(ds.Images)
//	}
//
// A decoder fails with [ErrWrongMagic] after reading only the 4-byte magic
// field, so callers holding an io.Seeker may also rewind and try the other
// decoder.
//
// # Payload Length
//
// The header counts are not checked against the payload by default. The
// label decoder returns every byte after the header. The image decoder cuts
// the payload into images of rows*cols bytes and drops any trailing partial
// image; surplus complete images are kept. [WithStrict] turns any difference
// from the declared size into [ErrLengthMismatch].
//
// Decoders hold no state between calls and are safe for concurrent use.
// SetLogger may be called at any time; decoders pick up the new logger on
// their next call.
package idx
