package idx_test

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/robert-malhotra/go-mnist/idx"
)

func ExampleParseLabels() {
	data := []byte{0x00, 0x00, 0x08, 0x01, 0x00, 0x00, 0x00, 0x02, 0x01, 0x02}

	labels, err := idx.ParseLabels(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(labels)
	// Output: [1 2]
}

func ExampleParseImages_gzip() {
	// MNIST files are distributed gzip-compressed; decompress before decoding.
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	zw.Write(imageFile(1, 2, 2, 1, 2, 3, 4))
	zw.Close()

	zr, err := gzip.NewReader(&compressed)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer zr.Close()

	images, err := idx.ParseImages(zr)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(images)
	// Output: [[[1 2] [3 4]]]
}

func ExampleDecode() {
	for _, data := range [][]byte{labelFile(3, 7, 0, 4), imageFile(2, 1, 3, 10, 20, 30, 40, 50, 60)} {
		ds, err := idx.Decode(bytes.NewReader(data))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(ds.Kind, ds.Len())
	}
	// Output:
	// labels 3
	// images 2
}

func ExampleParseImages_probe() {
	// Without Decode, a seekable source can be probed by rewinding after a
	// wrong-kind failure.
	r := bytes.NewReader(labelFile(2, 5, 9))

	if _, err := idx.ParseImages(r); err != nil {
		r.Seek(0, io.SeekStart)
	}
	labels, err := idx.ParseLabels(r)
	fmt.Println(labels, err)
	// Output: [5 9] <nil>
}
