package scn

import (
	"compress/flate"
	"fmt"
	"io"
)

// decompressBody inflates the remainder of the stream once the header has
// been consumed. The body is a raw DEFLATE stream (no zlib/gzip wrapper).
// The returned buffer is the sole source for all body reads; the original
// stream is not consulted again.
func decompressBody(src io.Reader) ([]byte, error) {
	fr := flate.NewReader(src)
	defer fr.Close()

	body, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("decompress body: %w", err)
	}
	return body, nil
}
