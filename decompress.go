package exprset

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Downloaded expression matrices are very often compressed (GEO supplements
// ship gzipped). Rather than requiring callers to decompress first, the
// loader sniffs magic bytes and wraps the stream.
var magicBytes = []struct {
	sig  []byte
	open func(io.Reader) (io.Reader, error)
}{
	{[]byte{0x1f, 0x8b, 0x08}, func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) }},
	{[]byte{0x50, 0x4b, 0x03, 0x04}, func(r io.Reader) (io.Reader, error) { return zipstream.NewReader(r), nil }},
	{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, func(r io.Reader) (io.Reader, error) { return xz.NewReader(r, 0) }},
	{[]byte{0x1f, 0x9d}, func(r io.Reader) (io.Reader, error) { return zlib.NewReader(r) }},
	{[]byte{0x42, 0x5a, 0x68}, func(r io.Reader) (io.Reader, error) { return bzip2.NewReader(r), nil }},
}

// MaybeDecompress wraps r in the decompressor matching its leading magic
// bytes, or returns the stream untouched when no known signature matches.
func MaybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	for _, m := range magicBytes {
		if len(head) >= len(m.sig) && bytes.Equal(head[:len(m.sig)], m.sig) {
			return m.open(br)
		}
	}

	return br, nil
}
