package csv

// streaming.go holds the reader wrappers applied to spreadsheet exports
// before decoding:
//
//   - BOMReader drops a leading UTF-8 BOM. Spreadsheet exports saved
//     through Excel often carry one, and it would otherwise end up glued to
//     the first header name.
//   - UTF8Sanitizer replaces invalid UTF-8 bytes with '?'.
//   - CountingReader tracks the raw bytes read, for logging and metrics.
//
// WrapForDecoding applies all three in the required order.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMReader struct {
	br      *bufio.Reader
	checked bool
}

// NewBOMReader creates a BOM-skipping reader.
func NewBOMReader(r io.Reader) *BOMReader {
	return &BOMReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader.
func (r *BOMReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true
		head, err := r.br.Peek(len(utf8BOM))
		if err != nil && err != io.EOF {
			return 0, err
		}
		if bytes.Equal(head, utf8BOM) {
			_, _ = r.br.Discard(len(utf8BOM))
		}
	}
	return r.br.Read(p)
}

// UTF8Sanitizer wraps an io.Reader and replaces invalid UTF-8 bytes with
// '?' on the fly. A multi-byte sequence split across two reads is held back
// until the next read completes it.
type UTF8Sanitizer struct {
	reader  io.Reader
	pending []byte
}

// NewUTF8Sanitizer creates a streaming UTF-8 sanitizer.
func NewUTF8Sanitizer(r io.Reader) *UTF8Sanitizer {
	return &UTF8Sanitizer{
		reader:  r,
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

// Read implements io.Reader.
func (s *UTF8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := 0
	if len(s.pending) > 0 {
		offset = copy(p, s.pending)
		s.pending = s.pending[:0]
	}

	n, err := s.reader.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	if isASCII(p[:n]) {
		return n, err
	}

	return s.sanitize(p[:n], err == io.EOF), err
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// sanitize rewrites data in place and returns the number of bytes kept.
// Unless atEOF, an incomplete trailing sequence is moved to pending.
func (s *UTF8Sanitizer) sanitize(data []byte, atEOF bool) int {
	if utf8.Valid(data) {
		if !atEOF {
			if k := incompleteTail(data); k > 0 {
				s.pending = append(s.pending, data[len(data)-k:]...)
				return len(data) - k
			}
		}
		return len(data)
	}

	write := 0
	for read := 0; read < len(data); {
		r, size := utf8.DecodeRune(data[read:])

		if !atEOF && read+size >= len(data) && sequenceLen(data[read]) > len(data)-read {
			s.pending = append(s.pending, data[read:]...)
			return write
		}

		if r == utf8.RuneError && size == 1 {
			data[write] = '?'
			write++
			read++
			continue
		}
		copy(data[write:], data[read:read+size])
		write += size
		read += size
	}
	return write
}

// incompleteTail returns how many trailing bytes start a multi-byte
// sequence that is not finished yet.
func incompleteTail(data []byte) int {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			if i < sequenceLen(b) {
				return i
			}
			return 0
		}
		if b&0xC0 != 0x80 {
			return 0
		}
	}
	return 0
}

// sequenceLen is the encoded length announced by a UTF-8 lead byte.
func sequenceLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

// CountingReader tracks the number of bytes read through it.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapForDecoding strips a BOM and sanitizes UTF-8. The returned counter
// sees the raw input, before either rewrite.
func WrapForDecoding(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewUTF8Sanitizer(NewBOMReader(counter)), counter
}
