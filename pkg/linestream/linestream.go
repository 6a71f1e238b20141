// Package linestream exposes raw source archives as lazy, single-pass
// sequences of lines. Gzip input is detected by its magic bytes and
// decompressed on the fly, so callers never buffer a whole payload.
package linestream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/klauspost/compress/gzip"
)

// MaxLineSize is the largest line Lines accepts (16 MB).
const MaxLineSize = 16 << 20

var gzipMagic = []byte{0x1f, 0x8b}

// Open returns a reader over the decoded content of r.
// Gzip streams are decompressed; anything else is passed through.
// Closing the returned reader does not close r.
func Open(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64<<10)

	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("peek header: %w", err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return io.NopCloser(br), nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	return zr, nil
}

// ErrLineTooLong is yielded in place of a line longer than MaxLineSize.
// It is not terminal: iteration continues with the next line.
var ErrLineTooLong = errors.New("line too long")

// Lines yields every line of r without its trailing newline (or "\r\n").
// The yielded slice is only valid until the next iteration.
// An oversized line yields ErrLineTooLong and is skipped; any other read
// error is yielded once as the final element.
func Lines(r io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		br := bufio.NewReaderSize(r, 64<<10)

		var buf []byte
		for {
			line, tooLong, err := readLine(br, buf[:0])
			buf = line
			if err != nil && !errors.Is(err, io.EOF) {
				yield(nil, fmt.Errorf("read line: %w", err))
				return
			}
			eof := err != nil
			if eof && len(line) == 0 && !tooLong {
				return
			}

			if tooLong {
				if !yield(nil, fmt.Errorf("%w: exceeds %d bytes", ErrLineTooLong, MaxLineSize)) {
					return
				}
			} else if !yield(trimEOL(line), nil) {
				return
			}
			if eof {
				return
			}
		}
	}
}

// readLine appends the next line, newline included, to dst. Once the line
// outgrows MaxLineSize its bytes are discarded up to the next newline.
func readLine(br *bufio.Reader, dst []byte) ([]byte, bool, error) {
	tooLong := false
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			dst = append(dst, chunk...)
			if len(trimEOL(dst)) > MaxLineSize {
				tooLong = true
				dst = dst[:0]
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return dst, tooLong, err
	}
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// DecodedLines combines Open and Lines. The decoder is closed when the
// sequence is exhausted or the consumer stops early.
func DecodedLines(r io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		rc, err := Open(r)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rc.Close()

		for line, err := range Lines(rc) {
			if !yield(line, err) {
				return
			}
		}
	}
}
