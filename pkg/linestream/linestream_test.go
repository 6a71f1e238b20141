package linestream

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func collect(t *testing.T, data []byte) []string {
	t.Helper()
	var lines []string
	for line, err := range DecodedLines(bytes.NewReader(data)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines = append(lines, string(line))
	}
	return lines
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestDecodedLines_Plain(t *testing.T) {
	got := collect(t, []byte("one\ntwo\n\nthree"))
	want := []string{"one", "two", "", "three"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestDecodedLines_Gzip(t *testing.T) {
	got := collect(t, gzipped(t, "alpha\nbeta\n"))
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("lines = %q, want [alpha beta]", got)
	}
}

func TestDecodedLines_Empty(t *testing.T) {
	if got := collect(t, nil); len(got) != 0 {
		t.Errorf("lines = %q, want none", got)
	}
}

func TestDecodedLines_EarlyStop(t *testing.T) {
	n := 0
	for range DecodedLines(strings.NewReader("a\nb\nc\n")) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterations = %d, want 2", n)
	}
}

func TestDecodedLines_CorruptGzip(t *testing.T) {
	data := gzipped(t, strings.Repeat("line\n", 100))
	data = data[:len(data)/2]

	var gotErr error
	for _, err := range DecodedLines(bytes.NewReader(data)) {
		if err != nil {
			gotErr = err
		}
	}
	if gotErr == nil {
		t.Fatal("expected an error for truncated gzip stream")
	}
}

func TestLines_TooLongSkipped(t *testing.T) {
	input := "first\n" + strings.Repeat("x", MaxLineSize+10) + "\nlast\n"

	var (
		lines    []string
		tooLongN int
	)
	for line, err := range Lines(strings.NewReader(input)) {
		if err != nil {
			if !errors.Is(err, ErrLineTooLong) {
				t.Fatalf("unexpected error: %v", err)
			}
			tooLongN++
			continue
		}
		lines = append(lines, string(line))
	}

	if tooLongN != 1 {
		t.Errorf("oversized lines = %d, want 1", tooLongN)
	}
	if strings.Join(lines, "|") != "first|last" {
		t.Errorf("lines = %q, want [first last]", lines)
	}
}

func TestLines_TooLongAtEOF(t *testing.T) {
	var errs []error
	for _, err := range Lines(strings.NewReader(strings.Repeat("x", MaxLineSize+1))) {
		errs = append(errs, err)
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrLineTooLong) {
		t.Fatalf("errs = %v, want one ErrLineTooLong", errs)
	}
}

func TestLines_ExactlyMaxSize(t *testing.T) {
	n := 0
	for line, err := range Lines(strings.NewReader(strings.Repeat("y", MaxLineSize) + "\n")) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(line) != MaxLineSize {
			t.Errorf("len = %d, want %d", len(line), MaxLineSize)
		}
		n++
	}
	if n != 1 {
		t.Errorf("lines = %d, want 1", n)
	}
}

func TestLines_CRLF(t *testing.T) {
	var got []string
	for line, err := range Lines(strings.NewReader("a\r\nb\r\n")) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, string(line))
	}
	if strings.Join(got, "|") != "a|b" {
		t.Errorf("lines = %q, want [a b]", got)
	}
}
