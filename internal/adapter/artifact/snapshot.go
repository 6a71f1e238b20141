// Package artifact writes the file artifacts of a build: compressed entry
// snapshots, their checksums and the run manifest.
package artifact

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// WriteSnapshot streams entries as a gzip-compressed JSON array to path.
// An existing file is an ErrOverwriteConflict unless force is set.
// The gzip header carries no name or timestamp, so equal input produces
// equal bytes.
func WriteSnapshot(path string, entries []domain.DictionaryEntry, force bool) (err error) {
	if err := checkOverwrite(path, force); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("gzip writer: %w", err)
	}
	bw := bufio.NewWriter(zw)

	if err := encodeArray(bw, entries); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish gzip stream: %w", err)
	}
	return nil
}

// encodeArray writes entries one element at a time so the whole document
// never has to exist in memory.
func encodeArray(w *bufio.Writer, entries []domain.DictionaryEntry) error {
	if err := w.WriteByte('['); err != nil {
		return err
	}
	for i, e := range entries {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("entry %q: %w", e.Word, err)
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return w.WriteByte(']')
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) ([]domain.DictionaryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	var entries []domain.DictionaryEntry
	if err := json.NewDecoder(zr).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return entries, nil
}

// checkOverwrite applies the overwrite rule shared by all artifacts.
func checkOverwrite(path string, force bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil && !force:
		return fmt.Errorf("%w: %s", domain.ErrOverwriteConflict, path)
	case err == nil:
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing %s: %w", path, err)
		}
		return nil
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
