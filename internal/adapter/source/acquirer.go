// Package source downloads raw dictionary archives into the local raw cache.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// Known source names.
const (
	NameWiktionary = domain.SourceWiktionary
	NameCEDICT     = domain.SourceCEDICT
	NameJMdict     = domain.SourceJMdict
)

// Source describes one remote archive and its file name in the raw cache.
type Source struct {
	Name     string
	URL      string
	FileName string
}

// Wiktionary returns the Kaikki English extract source.
func Wiktionary(url string) Source {
	return Source{Name: NameWiktionary, URL: url, FileName: "kaikki-english.jsonl.gz"}
}

// CEDICT returns the CC-CEDICT source.
func CEDICT(url string) Source {
	return Source{Name: NameCEDICT, URL: url, FileName: "cedict_ts.u8.gz"}
}

// JMdict returns the JMdict source.
func JMdict(url string) Source {
	return Source{Name: NameJMdict, URL: url, FileName: "JMdict.gz"}
}

// Acquirer makes raw archives available on disk, downloading them on demand.
type Acquirer struct {
	rawDir     string
	force      bool
	httpClient *http.Client
	log        *slog.Logger
}

// NewAcquirer creates an Acquirer writing into rawDir. With force set,
// cached files are downloaded again.
func NewAcquirer(rawDir string, force bool, timeout time.Duration, logger *slog.Logger) *Acquirer {
	return &Acquirer{
		rawDir:     rawDir,
		force:      force,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "source"),
	}
}

// Path returns the cache location of src.
func (a *Acquirer) Path(src Source) string {
	return filepath.Join(a.rawDir, src.FileName)
}

// Ensure returns the local path of src, fetching it unless it is already
// cached. Any transport failure, non-2xx status or missing body is
// reported as domain.ErrAcquisition.
func (a *Acquirer) Ensure(ctx context.Context, src Source) (string, error) {
	dest := a.Path(src)

	if !a.force {
		if info, err := os.Stat(dest); err == nil && !info.IsDir() {
			a.log.DebugContext(ctx, "using cached source",
				slog.String("source", src.Name),
				slog.String("path", dest),
			)
			return dest, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("source %s: create raw dir: %w", src.Name, err)
	}

	a.log.InfoContext(ctx, "downloading source",
		slog.String("source", src.Name),
		slog.String("url", src.URL),
	)
	start := time.Now()

	n, err := a.download(ctx, src, dest)
	if err != nil {
		a.log.ErrorContext(ctx, "source download failed",
			slog.String("source", src.Name),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	a.log.InfoContext(ctx, "source downloaded",
		slog.String("source", src.Name),
		slog.String("path", dest),
		slog.Int64("bytes", n),
		slog.Duration("duration", time.Since(start)),
	)
	return dest, nil
}

// download streams the response body into a temp file next to dest and
// renames it into place.
func (a *Acquirer) download(ctx context.Context, src Source, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: create request: %v", domain.ErrAcquisition, src.Name, err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrAcquisition, src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %s: unexpected status %d", domain.ErrAcquisition, src.Name, resp.StatusCode)
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return 0, fmt.Errorf("%w: %s: empty response body", domain.ErrAcquisition, src.Name)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+src.FileName+".*.part")
	if err != nil {
		return 0, fmt.Errorf("source %s: create temp file: %w", src.Name, err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s: read body: %v", domain.ErrAcquisition, src.Name, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s: empty response body", domain.ErrAcquisition, src.Name)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, fmt.Errorf("source %s: move into place: %w", src.Name, err)
	}
	return n, nil
}
