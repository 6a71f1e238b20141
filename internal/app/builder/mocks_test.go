package builder

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/heartmarshall/dictbuild/internal/adapter/source"
	"github.com/heartmarshall/dictbuild/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSources() Sources {
	return NewSources(
		"https://example.test/kaikki.jsonl.gz",
		"https://example.test/cedict.u8.gz",
		"https://example.test/JMdict.gz",
	)
}

// acquirerMock records every Ensure call by source name.
type acquirerMock struct {
	EnsureFunc func(ctx context.Context, src source.Source) (string, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *acquirerMock) Ensure(ctx context.Context, src source.Source) (string, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[src.Name]++
	m.mu.Unlock()
	return m.EnsureFunc(ctx, src)
}

func (m *acquirerMock) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *acquirerMock) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

// testdataAcquirer serves every source from the package testdata.
func testdataAcquirer(t *testing.T) *acquirerMock {
	files := map[string]string{
		source.NameWiktionary: testdataPath(t, "kaikki.jsonl"),
		source.NameCEDICT:     testdataPath(t, "cedict.u8"),
		source.NameJMdict:     testdataPath(t, "jmdict.xml"),
	}
	return &acquirerMock{
		EnsureFunc: func(_ context.Context, src source.Source) (string, error) {
			return files[src.Name], nil
		},
	}
}

// offlineAcquirer fails the test when any source is requested.
func offlineAcquirer(t *testing.T) *acquirerMock {
	return &acquirerMock{
		EnsureFunc: func(_ context.Context, src source.Source) (string, error) {
			t.Errorf("unexpected acquisition of %s", src.Name)
			return "", domain.ErrAcquisition
		},
	}
}

type strategyMock struct {
	lang       domain.Language
	source     string
	BuildFunc  func(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error)
	FixtureSet []domain.DictionaryEntry
}

func (m *strategyMock) Language() domain.Language { return m.lang }
func (m *strategyMock) Source() string            { return m.source }

func (m *strategyMock) Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error) {
	return m.BuildFunc(ctx, bc)
}

func (m *strategyMock) Fixtures() []domain.DictionaryEntry { return m.FixtureSet }

type storeMock struct {
	WriteFunc func(ctx context.Context, path string, lang domain.Language, entries []domain.DictionaryEntry, force bool) (int, error)
}

func (m *storeMock) Write(ctx context.Context, path string, lang domain.Language, entries []domain.DictionaryEntry, force bool) (int, error) {
	return m.WriteFunc(ctx, path, lang, entries, force)
}
