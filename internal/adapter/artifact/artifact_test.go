package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

func sampleEntries() []domain.DictionaryEntry {
	study := domain.NewEntry("学习", domain.SourceCEDICT)
	study.Reading = "学习"
	study.Pronunciation = "xue2 xi2"
	study.AddForms("學習")
	study.AddDefinitions("to study", "to learn")
	study.SetMeta("traditional", "學習")

	good := domain.NewEntry("好", domain.SourceCEDICT)
	good.AddDefinitions("good")

	return []domain.DictionaryEntry{study, good}
}

func TestWriteSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "zh-en.json.gz")

	require.NoError(t, WriteSnapshot(path, sampleEntries(), false))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "学习", got[0].Word)
	assert.Equal(t, []string{"学习", "學習"}, got[0].Forms)
	assert.Equal(t, []string{"to study", "to learn"}, got[0].Definitions)
	assert.Equal(t, "學習", got[0].Metadata["traditional"])
	assert.Nil(t, got[1].Metadata)
}

func TestWriteSnapshot_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json.gz")

	require.NoError(t, WriteSnapshot(path, nil, false))

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteSnapshot_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zh-en.json.gz")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	err := WriteSnapshot(path, sampleEntries(), false)
	assert.True(t, errors.Is(err, domain.ErrOverwriteConflict))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))

	require.NoError(t, WriteSnapshot(path, sampleEntries(), true))
	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWriteSnapshot_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json.gz")
	b := filepath.Join(dir, "b.json.gz")

	require.NoError(t, WriteSnapshot(a, sampleEntries(), false))
	require.NoError(t, WriteSnapshot(b, sampleEntries(), false))

	sumA, err := Checksum(a)
	require.NoError(t, err)
	sumB, err := Checksum(b)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)
}

func TestChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	got, err := Checksum(path)
	require.NoError(t, err)

	want := sha256.Sum256([]byte("abc"))
	assert.Equal(t, hex.EncodeToString(want[:]), got)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)

	_, err = Checksum(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWriteManifest_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	m := &domain.Manifest{
		RunID:       "7f1f0a52-7c3e-4b8e-9d6b-1c2f3e4d5a6b",
		GeneratedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Mode:        domain.BuildModeSample,
		Dictionaries: []domain.ManifestEntry{{
			Language:  domain.LanguageZhEn,
			Entries:   2,
			Files:     domain.ArtifactFiles{SQLite: "zh-en.sqlite", Snapshot: "zh-en.json.gz"},
			Checksums: domain.ArtifactFiles{SQLite: "aa", Snapshot: "bb"},
			Source:    domain.SourceCEDICT,
		}},
	}

	require.NoError(t, WriteManifest(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"generatedAt": "2026-10-18T12:00:00Z"`)
	assert.Contains(t, string(raw), `"mode": "sample"`)

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
