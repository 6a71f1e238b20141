package cedict

import (
	"bytes"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictbuild/pkg/linestream"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     Line
		wantSkip bool
	}{
		{
			name: "study",
			line: "學習 学习 [xue2 xi2] /to study/to learn/",
			want: Line{Traditional: "學習", Simplified: "学习", Pronunciation: "xue2 xi2", Definitions: []string{"to study", "to learn"}},
		},
		{
			name: "identical forms",
			line: "好 好 [hao3] /good/",
			want: Line{Traditional: "好", Simplified: "好", Pronunciation: "hao3", Definitions: []string{"good"}},
		},
		{
			name: "windows line ending",
			line: "茶 茶 [cha2] /tea/\r",
			want: Line{Traditional: "茶", Simplified: "茶", Pronunciation: "cha2", Definitions: []string{"tea"}},
		},
		{name: "comment", line: "# CC-CEDICT", wantSkip: true},
		{name: "empty", line: "", wantSkip: true},
		{name: "no brackets", line: "學習 学习 /to study/", wantSkip: true},
		{name: "no definitions", line: "空 空 [kong1] //", wantSkip: true},
		{name: "prose", line: "this line is not an entry", wantSkip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantSkip {
				assert.True(t, errors.Is(err, errSkipLine), "expected errSkipLine, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLine_Entry(t *testing.T) {
	line, err := ParseLine("學習 学习 [xue2 xi2] /to study/to learn/")
	require.NoError(t, err)

	e := line.Entry()
	assert.Equal(t, "学习", e.Word)
	assert.Equal(t, "学习", e.Reading)
	assert.Equal(t, "xue2 xi2", e.Pronunciation)
	assert.Equal(t, []string{"学习", "學習"}, e.Forms)
	assert.Equal(t, []string{"to study", "to learn"}, e.Definitions)
	assert.Equal(t, "cc-cedict", e.Source)
	assert.Equal(t, "學習", e.Metadata["traditional"])
	assert.Equal(t, "学习", e.Metadata["simplified"])
	assert.Equal(t, "xue2 xi2", e.Metadata["pronunciation"])
	assert.NoError(t, e.Validate())
}

func TestReverseKeys(t *testing.T) {
	tests := []struct {
		name string
		defs []string
		want []string
	}{
		{"infinitive stripped", []string{"to study", "to learn"}, []string{"study", "learn"}},
		{"semicolon split", []string{"good; well"}, []string{"good", "well"}},
		{"aside dropped", []string{"(after a personal pronoun) to be fine"}, []string{"be fine", "befine"}},
		{"phrase compacted", []string{"ice cream"}, []string{"ice cream", "icecream"}},
		{"duplicates collapsed", []string{"to study", "study"}, []string{"study"}},
		{"pinyin letters kept", []string{"學|学[xue2]"}, []string{"xue"}},
		{"nothing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseKeys(tt.defs))
		})
	}
}

func TestParseFile(t *testing.T) {
	res, err := ParseFile(testdataPath(t, "sample.u8"))
	require.NoError(t, err)

	assert.Equal(t, 10, res.Stats.TotalLines)
	assert.Equal(t, 3, res.Stats.CommentLines)
	assert.Equal(t, 3, res.Stats.SkippedLines)
	assert.Equal(t, 4, res.Stats.ParsedLines)
	require.Len(t, res.Entries, 4)

	study := res.Entries[0]
	assert.Equal(t, []string{"学习", "學習"}, study.Forms)
	assert.Equal(t, "学习", study.Reading)
	assert.Equal(t, "xue2 xi2", study.Pronunciation)
	assert.Equal(t, []string{"to study", "to learn"}, study.Definitions)

	assert.Equal(t, []string{"学习", "學習"}, res.Map.Lookup("study"))
	assert.Equal(t, []string{"学习", "學習"}, res.Map.Lookup("learn"))
	assert.Equal(t, []string{"中国", "中國"}, res.Map.Lookup("china"))
	assert.Equal(t, []string{"好"}, res.Map.Lookup("good"))
	assert.Equal(t, []string{"冰淇淋"}, res.Map.Lookup("icecream"))
}

func TestParse_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("學習 学习 [xue2 xi2] /to study/to learn/\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	res, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "学习", res.Entries[0].Word)
}

func TestParse_Empty(t *testing.T) {
	res, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Equal(t, 0, res.Map.Len())
}

func TestParse_OversizedLineSkipped(t *testing.T) {
	input := "學習 学习 [xue2 xi2] /" + strings.Repeat("x", linestream.MaxLineSize) + "/\n" +
		"貓 猫 [mao1] /cat/\n"

	res, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Stats.TotalLines)
	assert.Equal(t, 1, res.Stats.SkippedLines)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "猫", res.Entries[0].Word)
}
