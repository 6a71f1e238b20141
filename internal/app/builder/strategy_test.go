package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictbuild/internal/adapter/source"
	"github.com/heartmarshall/dictbuild/internal/domain"
)

func TestDefaultRegistry_Dispatch(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, domain.AllLanguages, r.Languages())

	for _, lang := range domain.AllLanguages {
		s, ok := r.Dispatch(lang)
		require.True(t, ok, "no strategy for %s", lang)
		assert.Equal(t, lang, s.Language())
		assert.NotEmpty(t, s.Source())
	}

	_, ok := r.Dispatch("fr-en")
	assert.False(t, ok)
}

func TestRegistry_LaterStrategyWins(t *testing.T) {
	first := &strategyMock{lang: domain.LanguageEnZh, source: "first"}
	second := &strategyMock{lang: domain.LanguageEnZh, source: "second"}
	extra := &strategyMock{lang: "de-en", source: "extra"}

	r := NewRegistry(extra, first, second)

	s, ok := r.Dispatch(domain.LanguageEnZh)
	require.True(t, ok)
	assert.Equal(t, "second", s.Source())
	assert.Equal(t, []domain.Language{domain.LanguageEnZh, "de-en"}, r.Languages())
}

func TestFixtures_Valid(t *testing.T) {
	for _, lang := range domain.AllLanguages {
		t.Run(lang.String(), func(t *testing.T) {
			s, ok := DefaultRegistry().Dispatch(lang)
			require.True(t, ok)

			fixtures := s.Fixtures()
			require.NotEmpty(t, fixtures)
			for _, e := range fixtures {
				assert.NoError(t, e.Validate(), "fixture %q", e.Word)
				assert.NotEmpty(t, e.Source)
			}
		})
	}
}

func TestFixtures_FreshCopies(t *testing.T) {
	s := enZhStrategy{}
	a := s.Fixtures()
	a[0].Definitions[0] = "changed"

	assert.Equal(t, "你好", s.Fixtures()[0].Definitions[0])
}

func TestStrategies_BuildFromSources(t *testing.T) {
	acq := testdataAcquirer(t)
	bc := NewBuildContext(acq, testSources(), testLogger())
	ctx := context.Background()

	tests := []struct {
		strategy Strategy
		words    []string
	}{
		{enZhStrategy{}, []string{"diligence"}},
		{enEnStrategy{}, []string{"diligence", "walk"}},
		{zhEnStrategy{}, []string{"学习", "猫"}},
		{jaEnStrategy{}, []string{"勉強", "猫"}},
		{jaZhStrategy{}, []string{"勉強", "猫"}},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.Language().String(), func(t *testing.T) {
			entries, err := tt.strategy.Build(ctx, bc)
			require.NoError(t, err)

			var words []string
			for _, e := range entries {
				words = append(words, e.Word)
			}
			assert.Equal(t, tt.words, words)
		})
	}

	// Each source is acquired once and then served from the context.
	assert.Equal(t, 1, acq.Calls(source.NameWiktionary))
	assert.Equal(t, 1, acq.Calls(source.NameCEDICT))
	assert.Equal(t, 1, acq.Calls(source.NameJMdict))
}

func TestJaZhStrategy_TranslatesThroughCombinedMap(t *testing.T) {
	bc := NewBuildContext(testdataAcquirer(t), testSources(), testLogger())

	entries, err := jaZhStrategy{}.Build(context.Background(), bc)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	benkyou := entries[0]
	assert.Equal(t, "勉強", benkyou.Word)
	assert.Equal(t, "べんきょう", benkyou.Reading)
	// "study" resolves through CC-CEDICT, "diligence" through Wiktionary.
	assert.Equal(t, []string{"勤奮", "学习", "學習"}, benkyou.Definitions)
	assert.Equal(t, domain.SourceJMdictTranslated, benkyou.Source)

	neko := entries[1]
	assert.Equal(t, []string{"猫"}, neko.Definitions)
	assert.Equal(t, domain.SourceJMdict, neko.Source)
}
