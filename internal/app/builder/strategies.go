package builder

import (
	"context"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// enZhStrategy: English headwords with Chinese translations from Wiktionary.
type enZhStrategy struct{}

func (enZhStrategy) Language() domain.Language { return domain.LanguageEnZh }
func (enZhStrategy) Source() string            { return domain.SourceWiktionary }

func (enZhStrategy) Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error) {
	res, err := bc.Wiktionary(ctx)
	if err != nil {
		return nil, err
	}
	return res.Entries, nil
}

func (enZhStrategy) Fixtures() []domain.DictionaryEntry { return fixturesEnZh() }

// enEnStrategy: English headwords with English glosses from Wiktionary.
type enEnStrategy struct{}

func (enEnStrategy) Language() domain.Language { return domain.LanguageEnEn }
func (enEnStrategy) Source() string            { return domain.SourceWiktionary }

func (enEnStrategy) Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error) {
	res, err := bc.Wiktionary(ctx)
	if err != nil {
		return nil, err
	}
	return res.References, nil
}

func (enEnStrategy) Fixtures() []domain.DictionaryEntry { return fixturesEnEn() }

// zhEnStrategy: Chinese headwords with English definitions from CC-CEDICT.
type zhEnStrategy struct{}

func (zhEnStrategy) Language() domain.Language { return domain.LanguageZhEn }
func (zhEnStrategy) Source() string            { return domain.SourceCEDICT }

func (zhEnStrategy) Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error) {
	res, err := bc.CEDICT(ctx)
	if err != nil {
		return nil, err
	}
	return res.Entries, nil
}

func (zhEnStrategy) Fixtures() []domain.DictionaryEntry { return fixturesZhEn() }

// jaEnStrategy: Japanese headwords with English glosses from JMdict.
type jaEnStrategy struct{}

func (jaEnStrategy) Language() domain.Language { return domain.LanguageJaEn }
func (jaEnStrategy) Source() string            { return domain.SourceJMdict }

func (jaEnStrategy) Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error) {
	res, err := bc.JMdict(ctx)
	if err != nil {
		return nil, err
	}
	return res.EnglishEntries(), nil
}

func (jaEnStrategy) Fixtures() []domain.DictionaryEntry { return fixturesJaEn() }

// jaZhStrategy: Japanese headwords with Chinese definitions, taken from
// native JMdict glosses or translated through the combined map.
type jaZhStrategy struct{}

func (jaZhStrategy) Language() domain.Language { return domain.LanguageJaZh }
func (jaZhStrategy) Source() string            { return domain.SourceJMdictTranslated }

func (jaZhStrategy) Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error) {
	res, err := bc.JMdict(ctx)
	if err != nil {
		return nil, err
	}
	m, err := bc.CombinedMap(ctx)
	if err != nil {
		return nil, err
	}
	return res.CrossEntries(m), nil
}

func (jaZhStrategy) Fixtures() []domain.DictionaryEntry { return fixturesJaZh() }
