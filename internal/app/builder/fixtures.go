package builder

import "github.com/heartmarshall/dictbuild/internal/domain"

// Sample-mode entries. Built fresh on every call so callers may mutate them.

func fixturesEnZh() []domain.DictionaryEntry {
	hello := domain.NewEntry("hello", domain.SourceWiktionary)
	hello.Pronunciation = "/həˈləʊ/"
	hello.AddPOS(string(domain.PartOfSpeechInterjection))
	hello.AddDefinitions("你好", "您好")

	study := domain.NewEntry("study", domain.SourceWiktionary)
	study.AddForms("studies", "studied", "studying")
	study.AddPOS(string(domain.PartOfSpeechVerb))
	study.AddDefinitions("学习 — to acquire knowledge", "研究 — to examine closely")

	book := domain.NewEntry("book", domain.SourceWiktionary)
	book.AddForms("books")
	book.AddPOS(string(domain.PartOfSpeechNoun))
	book.AddDefinitions("书", "書")

	return []domain.DictionaryEntry{hello, study, book}
}

func fixturesEnEn() []domain.DictionaryEntry {
	hello := domain.NewEntry("hello", domain.SourceWiktionary)
	hello.Pronunciation = "/həˈləʊ/"
	hello.AddPOS(string(domain.PartOfSpeechInterjection))
	hello.AddDefinitions("A greeting said when meeting someone.")

	study := domain.NewEntry("study", domain.SourceWiktionary)
	study.AddForms("studies", "studied", "studying")
	study.AddPOS(string(domain.PartOfSpeechVerb))
	study.AddDefinitions("To acquire knowledge.", "To look at minutely.")

	return []domain.DictionaryEntry{hello, study}
}

func fixturesZhEn() []domain.DictionaryEntry {
	xuexi := domain.NewEntry("学习", domain.SourceCEDICT)
	xuexi.Reading = "学习"
	xuexi.Pronunciation = "xue2 xi2"
	xuexi.AddForms("學習")
	xuexi.AddDefinitions("to learn", "to study")

	nihao := domain.NewEntry("你好", domain.SourceCEDICT)
	nihao.Reading = "你好"
	nihao.Pronunciation = "ni3 hao3"
	nihao.AddDefinitions("hello", "hi")

	return []domain.DictionaryEntry{xuexi, nihao}
}

func fixturesJaEn() []domain.DictionaryEntry {
	benkyou := domain.NewEntry("勉強", domain.SourceJMdict)
	benkyou.Reading = "べんきょう"
	benkyou.AddForms("べんきょう")
	benkyou.AddPOS(string(domain.PartOfSpeechNoun), string(domain.PartOfSpeechVerb))
	benkyou.AddDefinitions("study", "diligence")

	neko := domain.NewEntry("猫", domain.SourceJMdict)
	neko.Reading = "ねこ"
	neko.AddForms("ねこ")
	neko.AddPOS(string(domain.PartOfSpeechNoun))
	neko.AddDefinitions("cat")

	return []domain.DictionaryEntry{benkyou, neko}
}

func fixturesJaZh() []domain.DictionaryEntry {
	benkyou := domain.NewEntry("勉強", domain.SourceJMdictTranslated)
	benkyou.Reading = "べんきょう"
	benkyou.AddForms("べんきょう")
	benkyou.AddPOS(string(domain.PartOfSpeechNoun), string(domain.PartOfSpeechVerb))
	benkyou.AddDefinitions("学习", "學習")
	benkyou.SetMeta("englishGlosses", []string{"study", "diligence"})

	neko := domain.NewEntry("猫", domain.SourceJMdict)
	neko.Reading = "ねこ"
	neko.AddForms("ねこ")
	neko.AddPOS(string(domain.PartOfSpeechNoun))
	neko.AddDefinitions("猫")

	return []domain.DictionaryEntry{benkyou, neko}
}
