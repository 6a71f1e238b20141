// Package jmdict parses the JMdict XML dictionary into Japanese→English and
// Japanese→Chinese entries.
package jmdict

// xmlEntry mirrors one <entry> element. Every repeatable element is a slice
// so a document with a single occurrence still decodes the same way.
type xmlEntry struct {
	KEle  []xmlKEle  `xml:"k_ele"`
	REle  []xmlREle  `xml:"r_ele"`
	Sense []xmlSense `xml:"sense"`
}

type xmlKEle struct {
	Keb []string `xml:"keb"`
}

type xmlREle struct {
	Reb []string `xml:"reb"`
}

type xmlSense struct {
	POS   []string   `xml:"pos"`
	Gloss []xmlGloss `xml:"gloss"`
}

// xmlGloss matches both <gloss> and <gloss xml:lang="...">.
type xmlGloss struct {
	Lang string `xml:"lang,attr"`
	Text string `xml:",chardata"`
}

// Record is the language-neutral view of one JMdict entry.
type Record struct {
	Word    string
	Reading string
	Forms   []string
	POS     []string
	English []string
	Native  []string
}

// Result holds the parsed JMdict data.
type Result struct {
	Records []Record
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	Entries          int
	SkippedEntries   int
	MalformedEntries int
	EnglishGlossed   int
	NativeGlossed    int
}
