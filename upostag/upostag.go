// Package upostag enumerates the closed inventory of Universal
// part-of-speech tags. Names returns the ordered name list that the
// lexer takes as its tag registry.
package upostag

// Tag is a Universal part-of-speech tag.
type Tag uint8

// The Universal POS tags, in registry order.
const (
	ADJ   Tag = iota // adjective
	ADP              // adposition
	ADV              // adverb
	AUX              // auxiliary
	CCONJ            // coordinating conjunction
	DET              // determiner
	INTJ             // interjection
	NOUN             // noun
	NUM              // numeral
	PART             // particle
	PRON             // pronoun
	PROPN            // proper noun
	PUNCT            // punctuation
	SCONJ            // subordinating conjunction
	SYM              // symbol
	VERB             // verb
	X                // other
)

var tagNames = [...]string{
	"ADJ", "ADP", "ADV", "AUX", "CCONJ", "DET", "INTJ", "NOUN", "NUM",
	"PART", "PRON", "PROPN", "PUNCT", "SCONJ", "SYM", "VERB", "X",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return ""
}

// Parse returns the tag named by name.
func Parse(name string) (Tag, bool) {
	for i := range tagNames {
		if tagNames[i] == name {
			return Tag(i), true
		}
	}
	return 0, false
}

// Names returns the ordered tag names. The returned slice is a copy,
// the registry itself cannot be mutated.
func Names() []string {
	names := make([]string, len(tagNames))
	copy(names, tagNames[:])
	return names
}
