package lexer

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// Sub-grammars the column matchers are composed from, as regular
// expression fragments.
const (
	// Name of a morphological feature (left part of a pair), with an
	// optional bracketed sub-key.
	featName = `[A-Z0-9][A-Z0-9a-z]*(\[[a-z0-9]+\])?`

	// Single value of a morphological feature (right part of a pair).
	featValue = `[A-Z0-9][a-zA-Z0-9]*`

	// Comma-joined list of feature values.
	featValues = featValue + `(,` + featValue + `)*`

	// One name=values feature pair.
	featPair = featName + `=` + featValues

	// Whole number without a leading zero, except for a bare "0". Used
	// by the HEAD column, dependency pairs and the major part of an
	// empty node id.
	wholeNumber = `[1-9][0-9]+|[0-9]`

	// Deprel part of a head:deprel pair.
	depDeprel = `[^\n\t ]+`

	// One head:deprel pair.
	depPair = `(` + wholeNumber + `):` + depDeprel

	commentText = `#[^\n]*`

	integerID = `[1-9][0-9]*`
	rangeID   = integerID + `-` + integerID
	decimalID = `(` + wholeNumber + `)\.` + integerID

	// Free text, tab-terminated: FORM and LEMMA.
	anyText = `[^\n\t]+`

	// Free text without spaces: XPOS, DEPREL and MISC.
	spacelessText = `[^\n\t ]+`
)

type rule struct {
	tt     TokenType
	match  *regexp.Regexp
	decode decodeFunc
}

// Rules is the compiled matcher set for every CoNLL-U column. A Rules
// value is immutable once compiled and can be shared by any number of
// lexer instances, concurrent ones included.
type Rules struct {
	comment *regexp.Regexp

	// Id variants, tried in order; the longest match wins.
	ids []rule

	// One rule per column, indexed 1 (FORM) to 9 (MISC).
	columns [10]rule
}

// Compile builds the matcher set from the injected part-of-speech tag
// registry. The registry only shapes the UPOS column: "one of these
// names, or _". Blank names are skipped; a registry with no usable
// names yields ErrEmptyTagSet.
func Compile(tags []string) (*Rules, error) {
	names := make([]string, 0, len(tags))
	for _, name := range tags {
		if name == "" {
			continue
		}
		names = append(names, regexp.QuoteMeta(name))
	}
	if len(names) == 0 {
		return nil, ErrEmptyTagSet
	}

	// The regexp engine takes the first matching alternative, so longer
	// names go first: PRON must not shadow PROPN.
	slices.SortStableFunc(names, func(a, b string) int {
		return len(b) - len(a)
	})

	var (
		upos  = `(` + strings.Join(names, `|`) + `)|_`
		feats = `(` + featPair + `([|]` + featPair + `)*)|_`
		head  = `(` + wholeNumber + `)|_`
		deps  = `(` + depPair + `([|]` + depPair + `)*)|_`
	)

	r := &Rules{
		comment: compile(commentText),
		ids: []rule{
			{TokenRangeID, compile(rangeID), decodeRangeID},
			{TokenDecimalID, compile(decimalID), decodeDecimalID},
			{TokenIntegerID, compile(integerID), decodeIntegerID},
		},
	}

	cols := []rule{
		{TokenForm, compile(anyText), decodeVerbatim},
		{TokenLemma, compile(anyText), decodeVerbatim},
		{TokenUpos, compile(upos), decodeNullableText},
		{TokenXpos, compile(spacelessText), decodeNullableText},
		{TokenFeats, compile(feats), decodeFeats},
		{TokenHead, compile(head), decodeHead},
		{TokenDeprel, compile(spacelessText), decodeNullableText},
		{TokenDeps, compile(deps), decodeDeps},
		{TokenMisc, compile(spacelessText), decodeNullableText},
	}
	for i := range cols {
		r.columns[i+1] = cols[i]
	}

	return r, nil
}

// compile anchors pat at the cursor position.
func compile(pat string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + pat + `)`)
}
