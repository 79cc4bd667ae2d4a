package lexer

import (
	"strconv"
	"strings"
)

// decodeFunc turns a matched lexeme into its typed value. Decoders are
// pure and total functions of the lexeme text alone.
type decodeFunc func(lexeme string) any

// IDRange is the decoded value of a TokenRangeID: the inclusive span of
// word ids covered by a multiword token.
type IDRange struct {
	Start int
	End   int
}

// DecimalID is the decoded value of a TokenDecimalID, identifying an
// empty node.
type DecimalID struct {
	Major int
	Minor int
}

// Feature is a single morphological feature: a name with its ordered
// list of values.
type Feature struct {
	Name   string
	Values []string
}

// Dep is a single head:deprel pair of the enhanced dependency graph.
type Dep struct {
	Head   int
	Deprel string
}

func decodeIntegerID(lexeme string) any {
	return atoi(lexeme)
}

func decodeRangeID(lexeme string) any {
	start, end, _ := strings.Cut(lexeme, "-")
	return IDRange{Start: atoi(start), End: atoi(end)}
}

func decodeDecimalID(lexeme string) any {
	major, minor, _ := strings.Cut(lexeme, ".")
	return DecimalID{Major: atoi(major), Minor: atoi(minor)}
}

// decodeVerbatim keeps the lexeme as is, a literal "_" included: FORM
// and LEMMA are never nullable.
func decodeVerbatim(lexeme string) any {
	return lexeme
}

func decodeNullableText(lexeme string) any {
	if lexeme == "_" {
		return nil
	}
	return lexeme
}

func decodeHead(lexeme string) any {
	if lexeme == "_" {
		return nil
	}
	return atoi(lexeme)
}

func decodeFeats(lexeme string) any {
	if lexeme == "_" {
		return nil
	}

	pairs := strings.Split(lexeme, "|")
	feats := make([]Feature, 0, len(pairs))
	for _, pair := range pairs {
		name, values, _ := strings.Cut(pair, "=")
		feats = append(feats, Feature{Name: name, Values: strings.Split(values, ",")})
	}
	return feats
}

func decodeDeps(lexeme string) any {
	if lexeme == "_" {
		return nil
	}

	pairs := strings.Split(lexeme, "|")
	deps := make([]Dep, 0, len(pairs))
	for _, pair := range pairs {
		// Only the first colon splits: the deprel may contain ":".
		head, deprel, _ := strings.Cut(pair, ":")
		deps = append(deps, Dep{Head: atoi(head), Deprel: deprel})
	}
	return deps
}

func decodeComment(lexeme string) any {
	return strings.TrimSpace(lexeme[1:])
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
