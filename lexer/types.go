package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenNewLine             // Line break: "\n"
	TokenTab                 // Column separator: "\t"
	TokenComment             // Comment row: "#" up to the end of the line
	TokenIntegerID           // Word id: "4"
	TokenRangeID             // Multiword token id: "4-5"
	TokenDecimalID           // Empty node id: "8.1"
	TokenForm                // Word form or punctuation symbol
	TokenLemma               // Lemma of the word form
	TokenUpos                // Universal part-of-speech tag
	TokenXpos                // Language-specific part-of-speech tag
	TokenFeats               // Morphological features list
	TokenHead                // Head of the current word
	TokenDeprel              // Universal dependency relation to the head
	TokenDeps                // Enhanced dependency graph
	TokenMisc                // Any other annotation
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenNewLine:   "newline",
	TokenTab:       "tab",
	TokenComment:   "comment",
	TokenIntegerID: "integer_id",
	TokenRangeID:   "range_id",
	TokenDecimalID: "decimal_id",
	TokenForm:      "form",
	TokenLemma:     "lemma",
	TokenUpos:      "upos",
	TokenXpos:      "xpos",
	TokenFeats:     "feats",
	TokenHead:      "head",
	TokenDeprel:    "deprel",
	TokenDeps:      "deps",
	TokenMisc:      "misc",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
