package lexer

import (
	"io"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// cursorState says what the lexer expects at the cursor. Together with
// the tab count it encodes the column being read: the state is the
// column index.
type cursorState uint8

const (
	stateRowStart    cursorState = iota // start of a row: comment, id or newline
	stateSeparator                      // value consumed, expecting tab or (after MISC) newline
	stateColumnValue                    // expecting the value of column tabCount
)

// maxTabs is the number of separators in a ten-column row.
const maxTabs = 9

// Lexer walks an in-memory CoNLL-U buffer and produces typed tokens on
// demand. One instance serves one buffer: it cannot rewind, and once it
// returns an error it never resumes.
type Lexer struct {
	rules *Rules
	opts  *Opts

	input string

	pos       int // byte offset of the cursor
	line      int // 1-based line of the cursor
	lineStart int // byte offset right after the preceding newline

	state    cursorState
	tabCount int

	err error // terminal, sticky
}

// New creates a lexer over in, pulling the column matchers from rules.
// A nil opts selects the defaults.
func New(rules *Rules, in []byte, opts *Opts) *Lexer {
	if opts == nil {
		opts = NewOpts()
	}
	opts.Validate()

	return &Lexer{
		rules: rules,
		opts:  opts,
		input: string(in),
		line:  1,
	}
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted, or a *IllegalCharacterError when no rule of the current
// state matches at the cursor; either way the instance is done and any
// further call returns the same error.
func (lx *Lexer) Next() (Token, error) {
	if lx.err != nil {
		return Token{}, lx.err
	}
	if lx.pos >= len(lx.input) {
		lx.err = io.EOF
		return Token{}, lx.err
	}

	switch lx.state {
	case stateRowStart:
		return lx.lexRowStart()
	case stateSeparator:
		return lx.lexSeparator()
	default:
		return lx.lexColumnValue()
	}
}

// lexRowStart handles the first field of a row: a comment, a newline on
// a blank line, or one of the id variants.
func (lx *Lexer) lexRowStart() (Token, error) {
	switch lx.input[lx.pos] {
	case '\n':
		return lx.emitNewLine(), nil
	case '#':
		lexeme := lx.rules.comment.FindString(lx.input[lx.pos:])
		return lx.emit(TokenComment, lexeme, decodeComment(lexeme)), nil
	}

	var best rule
	var lexeme string
	for _, r := range lx.rules.ids {
		if m := r.match.FindString(lx.input[lx.pos:]); len(m) > len(lexeme) {
			best, lexeme = r, m
		}
	}
	if lexeme == "" {
		return Token{}, lx.illegal()
	}

	lx.state = stateSeparator
	lx.tabCount = 0
	return lx.emit(best.tt, lexeme, best.decode(lexeme)), nil
}

// lexSeparator handles the position right after a field value: a tab
// for columns 0..8, a newline after the last column.
func (lx *Lexer) lexSeparator() (Token, error) {
	switch {
	case lx.input[lx.pos] == '\t' && lx.tabCount < maxTabs:
		lx.tabCount++
		lx.state = stateColumnValue
		return lx.emit(TokenTab, "\t", nil), nil
	case lx.input[lx.pos] == '\n' && lx.tabCount == maxTabs:
		return lx.emitNewLine(), nil
	}
	return Token{}, lx.illegal()
}

// lexColumnValue applies the matcher of the column the tab counter
// points at.
func (lx *Lexer) lexColumnValue() (Token, error) {
	r := lx.rules.columns[lx.tabCount]

	lexeme := r.match.FindString(lx.input[lx.pos:])
	if lexeme == "" {
		return Token{}, lx.illegal()
	}

	lx.state = stateSeparator
	return lx.emit(r.tt, lexeme, r.decode(lexeme)), nil
}

func (lx *Lexer) emit(tt TokenType, lexeme string, value any) Token {
	tok := Token{
		tt:     tt,
		lexeme: lexeme,
		value:  value,
		line:   lx.line,
		col:    lx.column(),
	}
	lx.pos += len(lexeme)

	lx.opts.Logger.Debugf("emit %v %q at %d:%d, value: %s", tt, lexeme, tok.line, tok.col, spew.Sprint(value))
	return tok
}

func (lx *Lexer) emitNewLine() Token {
	tok := lx.emit(TokenNewLine, "\n", nil)

	lx.line++
	lx.lineStart = lx.pos
	lx.tabCount = 0
	lx.state = stateRowStart

	return tok
}

// column is the 1-based rune offset of the cursor from the start of the
// current line.
func (lx *Lexer) column() int {
	return utf8.RuneCountInString(lx.input[lx.lineStart:lx.pos]) + 1
}

func (lx *Lexer) illegal() error {
	c, _ := utf8.DecodeRuneInString(lx.input[lx.pos:])

	err := &IllegalCharacterError{
		Line:      lx.line,
		Column:    lx.column(),
		Character: c,
	}
	lx.err = err

	lx.opts.Logger.Debugf("halt: %v", err)
	return err
}

// Tokenize runs a fresh lexer over in and returns all the tokens within
// it, or the error that stopped the scan.
func Tokenize(rules *Rules, in []byte) ([]Token, error) {
	lx := New(rules, in, nil)

	tokens := []Token{}
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
