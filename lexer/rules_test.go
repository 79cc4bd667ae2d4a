package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyTagSet(t *testing.T) {
	_, err := Compile(nil)
	assert.ErrorIs(t, err, ErrEmptyTagSet)

	_, err = Compile([]string{"", ""})
	assert.ErrorIs(t, err, ErrEmptyTagSet)
}

func TestCompileQuotesTagNames(t *testing.T) {
	rules, err := Compile([]string{"N.N"})
	require.NoError(t, err)

	// "." must not act as a wildcard.
	_, err = Tokenize(rules, []byte("1\t_\t_\tNXN\t_\t_\t_\t_\t_\t_"))
	assert.Error(t, err)

	tokens, err := Tokenize(rules, []byte("1\t_\t_\tN.N\t_\t_\t_\t_\t_\t_"))
	require.NoError(t, err)
	assert.Equal(t, "N.N", tokens[6].Value())
}

func TestCompileOnlyAffectsUpos(t *testing.T) {
	a := mustCompile(t, []string{"DET"})
	b := mustCompile(t, []string{"VERB"})

	in := []byte("1\t_\t_\t_\t_\tCase=Nom\t2\tdet\t_\t_")

	ta, err := Tokenize(a, in)
	require.NoError(t, err)
	tb, err := Tokenize(b, in)
	require.NoError(t, err)

	assert.Equal(t, ta, tb)
}
