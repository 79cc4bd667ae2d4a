package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Opts options to guide the lex operation.
	Opts struct {
		Logger logrus.FieldLogger
	}
)

// NewOpts configures the lexer's Opts.
func NewOpts() *Opts {
	return &Opts{Logger: logrus.New()}
}

// Validate populates missing Opts entries with defaults.
func (o *Opts) Validate() {
	if o.Logger == nil {
		o.Logger = logrus.New()
	}
}
