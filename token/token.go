// Package token splits literary texts into tokens.
package token

import (
	"fmt"
	"unicode"

	"github.com/jdkato/prose/v2"
	"golang.org/x/text/cases"
)

// Tokenizer splits a text into tokens, punctuation included, in text
// order. Tokens keep their original case.
type Tokenizer interface {
	Tokens(text string) ([]string, error)
}

const (
	LexerName    = "lexer"
	TreebankName = "treebank"
)

// Names returns the supported tokenizer names.
func Names() []string {
	return []string{LexerName, TreebankName}
}

// New returns the tokenizer called name. The empty name is the lexer.
func New(name string) (Tokenizer, error) {
	switch name {
	case "", LexerName:
		return Words{}, nil
	case TreebankName:
		return &Treebank{}, nil
	}
	return nil, fmt.Errorf("unknown tokenizer: %q", name)
}

// Treebank tokenizes in the Penn Treebank manner: contractions are split
// ("don't" -> "do", "n't") and punctuation is separated.
type Treebank struct{}

func (t *Treebank) Tokens(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	ptoks := doc.Tokens()
	tokens := make([]string, 0, len(ptoks))
	for _, tok := range ptoks {
		tokens = append(tokens, tok.Text)
	}
	return tokens, nil
}

// Folder maps tokens to their case-folded form. It is not safe for
// concurrent use.
type Folder struct {
	caser cases.Caser
}

func NewFolder() *Folder {
	return &Folder{caser: cases.Fold()}
}

func (f *Folder) Fold(s string) string {
	return f.caser.String(s)
}

// IsWord reports whether tok holds at least one letter or digit.
func IsWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
