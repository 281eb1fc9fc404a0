package token

import (
	"io"
	"unicode"
)

// Lexer splits text into words and single punctuation runes. A word is a
// run of letters and digits; an apostrophe or hyphen between two such
// runes stays inside the word.
type Lexer struct {
	content []rune
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

// TrimLeft trims empty spaces from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && unicode.IsSpace(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWord chops the longest word at the start of the content.
func (l *Lexer) ChopWord() []rune {
	n := 0
	for n < len(l.content) {
		r := l.content[n]
		if isWordRune(r) {
			n++
			continue
		}
		if isJoiner(r) && n > 0 && n+1 < len(l.content) && isWordRune(l.content[n+1]) {
			n++
			continue
		}
		break
	}
	return l.Chop(n)
}

// NextToken returns the next token, or nil at the end of the content.
func (l *Lexer) NextToken() []rune {
	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}

	if isWordRune(l.content[0]) {
		return l.ChopWord()
	}

	return l.Chop(1)
}

// Next returns the next token as a string, io.EOF when there is none.
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "", io.EOF
	}
	return string(token), nil
}

// Words is the Tokenizer built on Lexer. Its zero value is ready to use.
type Words struct{}

var _ Tokenizer = Words{}

// Tokens lexes text to the end. Lexing never fails.
func (Words) Tokens(text string) ([]string, error) {
	lx := NewLexer(text)

	var tokens []string
	for tok := lx.NextToken(); tok != nil; tok = lx.NextToken() {
		tokens = append(tokens, string(tok))
	}

	return tokens, nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r)
}

// isJoiner reports the apostrophes and hyphens kept inside words.
func isJoiner(r rune) bool {
	switch r {
	case '\'', '’', '-', '‐':
		return true
	}
	return false
}
