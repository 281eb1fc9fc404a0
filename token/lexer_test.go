package token

import (
	"io"
	"reflect"
	"testing"
)

func TestNewLexer(t *testing.T) {
	l := NewLexer("Hello World!")
	if l == nil {
		t.Fatal("NewLexer() returned nil")
	}

	if len(l.content) != 12 {
		t.Error("NewLexer() returned wrong length")
	}

	if string(l.content) != "Hello World!" {
		t.Error("NewLexer() returned wrong content")
	}
}

func TestTrimLeft(t *testing.T) {
	l := NewLexer(" \n\tHello World!")
	l.TrimLeft()
	if string(l.content) != "Hello World!" {
		t.Error("TrimLeft() failed")
	}
}

func TestChop(t *testing.T) {
	l := NewLexer("Hello World!")
	l.Chop(5)
	if string(l.content) != " World!" {
		t.Error("Chop() failed")
	}
}

func TestNext(t *testing.T) {
	l := NewLexer("Past, the river.")

	expected := []string{"Past", ",", "the", "river", "."}
	for _, want := range expected {
		got, err := l.Next()
		if err != nil {
			t.Fatalf("Next() Failed, expected %v, got %v", nil, err)
		}
		if got != want {
			t.Errorf("Next() Failed, expected %v, got %v", want, got)
		}
	}

	if _, err := l.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"x around x around x", []string{"x", "around", "x", "around", "x"}},
		{"walked alongside, along", []string{"walked", "alongside", ",", "along"}},
		{"a state-of-the-art house", []string{"a", "state-of-the-art", "house"}},
		{"don't go past-", []string{"don't", "go", "past", "-"}},
		{"—beyond—", []string{"—", "beyond", "—"}},
		{"'across'", []string{"'", "across", "'"}},
		{"", nil},
	}

	var lx Words
	for _, tt := range tests {
		got, err := lx.Tokens(tt.in)
		if err != nil {
			t.Fatalf("Tokens(%q): %v", tt.in, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokens(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
