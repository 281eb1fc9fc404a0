package token

import (
	"testing"
)

func TestNew(t *testing.T) {
	for _, name := range append(Names(), "") {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}

	if _, err := New("whitespace"); err == nil {
		t.Errorf("expected error for unknown tokenizer")
	}
}

func TestTreebankKeepsWords(t *testing.T) {
	tb := &Treebank{}
	tokens, err := tb.Tokens("He walked alongside the river, then across it.")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}

	found := map[string]bool{}
	for _, tok := range tokens {
		found[tok] = true
	}

	for _, w := range []string{"alongside", "across", "river", ","} {
		if !found[w] {
			t.Errorf("expected token %q in %q", w, tokens)
		}
	}
	if found["along"] {
		t.Errorf("alongside was split: %q", tokens)
	}
}

func TestFold(t *testing.T) {
	f := NewFolder()
	for in, want := range map[string]string{
		"ACROSS": "across",
		"Beyond": "beyond",
		"past":   "past",
	} {
		if got := f.Fold(in); got != want {
			t.Errorf("Fold(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIsWord(t *testing.T) {
	for tok, want := range map[string]bool{
		"around": true,
		"1919":   true,
		"n't":    true,
		",":      false,
		"--":     false,
		"":       false,
	} {
		if got := IsWord(tok); got != want {
			t.Errorf("IsWord(%q): expected %v, got %v", tok, want, got)
		}
	}
}
