package generator

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateCount(t *testing.T) {
	g := NewWithSeed(1)
	words := g.Generate([]string{"alpha", "beta", "gamma"}, 7, Options{})
	if len(words) != 7 {
		t.Fatalf("expected 7 words, got %d", len(words))
	}
	for _, w := range words {
		if w != "alpha" && w != "beta" && w != "gamma" {
			t.Fatalf("unexpected word %q", w)
		}
	}
	if out := g.Generate(nil, 3, Options{}); out != nil {
		t.Fatalf("expected nil for empty word list, got %q", out)
	}
}

func TestGenerateAlwaysDecorates(t *testing.T) {
	g := NewWithSeed(42)
	words := g.Generate([]string{"word"}, 20, Options{CapsPct: 1, PunctPct: 1, PunctSet: []rune(".")})
	for _, w := range words {
		if !unicode.IsUpper([]rune(w)[0]) {
			t.Fatalf("expected capitalized word, got %q", w)
		}
		if !strings.HasSuffix(w, ".") {
			t.Fatalf("expected punctuation suffix, got %q", w)
		}
	}
}

func TestGenerateSkipsWhitespaceMarks(t *testing.T) {
	g := NewWithSeed(7)
	words := g.Generate([]string{"go"}, 50, Options{PunctPct: 1, PunctSet: []rune(" \t!")})
	for _, w := range words {
		if w != "go!" {
			t.Fatalf("expected only printable marks, got %q", w)
		}
	}
	plain := g.Generate([]string{"go"}, 5, Options{PunctPct: 1, PunctSet: []rune(" ")})
	for _, w := range plain {
		if w != "go" {
			t.Fatalf("expected undecorated word when no mark is usable, got %q", w)
		}
	}
}

func TestGenerateCapitalizesMultibyte(t *testing.T) {
	g := NewWithSeed(3)
	words := g.Generate([]string{"élan"}, 3, Options{CapsPct: 1})
	for _, w := range words {
		if w != "Élan" {
			t.Fatalf("expected Élan, got %q", w)
		}
	}
}
