package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWordsSkipsBlankAndMultiWordLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.txt")
	content := "hello\n\n  world  \nice cream\ntab\there\ngo\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	expected := []string{"hello", "world", "go"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d: %q", len(expected), len(words), words)
	}
	for i, word := range expected {
		if words[i] != word {
			t.Fatalf("expected %q at index %d, got %q", word, i, words[i])
		}
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestReadWordsDropsRepeats(t *testing.T) {
	words, err := ReadWords(strings.NewReader("go\nrun\ngo\n go \nrun\n"))
	if err != nil {
		t.Fatalf("ReadWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "go" || words[1] != "run" {
		t.Fatalf("expected [go run], got %q", words)
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing word list")
	}
}
