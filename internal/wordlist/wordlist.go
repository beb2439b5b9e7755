// Package wordlist reads local word lists used instead of the random word API.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// LoadWords reads the word list at path. See ReadWords for the format.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadWords(file)
}

// ReadWords reads one word per line. Lines are trimmed, and lines that would
// not be a single token of a practice text are skipped, as are repeats, so
// each word is drawn with the same weight.
func ReadWords(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if !IsToken(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list has no usable words")
	}
	return words, nil
}

// IsToken reports whether word is a single non-empty token without whitespace.
func IsToken(word string) bool {
	return word != "" && !strings.ContainsFunc(word, unicode.IsSpace)
}
