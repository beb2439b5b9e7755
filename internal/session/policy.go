// Package session implements the typing session engine: tokenizing,
// scoring typed input against a target, timing and the session lifecycle.
package session

import (
	"math"
	"strings"
)

// Target is the text a session asks the user to type.
type Target struct {
	Text   string
	Tokens []string
}

// WordTarget builds a target from a list of words joined by single spaces.
func WordTarget(words []string) Target {
	tokens := make([]string, len(words))
	copy(tokens, words)
	return Target{Text: strings.Join(tokens, " "), Tokens: tokens}
}

// QuoteTarget builds a target from free text. Runs of whitespace, line
// breaks and tabs included, collapse to one space so every character of the
// target can be typed.
func QuoteTarget(text string) Target {
	text = strings.Join(strings.Fields(text), " ")
	return Target{Text: text, Tokens: Tokenize(text)}
}

// Tokenize splits text on single spaces. Consecutive or trailing spaces
// produce empty tokens. An empty text has no tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

// TokenResult is one typed token and whether it matches the target token at
// the same position.
type TokenResult struct {
	Token   string
	Correct bool
}

// Score is the outcome of comparing typed tokens against a target.
type Score struct {
	Results  []TokenResult
	Mistakes int
	Accuracy int
}

// Policy scores input and decides when a session is complete.
// Scoring is recomputed from scratch on every input change.
type Policy interface {
	Name() string
	Tokens(input string) []string
	Score(target Target, typed []string) Score
	Complete(target Target, input string, typed []string) bool
}

// WordPolicy is the single-word mode policy: every typed token that does not
// match counts once, and completion is token-wise.
type WordPolicy struct{}

// Name implements Policy.
func (WordPolicy) Name() string { return "words" }

// Tokens implements Policy. Word mode judges the input as typed.
func (WordPolicy) Tokens(input string) []string { return Tokenize(input) }

// Score implements Policy.
func (WordPolicy) Score(target Target, typed []string) Score {
	results := compare(target.Tokens, typed)
	mistakes := 0
	for _, r := range results {
		if !r.Correct {
			mistakes++
		}
	}
	return Score{
		Results:  results,
		Mistakes: mistakes,
		Accuracy: accuracy(len(target.Tokens), mistakes),
	}
}

// Complete implements Policy.
func (WordPolicy) Complete(target Target, _ string, typed []string) bool {
	if len(typed) != len(target.Tokens) {
		return false
	}
	for i, tok := range typed {
		if tok != target.Tokens[i] {
			return false
		}
	}
	return true
}

// SentencePolicy is the quote mode policy: prefix mismatches plus the length
// difference count as mistakes, and completion is a whole-string match.
type SentencePolicy struct{}

// Name implements Policy.
func (SentencePolicy) Name() string { return "quote" }

// Tokens implements Policy. Leading and trailing spaces are dropped so
// scoring reads the same text that completion compares.
func (SentencePolicy) Tokens(input string) []string {
	return Tokenize(strings.TrimSpace(input))
}

// Score implements Policy.
func (SentencePolicy) Score(target Target, typed []string) Score {
	results := compare(target.Tokens, typed)
	overlap := min(len(target.Tokens), len(typed))
	mistakes := 0
	for i := 0; i < overlap; i++ {
		if !results[i].Correct {
			mistakes++
		}
	}
	diff := len(target.Tokens) - len(typed)
	if diff < 0 {
		diff = -diff
	}
	mistakes += diff
	return Score{
		Results:  results,
		Mistakes: mistakes,
		Accuracy: accuracy(len(target.Tokens), mistakes),
	}
}

// Complete implements Policy.
func (SentencePolicy) Complete(target Target, input string, _ []string) bool {
	return strings.TrimSpace(input) == target.Text
}

func compare(target, typed []string) []TokenResult {
	if len(typed) == 0 {
		return nil
	}
	results := make([]TokenResult, len(typed))
	for i, tok := range typed {
		results[i] = TokenResult{
			Token:   tok,
			Correct: i < len(target) && tok == target[i],
		}
	}
	return results
}

func accuracy(total, mistakes int) int {
	if total <= 0 {
		return 100
	}
	pct := int(math.Round(100 * float64(total-mistakes) / float64(total)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
