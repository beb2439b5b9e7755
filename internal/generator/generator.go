// Package generator draws practice words from a word list.
package generator

import (
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"
)

// Options controls capitalization and punctuation of drawn words.
type Options struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// marks returns the punctuation runes that keep a word a single token.
func (o Options) marks() []rune {
	marks := make([]rune, 0, len(o.PunctSet))
	for _, r := range o.PunctSet {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			continue
		}
		marks = append(marks, r)
	}
	return marks
}

// Generator produces randomized word sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate draws count words with repetition. Each word is capitalized with
// probability CapsPct and gets a trailing mark from PunctSet with probability
// PunctPct. Whitespace in PunctSet is ignored.
func (g *Generator) Generate(words []string, count int, opts Options) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	marks := opts.marks()
	out := make([]string, count)
	for i := range out {
		word := words[g.rnd.Intn(len(words))]
		if g.hit(opts.CapsPct) {
			word = capitalize(word)
		}
		if len(marks) > 0 && g.hit(opts.PunctPct) {
			word += string(marks[g.rnd.Intn(len(marks))])
		}
		out[i] = word
	}
	return out
}

// hit reports a success with probability p. Zero never draws from rnd.
func (g *Generator) hit(p float64) bool {
	if p <= 0 {
		return false
	}
	return g.rnd.Float64() < p
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + word[size:]
}
