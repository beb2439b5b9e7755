package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/verte-zerg/typetest/internal/apperrors"
	"github.com/verte-zerg/typetest/internal/generator"
	"github.com/verte-zerg/typetest/internal/wordlist"
)

// WordListSource draws words from a local one-word-per-line file.
type WordListSource struct {
	path string
	gen  *generator.Generator
	opts generator.Options

	mu     sync.Mutex
	loaded bool
	words  []string
}

// NewWordListSource returns a WordSource backed by the file at path. The
// file is read on the first successful fetch.
func NewWordListSource(path string, gen *generator.Generator, opts generator.Options) *WordListSource {
	if gen == nil {
		gen = generator.New()
	}
	return &WordListSource{path: path, gen: gen, opts: opts}
}

// FetchWords implements WordSource.
func (s *WordListSource) FetchWords(_ context.Context, count int) ([]string, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		words, err := wordlist.LoadWords(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w: %w", s.path, apperrors.ErrConfiguration, err)
		}
		s.words = words
		s.loaded = true
	}
	return s.gen.Generate(s.words, count, s.opts), nil
}
