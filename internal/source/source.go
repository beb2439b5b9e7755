// Package source fetches practice text from word and quote providers.
package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/verte-zerg/typetest/internal/apperrors"
)

const (
	// MinWords is the smallest word count a WordSource accepts.
	MinWords = 1
	// MaxWords is the largest word count a WordSource accepts.
	MaxWords = 100
)

// WordSource returns count practice words.
type WordSource interface {
	FetchWords(ctx context.Context, count int) ([]string, error)
}

// QuoteSource returns one practice quote.
type QuoteSource interface {
	FetchQuote(ctx context.Context) (string, error)
}

// ValidateCount rejects word counts outside [MinWords, MaxWords].
func ValidateCount(count int) error {
	if count < MinWords || count > MaxWords {
		return fmt.Errorf("word count must be between %d and %d, got %d: %w", MinWords, MaxWords, count, apperrors.ErrValidation)
	}
	return nil
}

// Doer sends HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

func httpGet(ctx context.Context, client Doer, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", apperrors.ErrConfiguration)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w: %w", apperrors.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s: %w", resp.Status, apperrors.ErrTransport)
	}
	return resp, nil
}

func defaultClient(client Doer) Doer {
	if client == nil {
		return http.DefaultClient
	}
	return client
}
