package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/verte-zerg/typetest/internal/apperrors"
)

// QuoteClient fetches a quote from an endpoint that requires an API key.
type QuoteClient struct {
	endpoint string
	apiKey   string
	client   Doer
}

// NewQuoteClient returns a QuoteClient. Missing settings are reported by
// FetchQuote so the failure surfaces in the session that asked for a quote.
func NewQuoteClient(endpoint, apiKey string, client Doer) *QuoteClient {
	return &QuoteClient{
		endpoint: strings.TrimSpace(endpoint),
		apiKey:   strings.TrimSpace(apiKey),
		client:   defaultClient(client),
	}
}

type quotePayload struct {
	Quote *string `json:"quote"`
}

// FetchQuote implements QuoteSource.
func (c *QuoteClient) FetchQuote(ctx context.Context) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("quote endpoint is not set: %w", apperrors.ErrConfiguration)
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("quote API key is not set: %w", apperrors.ErrConfiguration)
	}

	header := http.Header{}
	header.Set("X-Api-Key", c.apiKey)
	resp, err := httpGet(ctx, c.client, c.endpoint, header)
	if err != nil {
		return "", fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read quote: %w: %w", apperrors.ErrTransport, err)
	}
	return decodeQuote(body)
}

// decodeQuote accepts {"quote": "..."} or [{"quote": "..."}, ...].
func decodeQuote(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	var payload quotePayload
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []quotePayload
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return "", fmt.Errorf("failed to decode quote: %w: %w", apperrors.ErrFormat, err)
		}
		if len(list) == 0 {
			return "", fmt.Errorf("quote response is empty: %w", apperrors.ErrFormat)
		}
		payload = list[0]
	} else if err := json.Unmarshal(trimmed, &payload); err != nil {
		return "", fmt.Errorf("failed to decode quote: %w: %w", apperrors.ErrFormat, err)
	}
	if payload.Quote == nil {
		return "", fmt.Errorf("quote field is missing: %w", apperrors.ErrFormat)
	}
	quote := strings.TrimSpace(*payload.Quote)
	if quote == "" {
		return "", fmt.Errorf("quote field is empty: %w", apperrors.ErrFormat)
	}
	return quote, nil
}
