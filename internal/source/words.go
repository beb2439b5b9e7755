package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/verte-zerg/typetest/internal/apperrors"
	"github.com/verte-zerg/typetest/internal/wordlist"
)

// DefaultWordsEndpoint is the random word API used when none is configured.
const DefaultWordsEndpoint = "https://random-word-api.herokuapp.com/word"

// WordClient fetches random words from an HTTP endpoint that answers
// GET <endpoint>?number=N with a JSON array of strings.
type WordClient struct {
	endpoint string
	client   Doer
}

// NewWordClient returns a WordClient. Empty endpoint uses DefaultWordsEndpoint
// and a nil client uses http.DefaultClient.
func NewWordClient(endpoint string, client Doer) *WordClient {
	if endpoint == "" {
		endpoint = DefaultWordsEndpoint
	}
	return &WordClient{endpoint: endpoint, client: defaultClient(client)}
}

// FetchWords implements WordSource.
func (c *WordClient) FetchWords(ctx context.Context, count int) ([]string, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid words endpoint %q: %w", c.endpoint, apperrors.ErrConfiguration)
	}
	q := u.Query()
	q.Set("number", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	resp, err := httpGet(ctx, c.client, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch words: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to decode words: %w: %w", apperrors.ErrFormat, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("words response is empty: %w", apperrors.ErrFormat)
	}
	for _, w := range words {
		if !wordlist.IsToken(w) {
			return nil, fmt.Errorf("words response contains %q: %w", w, apperrors.ErrFormat)
		}
	}
	return words, nil
}
