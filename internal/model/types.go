// Package model defines shared data structures.
package model

// Mode selects the practice mode.
type Mode string

const (
	// ModeWords practices a fetched list of single words.
	ModeWords Mode = "words"
	// ModeQuote practices one fetched quote.
	ModeQuote Mode = "quote"
)

// Config defines resolved practice settings.
type Config struct {
	Words WordsConfig
	Quote QuoteConfig
	UI    UIConfig
}

// WordsConfig defines word mode settings.
type WordsConfig struct {
	Count    int
	Endpoint string
	WordList string
	CapsPct  float64
	PunctPct float64
	PunctSet string
}

// QuoteConfig defines quote mode settings.
type QuoteConfig struct {
	Endpoint string
	APIKey   string
}

// UIConfig defines presentation settings.
type UIConfig struct {
	Light bool
}

// Summary captures a completed session for the exit report.
type Summary struct {
	Mode      Mode
	Target    string
	Input     string
	Tokens    []TokenSummary
	Mistakes  int
	Accuracy  int
	WPM       int
	ElapsedMs int64
}

// TokenSummary is one typed token of a completed session.
type TokenSummary struct {
	Expected string
	Typed    string
	Correct  bool
}
