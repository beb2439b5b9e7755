// Package report prints the result of a completed typing session.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/typetest/internal/model"
)

// RenderSummary prints the headline numbers of a completed session.
func RenderSummary(w io.Writer, s model.Summary) error {
	elapsed := time.Duration(s.ElapsedMs) * time.Millisecond
	lines := []string{
		fmt.Sprintf("Mode: %s", s.Mode),
		fmt.Sprintf("Words: %d", len(s.Tokens)),
		fmt.Sprintf("Time: %s", elapsed.Round(100*time.Millisecond)),
		fmt.Sprintf("Typing Speed: %d WPM", s.WPM),
		fmt.Sprintf("Accuracy: %d%%", s.Accuracy),
		fmt.Sprintf("Mistakes: %d", s.Mistakes),
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTokens prints each typed token next to the expected one.
func RenderTokens(w io.Writer, tokens []model.TokenSummary) error {
	if len(tokens) == 0 {
		_, err := fmt.Fprintln(w, "No words typed.")
		return err
	}
	headers := []string{"#", "Expected", "Typed", "Result"}
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		result := "Incorrect"
		if tok.Correct {
			result = "Correct"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			displayToken(tok.Expected),
			displayToken(tok.Typed),
			result,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Render prints the summary followed by the token table.
func Render(w io.Writer, s model.Summary) error {
	if err := RenderSummary(w, s); err != nil {
		return err
	}
	return RenderTokens(w, s.Tokens)
}

func displayToken(tok string) string {
	if tok == "" {
		return "<empty>"
	}
	return tok
}
