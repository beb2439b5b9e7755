package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typetest/internal/session"
)

func TestBuildTargetRunesStyles(t *testing.T) {
	theme := DarkTheme()
	target := []string{"ab", "cd", "ef"}
	results := []session.TokenResult{{Token: "ab", Correct: true}, {Token: "c", Correct: false}}

	runes := buildTargetRunes(target, results, 1, theme)
	if len(runes) != 8 {
		t.Fatalf("expected 8 runes, got %d", len(runes))
	}
	if runes[0].s != theme.Correct.Render("a") {
		t.Fatalf("expected correct style for first token")
	}
	if !runes[2].isSpace {
		t.Fatalf("expected separator to be a space")
	}
	if runes[3].s != theme.Current.Render("c") {
		t.Fatalf("expected current style for token being typed")
	}
	if runes[6].s != theme.Pending.Render("e") {
		t.Fatalf("expected pending style for untyped token")
	}
}

func TestBuildTargetRunesIncorrectToken(t *testing.T) {
	theme := DarkTheme()
	target := []string{"ab", "cd"}
	results := []session.TokenResult{{Token: "ax", Correct: false}, {Token: "", Correct: false}}

	runes := buildTargetRunes(target, results, 1, theme)
	if runes[0].s != theme.Incorrect.Render("a") {
		t.Fatalf("expected incorrect style for mistyped token")
	}
}

func TestBuildTargetRunesCursorOnUntypedToken(t *testing.T) {
	theme := DarkTheme()
	runes := buildTargetRunes([]string{"go"}, nil, 0, theme)
	if runes[0].s != theme.Current.Underline(true).Render("g") {
		t.Fatalf("expected underlined current style before typing")
	}
}

func TestBuildInputRunesCursor(t *testing.T) {
	theme := DarkTheme()
	results := []session.TokenResult{{Token: "a", Correct: true}, {Token: "b", Correct: false}}
	runes := buildInputRunes(results, -1, true, theme)
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	if runes[2].s != theme.Incorrect.Render("b") {
		t.Fatalf("expected incorrect style for wrong token")
	}
	if runes[3].s != theme.Cursor.Render(" ") {
		t.Fatalf("expected cursor at the end")
	}
	if got := buildInputRunes(results, -1, false, theme); len(got) != 3 {
		t.Fatalf("expected no cursor when input is locked")
	}
}

func plainRunes(text string) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapStyledRunesBreaksOnSpaces(t *testing.T) {
	got := wrapStyledRunes(plainRunes("one two three"), 8)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "one two" || lines[1] != "three" {
		t.Fatalf("unexpected wrap: %q", lines)
	}
}

func TestWrapStyledRunesLongWord(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdefgh"), 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected hard wrap: %q", got)
	}
	if wrapStyledRunes(plainRunes("ab"), 0) != "ab" {
		t.Fatalf("expected no wrap for zero width")
	}
}
