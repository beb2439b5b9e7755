package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typetest/internal/session"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildTargetRunes styles the target text token by token. Tokens before
// current are judged by results, current is highlighted and the rest are
// pending. A negative current marks nothing as current.
func buildTargetRunes(target []string, results []session.TokenResult, current int, theme Theme) []styledRune {
	out := make([]styledRune, 0, len(target)*6)
	for i, tok := range target {
		if i > 0 {
			out = append(out, styledRune{s: theme.Pending.Render(" "), width: 1, isSpace: true})
		}
		style := theme.Pending
		switch {
		case i == current:
			style = theme.Current
		case i < len(results) && results[i].Correct:
			style = theme.Correct
		case i < len(results):
			style = theme.Incorrect
		}
		if i == current && i >= len(results) {
			style = style.Underline(true)
		}
		out = appendToken(out, tok, style)
	}
	return out
}

// buildInputRunes styles the typed input by token and appends a cursor when
// the session still accepts input.
func buildInputRunes(results []session.TokenResult, current int, cursor bool, theme Theme) []styledRune {
	out := make([]styledRune, 0, len(results)*6+1)
	for i, r := range results {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, isSpace: true})
		}
		style := theme.Incorrect
		switch {
		case i == current:
			style = theme.Current
		case r.Correct:
			style = theme.Correct
		}
		out = appendToken(out, r.Token, style)
	}
	if cursor {
		out = append(out, styledRune{s: theme.Cursor.Render(" "), width: 1})
	}
	return out
}

func appendToken(out []styledRune, tok string, style lipgloss.Style) []styledRune {
	for _, r := range tok {
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
