// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typetest/internal/apperrors"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/source"
)

// fetchedMsg carries a fetch result back to the screen that started it.
type fetchedMsg struct {
	sessionID string
	target    session.Target
	err       error
}

// Screen is one practice mode: it owns a session, fetches its text and
// feeds keystrokes into it.
type Screen struct {
	mode   model.Mode
	sess   *session.Session
	words  source.WordSource
	quotes source.QuoteSource
	theme  Theme

	count        textinput.Model
	editingCount bool
	spinner      spinner.Model
	loading      bool

	input   []rune
	summary *model.Summary

	width  int
	height int
}

// NewWordScreen constructs the single-word practice screen.
func NewWordScreen(words source.WordSource, count int, theme Theme, clock session.Clock) *Screen {
	s := newScreen(model.ModeWords, session.WordPolicy{}, theme, clock)
	s.words = words
	s.count.SetValue(strconv.Itoa(count))
	return s
}

// NewQuoteScreen constructs the quote practice screen.
func NewQuoteScreen(quotes source.QuoteSource, theme Theme, clock session.Clock) *Screen {
	s := newScreen(model.ModeQuote, session.SentencePolicy{}, theme, clock)
	s.quotes = quotes
	return s
}

func newScreen(mode model.Mode, policy session.Policy, theme Theme, clock session.Clock) *Screen {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "1-100"
	ti.CharLimit = 3
	ti.Width = 5

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Current

	return &Screen{
		mode:    mode,
		sess:    session.New(policy, clock),
		theme:   theme,
		count:   ti,
		spinner: sp,
	}
}

// Init implements tea.Model by fetching the first text.
func (s *Screen) Init() tea.Cmd {
	return s.newSession()
}

// Mode returns the practice mode of the screen.
func (s *Screen) Mode() model.Mode { return s.mode }

// Session exposes the underlying session.
func (s *Screen) Session() *session.Session { return s.sess }

// Summary returns the result of the last completed session, if any.
func (s *Screen) Summary() (model.Summary, bool) {
	if s.summary == nil {
		return model.Summary{}, false
	}
	return *s.summary, true
}

// SetSize updates the drawable area.
func (s *Screen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Update implements tea.Model.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil
	case fetchedMsg:
		s.handleFetched(msg)
		return s, nil
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	default:
		if s.editingCount {
			var cmd tea.Cmd
			s.count, cmd = s.count.Update(msg)
			return s, cmd
		}
		return s, nil
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlT:
		s.theme = s.theme.Toggle()
		s.spinner.Style = s.theme.Current
		return s, nil
	case tea.KeyCtrlR:
		if s.editingCount {
			s.editingCount = false
			s.count.Blur()
		}
		return s, s.newSession()
	case tea.KeyTab:
		if s.mode != model.ModeWords {
			return s, nil
		}
		if s.editingCount {
			s.editingCount = false
			s.count.Blur()
			return s, nil
		}
		s.editingCount = true
		return s, s.count.Focus()
	}

	if s.editingCount {
		if msg.Type == tea.KeyEnter {
			s.editingCount = false
			s.count.Blur()
			return s, s.newSession()
		}
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}

	switch msg.Type {
	case tea.KeyEnter:
		if s.sess.State() == session.Completed {
			return s, s.newSession()
		}
	case tea.KeyBackspace, tea.KeyDelete:
		if len(s.input) > 0 {
			s.setInput(s.input[:len(s.input)-1])
		}
	case tea.KeySpace:
		s.setInput(appendRunes(s.input, ' '))
	case tea.KeyRunes:
		s.setInput(appendRunes(s.input, msg.Runes...))
	}
	return s, nil
}

func appendRunes(input []rune, runes ...rune) []rune {
	next := make([]rune, 0, len(input)+len(runes))
	next = append(next, input...)
	return append(next, runes...)
}

func (s *Screen) setInput(next []rune) {
	if !s.sess.SetInput(string(next)) {
		return
	}
	s.input = next
	if s.sess.State() == session.Completed {
		summary := s.buildSummary()
		s.summary = &summary
		log.Printf("%s session %s completed: %d WPM, %d%% accuracy", s.mode, s.sess.ID(), summary.WPM, summary.Accuracy)
	}
}

// newSession resets the session and starts the fetch for its text.
func (s *Screen) newSession() tea.Cmd {
	id := s.sess.Begin()
	s.input = nil
	s.loading = true
	log.Printf("%s session %s: fetching text", s.mode, id)
	return tea.Batch(s.fetchCmd(id), s.spinner.Tick)
}

func (s *Screen) fetchCmd(id string) tea.Cmd {
	switch s.mode {
	case model.ModeWords:
		words := s.words
		count, err := parseCount(s.count.Value())
		return func() tea.Msg {
			if err != nil {
				return fetchedMsg{sessionID: id, err: err}
			}
			list, err := words.FetchWords(context.Background(), count)
			if err != nil {
				return fetchedMsg{sessionID: id, err: err}
			}
			return fetchedMsg{sessionID: id, target: session.WordTarget(list)}
		}
	default:
		quotes := s.quotes
		return func() tea.Msg {
			quote, err := quotes.FetchQuote(context.Background())
			if err != nil {
				return fetchedMsg{sessionID: id, err: err}
			}
			return fetchedMsg{sessionID: id, target: session.QuoteTarget(quote)}
		}
	}
}

func parseCount(value string) (int, error) {
	value = strings.TrimSpace(value)
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("word count %q is not a number: %w", value, apperrors.ErrValidation)
	}
	return count, nil
}

func (s *Screen) handleFetched(msg fetchedMsg) {
	if msg.sessionID != s.sess.ID() {
		log.Printf("%s: dropping stale fetch for session %s", s.mode, msg.sessionID)
		return
	}
	s.loading = false
	if msg.err != nil {
		log.Printf("%s session %s: fetch failed (%s): %v", s.mode, msg.sessionID, apperrors.Classify(msg.err), msg.err)
		if err := s.sess.Fail(msg.sessionID, msg.err); err != nil {
			log.Printf("%s session %s: %v", s.mode, msg.sessionID, err)
		}
		return
	}
	if err := s.sess.Load(msg.sessionID, msg.target); err != nil {
		log.Printf("%s session %s: %v", s.mode, msg.sessionID, err)
		return
	}
	log.Printf("%s session %s: loaded %d tokens", s.mode, msg.sessionID, len(msg.target.Tokens))
}

func (s *Screen) buildSummary() model.Summary {
	target := s.sess.Target()
	stats := s.sess.Stats()
	results := s.sess.Results()
	tokens := make([]model.TokenSummary, 0, len(results))
	for i, r := range results {
		expected := ""
		if i < len(target.Tokens) {
			expected = target.Tokens[i]
		}
		tokens = append(tokens, model.TokenSummary{Expected: expected, Typed: r.Token, Correct: r.Correct})
	}
	return model.Summary{
		Mode:      s.mode,
		Target:    target.Text,
		Input:     s.sess.Input(),
		Tokens:    tokens,
		Mistakes:  stats.Mistakes,
		Accuracy:  stats.Accuracy,
		WPM:       stats.WPM,
		ElapsedMs: s.sess.Elapsed().Milliseconds(),
	}
}

// currentToken is the index of the token being typed, or -1 once complete.
func (s *Screen) currentToken() int {
	if s.sess.State() == session.Completed {
		return -1
	}
	results := s.sess.Results()
	if len(results) == 0 {
		return 0
	}
	return len(results) - 1
}

// View implements tea.Model.
func (s *Screen) View() string {
	contentWidth := 0
	if s.width > 0 {
		contentWidth = max(int(float64(s.width)*0.70), 1)
	}

	sections := []string{s.renderHeader()}
	if s.mode == model.ModeWords {
		sections = append(sections, s.renderCountLine())
	}
	sections = append(sections, "", s.renderBody(contentWidth))
	if footer := s.renderFooter(); footer != "" {
		sections = append(sections, "", footer)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if contentWidth > 0 {
		content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	}

	help := s.theme.Muted.Render(s.helpLine())
	if s.width == 0 || s.height == 0 {
		return content + "\n\n" + help
	}
	if s.height < 3 {
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(s.width, s.height-1, lipgloss.Center, lipgloss.Center, content)
	helpLine := lipgloss.Place(s.width, 1, lipgloss.Center, lipgloss.Center, help)
	return body + "\n" + helpLine
}

func (s *Screen) renderHeader() string {
	title := "Word Typing Test"
	if s.mode == model.ModeQuote {
		title = "Quote Typing Test"
	}
	return s.theme.Title.Render(title)
}

func (s *Screen) renderCountLine() string {
	label := s.theme.Muted.Render("Words: ")
	if s.editingCount {
		return label + s.count.View() + s.theme.Muted.Render("  enter to get")
	}
	value := s.count.Value()
	if value == "" {
		value = "-"
	}
	return label + s.theme.Correct.Render(value)
}

func (s *Screen) renderBody(width int) string {
	if s.loading {
		what := "words"
		if s.mode == model.ModeQuote {
			what = "quote"
		}
		return s.spinner.View() + " " + s.theme.Muted.Render(fmt.Sprintf("Fetching %s…", what))
	}
	if s.sess.Failed() {
		return s.theme.Error.Render(apperrors.Message(s.sess.Err()))
	}
	if s.sess.State() == session.Idle {
		return ""
	}

	current := s.currentToken()
	target := wrapStyledRunes(buildTargetRunes(s.sess.Target().Tokens, s.sess.Results(), current, s.theme), width)
	hint := "Type the words space separated"
	if s.mode == model.ModeQuote {
		hint = "Type the quote exactly"
	}
	accepting := s.sess.State() != session.Completed
	input := wrapStyledRunes(buildInputRunes(s.sess.Results(), current, accepting, s.theme), width)
	lines := []string{target, "", s.theme.Muted.Render(hint), "> " + input}

	if s.mode == model.ModeWords {
		if list := s.renderResults(); list != "" {
			lines = append(lines, "", list)
		}
	}
	if stats := s.sess.Stats(); stats.HasWPM {
		lines = append(lines, "", s.theme.Success.Render(fmt.Sprintf("Typing Speed: %d WPM", stats.WPM)))
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) renderResults() string {
	results := s.sess.Results()
	if len(results) == 0 {
		return ""
	}
	items := make([]string, 0, len(results))
	for _, r := range results {
		if r.Correct {
			items = append(items, s.theme.Correct.Render(r.Token+" - Correct"))
			continue
		}
		items = append(items, s.theme.Incorrect.Render(r.Token+" - Incorrect"))
	}
	return strings.Join(items, "\n")
}

func (s *Screen) renderFooter() string {
	if s.sess.State() == session.Idle {
		return ""
	}
	target := s.sess.Target().Tokens
	stats := s.sess.Stats()
	progress := 100
	if len(target) > 0 {
		progress = min(int(float64(len(s.sess.Results()))/float64(len(target))*100), 100)
	}
	if stats.Completed {
		progress = 100
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Mistakes %d", stats.Mistakes),
		fmt.Sprintf("Accuracy %d%%", stats.Accuracy),
	}
	if stats.HasWPM {
		segments = append(segments, fmt.Sprintf("%d WPM", stats.WPM))
	}
	return s.theme.Footer.Render(strings.Join(segments, "  "))
}

func (s *Screen) helpLine() string {
	parts := []string{"ctrl+r new", "ctrl+t theme", "esc menu", "ctrl+c quit"}
	if s.mode == model.ModeWords {
		parts = append([]string{"tab word count"}, parts...)
	}
	if s.sess.State() == session.Completed {
		parts = append([]string{"enter again"}, parts...)
	}
	return strings.Join(parts, " · ")
}
