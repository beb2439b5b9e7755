package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/source"
)

// Deps are the collaborators screens are built from.
type Deps struct {
	Words  source.WordSource
	Quotes source.QuoteSource
	Clock  session.Clock
}

type menuOption struct {
	label string
	mode  model.Mode
}

var menuOptions = []menuOption{
	{label: "Single Word", mode: model.ModeWords},
	{label: "Paragraph", mode: model.ModeQuote},
}

// App routes between the mode menu and the practice screens.
type App struct {
	cfg   model.Config
	deps  Deps
	theme Theme

	selected int
	screen   *Screen
	last     *model.Summary

	width  int
	height int
}

// NewApp constructs the root model. An empty start mode opens the menu.
func NewApp(cfg model.Config, deps Deps, start model.Mode) *App {
	a := &App{
		cfg:   cfg,
		deps:  deps,
		theme: ThemeFor(cfg.UI.Light),
	}
	if start != "" {
		a.screen = a.newScreen(start)
	}
	return a
}

// LastSummary returns the most recent completed session of any screen.
func (a *App) LastSummary() (model.Summary, bool) {
	if a.last == nil {
		return model.Summary{}, false
	}
	return *a.last, true
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.screen != nil {
		return a.screen.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.screen != nil {
			a.screen.SetSize(msg.Width, msg.Height)
		}
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.screen == nil {
			return a.updateMenu(msg)
		}
		if msg.Type == tea.KeyEsc {
			a.screen = nil
			return a, nil
		}
	}
	if a.screen == nil {
		return a, nil
	}
	_, cmd := a.screen.Update(msg)
	if summary, ok := a.screen.Summary(); ok {
		a.last = &summary
	}
	return a, cmd
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "ctrl+t":
		a.theme = a.theme.Toggle()
	case "up", "k", "left", "h":
		a.selected = (a.selected + len(menuOptions) - 1) % len(menuOptions)
	case "down", "j", "right", "l", "tab":
		a.selected = (a.selected + 1) % len(menuOptions)
	case "1", "2":
		a.selected = int(msg.String()[0] - '1')
		return a.open(menuOptions[a.selected].mode)
	case "enter":
		return a.open(menuOptions[a.selected].mode)
	}
	return a, nil
}

func (a *App) open(mode model.Mode) (tea.Model, tea.Cmd) {
	a.screen = a.newScreen(mode)
	a.screen.SetSize(a.width, a.height)
	return a, a.screen.Init()
}

func (a *App) newScreen(mode model.Mode) *Screen {
	if mode == model.ModeQuote {
		return NewQuoteScreen(a.deps.Quotes, a.theme, a.deps.Clock)
	}
	return NewWordScreen(a.deps.Words, a.cfg.Words.Count, a.theme, a.deps.Clock)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.screen != nil {
		return a.screen.View()
	}
	return a.menuView()
}

func (a *App) menuView() string {
	options := make([]string, 0, len(menuOptions))
	idle := a.theme.Muted.Padding(0, 1).Border(lipgloss.RoundedBorder(), true)
	for i, opt := range menuOptions {
		if i > 0 {
			options = append(options, " ")
		}
		if i == a.selected {
			options = append(options, a.theme.Selected.Render(opt.label))
			continue
		}
		options = append(options, idle.Render(opt.label))
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		a.theme.Title.Render("Typing Test"),
		"",
		a.theme.Title.Render("Choose Your Mode"),
		a.theme.Muted.Render("Select the mode you want to practice."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, options...),
	)
	help := a.theme.Muted.Render("←/→ select · enter start · ctrl+t theme · q quit")
	if a.width == 0 || a.height == 0 {
		return content + "\n\n" + help
	}
	body := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + lipgloss.Place(a.width, 1, lipgloss.Center, lipgloss.Center, help)
}
