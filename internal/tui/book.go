package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/dhabedank/recipe-gpt/internal/core"
	"github.com/dhabedank/recipe-gpt/internal/logging"
)

// Generator produces one validated recipe per description.
type Generator interface {
	Generate(ctx context.Context, description string) (*core.Recipe, error)
}

// Deps are the collaborators of the recipe book.
type Deps struct {
	Generator Generator
	Store     core.RecipeStore
	Logger    logrus.FieldLogger

	// Gateway names the model backend in the header.
	Gateway string
}

type focus int

const (
	focusPrompt focus = iota
	focusBook
)

const sidebarWidth = 40

type recordItem struct {
	record core.Record
}

func (r recordItem) Title() string { return r.record.Recipe.Title }
func (r recordItem) Description() string {
	return fmt.Sprintf("#%d · %d ingredients", r.record.ID, len(r.record.Recipe.Ingredients))
}
func (r recordItem) FilterValue() string { return r.record.Recipe.Title }

// Book is the interactive recipe book: a prompt box and stored recipe list
// beside a tabbed view of the active recipe.
type Book struct {
	deps Deps

	prompt  textarea.Model
	book    list.Model
	spinner spinner.Model

	state      core.AppState
	records    []core.Record
	loaded     bool
	loadErr    error
	tab        Tab
	focus      focus
	generating bool

	width  int
	height int
}

// Run starts the recipe book on the alternate screen.
func Run(deps Deps) error {
	p := tea.NewProgram(NewBook(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// NewBook builds the model with the prompt box focused.
func NewBook(deps Deps) Book {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	ta := textarea.New()
	ta.Placeholder = "Describe a dish, e.g. a quick weeknight chicken curry"
	ta.CharLimit = 500
	ta.ShowLineNumbers = false
	ta.SetWidth(sidebarWidth - 2)
	ta.SetHeight(4)
	// Enter submits; the prompt is a single paragraph.
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ColorMuted)

	l := list.New(nil, delegate, sidebarWidth, 12)
	l.Title = "Recipe Book"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = SubtitleStyle

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Book{
		deps:    deps,
		prompt:  ta,
		book:    l,
		spinner: s,
		tab:     TabInstructions,
		focus:   focusPrompt,
	}
}

// State returns the current application state.
func (m Book) State() core.AppState {
	return m.state
}

// Generating reports whether a generation is in flight.
func (m Book) Generating() bool {
	return m.generating
}

func (m Book) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, cmdLoadRecords(m.deps))
}

func (m Book) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.book.SetSize(sidebarWidth, max(msg.Height-14, 5))
		return m, nil

	case recordsLoadedMsg:
		return m.onRecordsLoaded(msg), nil

	case generatedMsg:
		return m.onGenerated(msg)

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus == focusPrompt {
		m.prompt, cmd = m.prompt.Update(msg)
	} else {
		m.book, cmd = m.book.Update(msg)
	}
	return m, cmd
}

func (m Book) handleKey(msg tea.KeyMsg) (Book, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit, true

	case "tab", "shift+tab":
		m = m.toggleFocus()
		return m, nil, true

	case "enter":
		if m.focus == focusPrompt {
			next, cmd := m.submit()
			return next, cmd, true
		}
		return m.selectRecord(), nil, true
	}

	if m.focus != focusBook {
		return m, nil, false
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "left", "h":
		m.tab = Tabs[(int(m.tab)+len(Tabs)-1)%len(Tabs)]
		return m, nil, true
	case "right", "l":
		m.tab = Tabs[(int(m.tab)+1)%len(Tabs)]
		return m, nil, true
	case "1", "2", "3":
		m.tab = Tabs[int(msg.String()[0]-'1')]
		return m, nil, true
	}
	return m, nil, false
}

func (m Book) toggleFocus() Book {
	if m.focus == focusPrompt {
		m.focus = focusBook
		m.prompt.Blur()
	} else {
		m.focus = focusPrompt
		m.prompt.Focus()
	}
	return m
}

// submit starts a generation unless one is already running.
func (m Book) submit() (Book, tea.Cmd) {
	if m.generating {
		m.deps.Logger.Debug("submit ignored: generation in flight")
		return m, nil
	}
	m.generating = true
	prompt := m.prompt.Value()
	m.deps.Logger.WithField("prompt_chars", len(prompt)).Info("generation started")
	return m, tea.Batch(m.spinner.Tick, cmdGenerate(m.deps, prompt))
}

func (m Book) selectRecord() Book {
	item, ok := m.book.SelectedItem().(recordItem)
	if !ok {
		return m
	}
	m.state = m.state.Apply(core.RecipeSelected{Recipe: item.record.Recipe})
	m.tab = TabInstructions
	return m
}

func (m Book) onRecordsLoaded(msg recordsLoadedMsg) Book {
	if msg.err != nil {
		m.loadErr = msg.err
		m.deps.Logger.WithError(msg.err).Error("failed to load recipe book")
		return m
	}
	m.loadErr = nil
	m.records = msg.records

	items := make([]list.Item, len(msg.records))
	for i, rec := range msg.records {
		items[i] = recordItem{record: rec}
	}
	m.book.SetItems(items)

	if !m.loaded {
		m.loaded = true
		if m.state.Active == nil {
			m.state = core.InitialState(msg.records)
		}
	}
	if len(items) > 0 {
		m.book.Select(len(items) - 1)
	}
	return m
}

func (m Book) onGenerated(msg generatedMsg) (Book, tea.Cmd) {
	m.generating = false
	if msg.err != nil {
		m.state = m.state.Apply(core.GenerationFailed{Err: msg.err})
		m.deps.Logger.WithFields(logrus.Fields{
			"kind":  core.FailureKind(msg.err),
			"error": msg.err,
		}).Warn("generation failed")
		return m, nil
	}

	m.state = m.state.Apply(core.GenerationSucceeded{Recipe: *msg.recipe})
	m.tab = TabInstructions
	m.deps.Logger.WithField("title", msg.recipe.Title).Info("generation finished")
	return m, cmdLoadRecords(m.deps)
}

func (m Book) View() string {
	sidebar := SidebarStyle.Width(sidebarWidth + 2).Render(m.sidebarView())
	detail := lipgloss.NewStyle().PaddingLeft(2).Render(m.detailView())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)
}

func (m Book) sidebarView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("RecipeGPT"))
	if m.deps.Gateway != "" {
		b.WriteString("  " + ModelStyle.Render(m.deps.Gateway))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Describe the dish you want to cook."))
	b.WriteString("\n\n")
	b.WriteString(m.prompt.View())
	b.WriteString("\n")

	switch {
	case m.generating:
		b.WriteString(m.spinner.View() + " Generating recipe...")
	case m.state.Failed:
		b.WriteString(BannerStyle.Render(core.GenerationFailedMessage))
	default:
		b.WriteString(HelpStyle.Render("enter: generate recipe"))
	}
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(ErrorStyle.Render("Could not load the recipe book."))
		b.WriteString("\n")
	}
	b.WriteString(m.book.View())
	b.WriteString("\n")

	help := "tab: switch focus • esc: quit"
	if m.focus == focusBook {
		help = "↑/↓: browse • enter: open • ←/→ 1/2/3: tabs • tab: prompt • q: quit"
	}
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

func (m Book) detailView() string {
	recipe := m.state.Active
	if recipe == nil {
		return HelpStyle.Render("No recipe yet. Describe a dish to generate one.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(recipe.Title))
	b.WriteString("\n\n")
	b.WriteString(RenderTabBar(m.tab))
	b.WriteString("\n\n")
	b.WriteString(RenderRecipeTab(recipe, m.tab))
	return b.String()
}
