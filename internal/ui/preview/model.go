// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/textshell/internal/anim"
	"github.com/jeranaias/textshell/internal/config"
	"github.com/jeranaias/textshell/internal/micro"
	"github.com/jeranaias/textshell/internal/redraw"
	"github.com/jeranaias/textshell/internal/ui/components"
	"github.com/jeranaias/textshell/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// RedrawMsg asks the program to re-render after animation frames.
type RedrawMsg struct{}

// ConfigMsg delivers a reloaded configuration.
type ConfigMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a configuration file that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

// Toggle indexes.
const (
	toggleLineNumbers = iota
	toggleWrap
	toggleInsights
)

// Panel indexes.
const (
	panelEditor = iota
	panelInsights
)

var bufferLines = []string{
	"func main() {",
	"\tfmt.Println(\"hello\")",
	"\tfor i := range 3 {",
	"\t\tfmt.Println(i)",
	"\t}",
	"}",
}

// editorLines renders the buffer with tabs expanded and an optional gutter.
func editorLines(numbered bool) []string {
	lines := make([]string, len(bufferLines))
	for i, line := range bufferLines {
		line = strings.ReplaceAll(line, "\t", "    ")
		if numbered {
			line = fmt.Sprintf("%2d  %s", i+1, line)
		}
		lines[i] = line
	}
	return lines
}

// =============================================================================
// MODEL
// =============================================================================

// Deps are the engine pieces the preview drives.
type Deps struct {
	Animator  *micro.Animator
	Scheduler *anim.Scheduler
	Coalescer *redraw.Coalescer
	Theme     *styles.Theme
	Logger    *slog.Logger

	// LineNumbers is the initial state of the editor gutter.
	LineNumbers bool
}

// Model is the Bubble Tea model of the preview: one of every animated
// component, each wired to its recipe.
type Model struct {
	keys   KeyMap
	help   help.Model
	theme  *styles.Theme
	a      *micro.Animator
	sched  *anim.Scheduler
	coal   *redraw.Coalescer
	logger *slog.Logger

	tabs         *components.TabBar
	toggles      []*components.Toggle
	button       *components.Button
	tooltip      *components.Tooltip
	notification *components.Notification
	panels       []*components.Panel
	focus        int
	cursor       *components.Cursor
	results      []*components.SearchResult
	current      int
	popup        *components.CompletionPopup

	presses  int
	notices  int
	status   string
	quitting bool
}

// New creates the preview model.
func New(d Deps) Model {
	theme := d.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  theme,
		a:      d.Animator,
		sched:  d.Scheduler,
		coal:   d.Coalescer,
		logger: logger,

		tabs: components.NewTabBar("main.go", "README.md", "config.toml"),
		toggles: []*components.Toggle{
			components.NewToggle("Line numbers", d.LineNumbers),
			components.NewToggle("Word wrap", false),
			components.NewToggle("Insights", true),
		},
		button:       components.NewButton("Save"),
		tooltip:      components.NewTooltip("b saves the buffer"),
		notification: components.NewNotification(""),
		panels: []*components.Panel{
			components.NewPanel("Editor", 40, editorLines(d.LineNumbers)...),
			components.NewPanel("Insights", 30, "3 functions", "no lint findings"),
		},
		cursor:  components.NewCursor(),
		current: -1,
		popup: components.NewCompletionPopup(24,
			components.NewCompletionItem("fmt.Println", "func"),
			components.NewCompletionItem("fmt.Printf", "func"),
			components.NewCompletionItem("fmt.Sprintf", "func"),
			components.NewCompletionItem("fmt.Errorf", "func"),
		),
		status: "ready",
	}
}

// Init starts the ambient animations: the cursor blink and the focus ring
// of the first panel.
func (m Model) Init() tea.Cmd {
	m.a.CursorBlink(m.cursor, 0)
	m.a.PanelFocus(m.panels[m.focus])
	return nil
}

// Update handles a message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.theme.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case RedrawMsg:
		return m, nil

	case ConfigMsg:
		m.a.Reconfigure(msg.Config.Animations)
		if m.coal != nil {
			m.coal.SetFPS(msg.Config.Animations.RedrawFPS)
		}
		if msg.Config.Animations.Enabled {
			m.a.CursorBlink(m.cursor, 0)
		}
		m.status = "config reloaded"
		m.logger.Info("preview applied reloaded config", "enabled", msg.Config.Animations.Enabled)
		return m, nil

	case ConfigErrorMsg:
		m.status = "config error: " + msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.a.Shutdown()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(m.tabs.Next())

	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(m.tabs.Prev())

	case key.Matches(msg, m.keys.Toggle):
		m.flip(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Press):
		m.presses++
		m.a.ButtonPress(m.button)
		m.status = fmt.Sprintf("saved (%d)", m.presses)

	case key.Matches(msg, m.keys.Notify):
		m.notices++
		m.notification.Message = fmt.Sprintf("build %d finished", m.notices)
		m.a.Notification(m.notification)
		m.a.NotificationPopIn(m.notification)

	case key.Matches(msg, m.keys.Hint):
		m.toggleHint()

	case key.Matches(msg, m.keys.Search):
		m.search("fmt")

	case key.Matches(msg, m.keys.NextMatch):
		m.navigate(1)

	case key.Matches(msg, m.keys.PrevMatch):
		m.navigate(-1)

	case key.Matches(msg, m.keys.ClearMatch):
		m.clearSearch()

	case key.Matches(msg, m.keys.Complete):
		m.togglePopup()

	case key.Matches(msg, m.keys.ItemUp):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.ItemDown):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus()

	default:
		// Typing shows the cursor and restarts its blink phase.
		m.cursor.Show()
		m.a.CursorBlink(m.cursor, 0)
	}
	return m, nil
}

// =============================================================================
// ACTIONS
// =============================================================================

func (m *Model) switchTab(from int) {
	to := m.tabs.Active()
	m.a.TabTransition(m.tabs, from, to)
	m.a.TabActivation(m.tabs.ActiveTab())
	m.status = "tab " + m.tabs.ActiveTab().Label
}

func (m *Model) flip(i int) {
	if i < 0 || i >= len(m.toggles) {
		return
	}
	t := m.toggles[i]
	on := t.Flip()
	m.a.Toggle(t, on)

	switch i {
	case toggleLineNumbers:
		m.panels[panelEditor].Lines = editorLines(on)
	case toggleInsights:
		p := m.panels[panelInsights]
		p.SetVisible(on)
		m.a.PanelFade(p, on)
		if on {
			m.a.PanelSlideIn(p)
		}
		if !on && m.focus == panelInsights {
			m.cycleFocus()
		}
	}
}

func (m *Model) toggleHint() {
	if m.tooltip.Visible() {
		m.a.Stop(m.tooltip)
		m.tooltip.Hide()
		return
	}
	m.tooltip.Show()
	m.a.TooltipShow(m.tooltip)
}

func (m *Model) search(term string) {
	m.clearSearch()
	for i, line := range bufferLines {
		if strings.Contains(line, term) {
			m.results = append(m.results, components.NewSearchResult(i+1, strings.TrimSpace(line)))
		}
	}
	if len(m.results) == 0 {
		m.status = "no matches"
		return
	}
	m.current = 0
	for i, r := range m.results {
		m.a.SearchResult(r, i == m.current)
	}
	m.status = fmt.Sprintf("%d matches for %q", len(m.results), term)
}

func (m *Model) navigate(delta int) {
	n := len(m.results)
	if n == 0 {
		return
	}
	old := m.results[m.current]
	m.current = ((m.current+delta)%n + n) % n
	m.a.SearchResult(old, false)
	m.a.SearchNavigation(m.results[m.current])
	m.status = fmt.Sprintf("match %d/%d", m.current+1, n)
}

func (m *Model) clearSearch() {
	for _, r := range m.results {
		m.a.Forget(r)
	}
	m.results = nil
	m.current = -1
}

func (m *Model) togglePopup() {
	open := !m.popup.Open()
	m.popup.SetOpen(open)
	m.a.CompletionPopup(m.popup, open)
	if !open {
		return
	}
	for _, item := range m.popup.Items() {
		m.a.Stop(item)
		item.Deselect()
	}
	if item := m.popup.SelectedItem(); item != nil {
		m.a.CompletionSelection(item)
	}
}

func (m *Model) moveSelection(delta int) {
	if !m.popup.Open() {
		return
	}
	prev, next := m.popup.Move(delta)
	if prev == nil {
		return
	}
	m.a.Stop(prev)
	prev.Deselect()
	m.a.CompletionSelection(next)
}

func (m *Model) cycleFocus() {
	old := m.panels[m.focus]
	m.a.Stop(old)
	old.Blur()

	for i := 1; i <= len(m.panels); i++ {
		next := (m.focus + i) % len(m.panels)
		if m.panels[next].Visible() {
			m.focus = next
			break
		}
	}
	m.a.PanelFocus(m.panels[m.focus])
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	var toggles []string
	for _, tg := range m.toggles {
		toggles = append(toggles, tg.View(t))
	}

	editor := m.panels[panelEditor]
	panels := []string{editor.View(t)}
	if v := m.panels[panelInsights].View(t); v != "" {
		panels = append(panels, v)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	if t.GetLayoutMode() == styles.LayoutNarrow {
		body = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	sections := []string{
		t.Title.Render("textshell") + " " + t.Subtitle.Render("animation preview"),
		m.tabs.View(t),
		strings.Join(toggles, "  "),
		lipgloss.JoinHorizontal(lipgloss.Center, m.button.View(t), "  ", m.notification.View(t)),
	}
	if hint := m.tooltip.View(t); hint != "" {
		sections = append(sections, hint)
	}
	sections = append(sections,
		body,
		"> "+m.cursor.View(t),
	)
	if popup := m.popup.View(t); popup != "" {
		sections = append(sections, popup)
	}
	if len(m.results) > 0 {
		rows := make([]string, len(m.results))
		for i, r := range m.results {
			rows[i] = r.View(t)
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}
	sections = append(sections, m.statusLine(), m.help.View(m.keys))

	return t.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) statusLine() string {
	running := len(m.a.Manager().Animating())
	line := fmt.Sprintf("%s | animating %d", m.status, running)
	if m.sched != nil {
		line += fmt.Sprintf(" | frames %d", m.sched.Fired())
	}
	if m.coal != nil {
		line += fmt.Sprintf(" | redraws %d/%d", m.coal.Flushes(), m.coal.Requests())
	}
	if !m.a.Enabled() {
		line += " | animations off"
	}
	return m.theme.Status.Render(line)
}
