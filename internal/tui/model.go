// Package tui provides a read-only terminal browser for a compiled plan:
// epics expand into stories, stories into subtasks, each row showing the
// node's difficulty and estimate.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AKhubcher/TaskManager/internal/planner"
)

// nodeRef addresses one visible row in the flattened plan tree.
type nodeRef struct {
	epic    int
	story   int // -1 for epic rows
	subtask int // -1 for epic and story rows
}

// Model is the bubbletea model for the plan browser.
type Model struct {
	plan *planner.Plan
	keys KeyMap

	rows     []nodeRef
	cursor   int
	expanded map[nodeRef]bool

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates a browser over a compiled plan with all epics collapsed.
func New(plan *planner.Plan) Model {
	m := Model{
		plan:     plan,
		keys:     DefaultKeyMap(),
		expanded: make(map[nodeRef]bool),
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		body := m.height - 3 // title + help line
		if body < 1 {
			body = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, body)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = body
		}
		m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.refresh()
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			m.refresh()
		case key.Matches(msg, m.keys.Toggle):
			m.toggle(m.rows[m.cursor])
			m.rebuild()
			m.refresh()
		case key.Matches(msg, m.keys.Expand):
			m.expandAll()
			m.rebuild()
			m.refresh()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	title := styleTitle.Render(fmt.Sprintf(" plan: %d epics · %d stories · %d subtasks",
		len(m.plan.Epics), m.plan.StoryCount(), m.plan.SubtaskCount()))
	help := styleHelp.Render(" ↑/↓ move · enter expand · a expand all · q quit")
	return title + "\n" + m.viewport.View() + "\n" + help
}

// toggle flips the expansion state of an epic or story row.
func (m *Model) toggle(ref nodeRef) {
	if ref.subtask >= 0 {
		return // leaves don't expand
	}
	m.expanded[ref] = !m.expanded[ref]
}

func (m *Model) expandAll() {
	for i, e := range m.plan.Epics {
		m.expanded[nodeRef{epic: i, story: -1, subtask: -1}] = true
		for j := range e.Stories {
			m.expanded[nodeRef{epic: i, story: j, subtask: -1}] = true
		}
	}
}

// rebuild recomputes the visible row list from the expansion state.
func (m *Model) rebuild() {
	m.rows = m.rows[:0]
	for i, epic := range m.plan.Epics {
		epicRef := nodeRef{epic: i, story: -1, subtask: -1}
		m.rows = append(m.rows, epicRef)
		if !m.expanded[epicRef] {
			continue
		}
		for j, story := range epic.Stories {
			storyRef := nodeRef{epic: i, story: j, subtask: -1}
			m.rows = append(m.rows, storyRef)
			if !m.expanded[storyRef] {
				continue
			}
			for k := range story.Subtasks {
				m.rows = append(m.rows, nodeRef{epic: i, story: j, subtask: k})
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// refresh re-renders the viewport content and keeps the cursor visible.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	var b strings.Builder
	for i, ref := range m.rows {
		b.WriteString(m.renderRow(ref, i == m.cursor))
		b.WriteByte('\n')
	}
	m.viewport.SetContent(b.String())

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m *Model) renderRow(ref nodeRef, selected bool) string {
	var summary, difficulty, estimate, indent string
	var style = styleEpic

	switch {
	case ref.story < 0:
		e := m.plan.Epics[ref.epic]
		marker := "▸ "
		if m.expanded[nodeRef{epic: ref.epic, story: -1, subtask: -1}] {
			marker = "▾ "
		}
		summary, difficulty, estimate = marker+e.Summary, string(e.Difficulty), e.EstimatedTime
	case ref.subtask < 0:
		s := m.plan.Epics[ref.epic].Stories[ref.story]
		summary, difficulty, estimate = s.Summary, string(s.Difficulty), s.EstimatedTime
		indent, style = "  ", styleStory
	default:
		st := m.plan.Epics[ref.epic].Stories[ref.story].Subtasks[ref.subtask]
		summary, difficulty, estimate = st.Summary, string(st.Difficulty), st.EstimatedTime
		indent, style = "    ", styleSubtask
	}

	prefix := "  "
	if selected {
		prefix = selectionIndicator + " "
		style = style.Inherit(styleSelected)
	}

	return prefix + indent + style.Render(summary) + " " +
		difficultyStyle(difficulty).Render("["+difficulty+"]") + " " +
		styleEstimate.Render(estimate)
}

// Run launches the browser and blocks until the user quits.
func Run(plan *planner.Plan) error {
	_, err := tea.NewProgram(New(plan), tea.WithAltScreen()).Run()
	return err
}
