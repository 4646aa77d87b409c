package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/topogen/pkg/suite"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TestPickerModel - Interactive test selection
// =============================================================================

// TestPickerModel is the bubbletea model for choosing which tests to generate.
// Space toggles the test under the cursor, a selects all, enter confirms.
type TestPickerModel struct {
	Tests     []suite.Binding
	Cursor    int
	Offset    int
	Height    int
	Marked    map[int]bool
	Confirmed bool
}

// NewTestPickerModel creates a picker with every test marked.
func NewTestPickerModel(tests []suite.Binding) TestPickerModel {
	marked := make(map[int]bool, len(tests))
	for _, b := range tests {
		marked[b.ID] = true
	}
	return TestPickerModel{
		Tests:  tests,
		Height: 15,
		Marked: marked,
	}
}

// Selected returns the marked test ids in suite order, or nil when the
// picker was not confirmed.
func (m TestPickerModel) Selected() []int {
	if !m.Confirmed {
		return nil
	}
	var ids []int
	for _, b := range m.Tests {
		if m.Marked[b.ID] {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func (m TestPickerModel) Init() tea.Cmd {
	return nil
}

func (m TestPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Tests)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			if len(m.Tests) > 0 {
				id := m.Tests[m.Cursor].ID
				m.Marked[id] = !m.Marked[id]
			}
		case "a":
			all := m.markedCount() < len(m.Tests)
			for _, b := range m.Tests {
				m.Marked[b.ID] = all
			}
		case "enter":
			if m.markedCount() == 0 {
				return m, nil
			}
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TestPickerModel) markedCount() int {
	n := 0
	for _, b := range m.Tests {
		if m.Marked[b.ID] {
			n++
		}
	}
	return n
}

func (m TestPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tests"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Tests))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		t := m.Tests[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Marked[t.ID] {
			mark = "[x]"
		}
		rows = append(rows, []string{cursor + mark, strconv.Itoa(t.ID), t.Name, string(t.Topology), t.Nodes.String()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Topology", "Nodes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Tests) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Marked[m.Tests[idx].ID] {
				base = base.Foreground(colorDim)
			} else if col == 3 || col == 4 {
				base = base.Foreground(colorGray)
			} else {
				base = base.Foreground(colorGreen)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d selected", m.Cursor+1, len(m.Tests), m.markedCount())))

	return b.String()
}

// pickTests runs the interactive picker and returns the confirmed ids.
// A nil result with a nil error means the user quit without confirming.
func pickTests(s *suite.Suite) ([]int, error) {
	final, err := tea.NewProgram(NewTestPickerModel(s.Bindings())).Run()
	if err != nil {
		return nil, err
	}
	return final.(TestPickerModel).Selected(), nil
}
