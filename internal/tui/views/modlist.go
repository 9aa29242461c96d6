package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ModList is a read-only, filterable view over the normalized mod list.
type ModList struct {
	records  []domain.ModRecord
	filtered []domain.ModRecord

	filterInput   textinput.Model
	filterFocused bool
	selected      int
	offset        int
	width         int
	height        int
}

// NewModList creates the mod list view.
func NewModList(records []domain.ModRecord) ModList {
	ti := textinput.New()
	ti.Placeholder = "Filter mods..."
	ti.CharLimit = 100
	ti.Width = 40

	return ModList{
		records:  records,
		filtered: records,

		filterInput: ti,
		width:       80,
		height:      24,
	}
}

// Selected returns the currently selected index within the filtered list.
func (m ModList) Selected() int {
	return m.selected
}

// VisibleCount returns the number of records matching the current filter.
func (m ModList) VisibleCount() int {
	return len(m.filtered)
}

// SelectedMod returns the currently selected record.
func (m ModList) SelectedMod() *domain.ModRecord {
	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.selected]
}

// Init implements tea.Model
func (m ModList) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ModList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil
	}
	return m, nil
}

func (m ModList) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterFocused {
		switch msg.String() {
		case "enter", "esc":
			m.filterFocused = false
			m.filterInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.applyFilter()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.filterFocused = true
		return m, m.filterInput.Focus()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		m.ensureVisible()
		return m, nil

	case "down", "j":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		m.ensureVisible()
		return m, nil

	case "g", "home":
		m.selected = 0
		m.ensureVisible()
		return m, nil

	case "G", "end":
		if len(m.filtered) > 0 {
			m.selected = len(m.filtered) - 1
		}
		m.ensureVisible()
		return m, nil
	}
	return m, nil
}

// applyFilter recomputes the visible records from the filter text.
func (m *ModList) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if query == "" {
		m.filtered = m.records
	} else {
		var filtered []domain.ModRecord
		for _, rec := range m.records {
			if strings.Contains(strings.ToLower(rec.DisplayName), query) ||
				strings.Contains(strings.ToLower(rec.Game), query) {
				filtered = append(filtered, rec)
			}
		}
		m.filtered = filtered
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
	m.ensureVisible()
}

// listRows returns how many record lines fit below the header and above the
// footer.
func (m ModList) listRows() int {
	rows := m.height - 5
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureVisible scrolls the viewport so the selection stays on screen.
func (m *ModList) ensureVisible() {
	rows := m.listRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
}

// View implements tea.Model
func (m ModList) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Vortex mods (%d)", len(m.filtered))))
	b.WriteString("  ")
	b.WriteString(m.filterInput.View())
	b.WriteString("\n\n")

	rows := m.listRows()
	for i := m.offset; i < len(m.filtered) && i < m.offset+rows; i++ {
		rec := m.filtered[i]
		marker := disabledStyle.Render("✗")
		if rec.Enabled {
			marker = enabledStyle.Render("✓")
		}
		line := fmt.Sprintf("%s %-50s %-18s %s", marker,
			clip(rec.DisplayName, 50), clip(rec.DisplayVersion, 18), dimStyle.Render(rec.Game))
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if sel := m.SelectedMod(); sel != nil && sel.Homepage != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(sel.Homepage))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move · / filter · q quit"))
	return b.String()
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
