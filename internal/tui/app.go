// Package tui provides the interactive mod list browser.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/domain"
	"github.com/Delphi79/Universal-Vortex-Mod-Exporter/internal/tui/views"
)

// Run starts the browser over an already-normalized record list and blocks
// until the user quits. The view is read-only; nothing it does can touch
// Vortex's state.
func Run(records []domain.ModRecord) error {
	model := views.NewModList(records)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
