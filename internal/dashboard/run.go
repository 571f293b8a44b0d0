package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/lightmixer/internal/light"
)

// Run takes over the terminal and shows the dashboard until the quit key.
//
// Bubble Tea switches to raw mode and the alternate screen on start and
// restores the terminal (mode, screen, mouse capture, cursor) on every exit
// path, including a panic inside Update or View.
func Run(controllers []*light.Controller, opts Options, progOpts ...tea.ProgramOption) error {
	progOpts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, progOpts...)

	p := tea.NewProgram(New(controllers, opts), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
