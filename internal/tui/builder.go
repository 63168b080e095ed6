package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

func RunBuilder(ctx context.Context, deps Deps, out io.Writer) error {
	m := newBuilderModel(ctx, deps)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
