package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/contacts/internal/shared"
	"github.com/desertthunder/contacts/internal/store"
	"github.com/desertthunder/contacts/internal/ui"
	"github.com/urfave/cli/v3"
)

// Browse launches the interactive terminal UI for browsing contacts.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.logger.GetLevel())
	r.SetLogger(fileLogger)

	path := r.config.Store.Path
	loader := ui.FileLoader(path, store.Options{Header: r.config.Store.Header, Logger: fileLogger})

	if _, err := loader(); err != nil {
		return err
	}

	model := ui.NewModel(path, loader)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
