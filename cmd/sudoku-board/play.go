package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svw.info/sudoku-board/internal/session"
	"svw.info/sudoku-board/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := tui.NewModel(session.New())
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}
