package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-board/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	givenStyle    = lipgloss.NewStyle().Bold(true)
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	emptyStyle    = lipgloss.NewStyle().Faint(true)
	conflictStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	frameStyle    = lipgloss.NewStyle().Faint(true)

	statusStyles = map[domain.StatusKind]lipgloss.Style{
		domain.StatusError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		domain.StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.StatusSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	conflicts := map[domain.CellCoord]bool{}
	if m.view.ShowConflicts {
		for _, cc := range m.view.Verdict.Conflicts {
			conflicts[cc] = true
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sudoku"))
	b.WriteString("\n\n")

	rule := frameStyle.Render("+-------+-------+-------+")
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			b.WriteString(rule)
			b.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				b.WriteString(frameStyle.Render("| "))
			}
			b.WriteString(m.renderCell(r, c, conflicts))
			b.WriteByte(' ')
		}
		b.WriteString(frameStyle.Render("|"))
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteString("\n\n")

	if st := m.view.Status; st.Kind != domain.StatusNone {
		b.WriteString(statusStyles[st.Kind].Render(st.Message))
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) renderCell(r, c int, conflicts map[domain.CellCoord]bool) string {
	v := m.view.Board.Values[r][c]
	s := "."
	style := emptyStyle
	if v != 0 {
		s = fmt.Sprintf("%d", v)
		if m.view.Board.Fixed[r][c] {
			style = givenStyle
		} else {
			style = entryStyle
		}
	}
	if conflicts[domain.CellCoord{Row: r, Col: c}] {
		style = conflictStyle
	}
	if m.cursor.Row == r && m.cursor.Col == c {
		style = cursorStyle
	}
	return style.Render(s)
}
