// Package render draws a yard state as styled text for the trace command
// and the MCP render tool.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harborsim/craneyard/yard/engine"
)

var (
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	containerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	craneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	largeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	queueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Board renders the state as one block of text: per row the remaining
// queue, the board cells, and the delivered containers, followed by a crane
// summary line.
func Board(st *engine.State) string {
	snap := st.Snapshot()
	var b strings.Builder

	for r := 0; r < snap.Size; r++ {
		b.WriteString(queueStyle.Render(fmt.Sprintf("%12s", joinIDs(snap.Queues[r]))))
		b.WriteString(" |")
		for c := 0; c < snap.Size; c++ {
			b.WriteByte(' ')
			b.WriteString(cellText(snap, r, c))
		}
		b.WriteString(" | ")
		b.WriteString(doneStyle.Render(joinIDs(snap.Done[r])))
		b.WriteByte('\n')
	}

	b.WriteString(craneSummary(snap))
	return b.String()
}

// cellText renders one board cell, marking any crane standing on it.
func cellText(snap engine.StateSnapshot, r, c int) string {
	cell := snap.Board[r][c]
	text := ".."
	style := emptyStyle
	if cell.Occupied {
		text = fmt.Sprintf("%2d", cell.Container)
		style = containerStyle
	}
	for i, crane := range snap.Cranes {
		if crane.Pos.At(r, c) {
			s := craneStyle
			if crane.Large {
				s = largeStyle
			}
			mark := "-"
			if crane.Carrying {
				mark = "+"
			}
			return style.Render(text) + s.Render(fmt.Sprintf("%s%d", mark, i))
		}
	}
	return style.Render(text) + "  "
}

// craneSummary renders one line describing every crane.
func craneSummary(snap engine.StateSnapshot) string {
	parts := make([]string, 0, len(snap.Cranes))
	for i, crane := range snap.Cranes {
		var desc string
		switch {
		case crane.Pos.Removed:
			desc = fmt.Sprintf("%d:bombed", i)
		case crane.Carrying:
			desc = fmt.Sprintf("%d@(%d,%d) carrying %d", i, crane.Pos.Row, crane.Pos.Col, crane.Payload)
		default:
			desc = fmt.Sprintf("%d@(%d,%d)", i, crane.Pos.Row, crane.Pos.Col)
		}
		if crane.Large {
			desc += " (large)"
		}
		parts = append(parts, desc)
	}
	return craneStyle.Render("cranes: ") + strings.Join(parts, "  ")
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, " ")
}
