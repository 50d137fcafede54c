package preview

import (
	"fmt"
	"strings"
)

// View renders the document viewport with a title line and a status line.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	var b strings.Builder
	title := m.title
	if title == "" {
		title = "mdblocks"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{statusStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))}
	if m.Loading() {
		parts = append(parts, m.spinner.View())
	}
	if bar := m.progress.View(len(m.settled)); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, helpStyle.Render("↑/↓ scroll • g/G top/bottom • q quit"))
	return strings.Join(parts, "  ")
}
