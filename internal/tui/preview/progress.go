package preview

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// imageProgress renders how many of the document's images have settled.
type imageProgress struct {
	bar   progress.Model
	total int
}

func newImageProgress(total int) imageProgress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return imageProgress{bar: bar, total: total}
}

func (p imageProgress) View(settled int) string {
	if p.total == 0 {
		return ""
	}
	ratio := math.Min(1.0, float64(settled)/float64(p.total))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("images %d/%d", settled, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
