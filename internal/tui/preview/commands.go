package preview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// listenCmd waits for the next completed image load. The model re-issues it
// after every ImageLoadedMsg.
func listenCmd(updates <-chan string) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		key, ok := <-updates
		if !ok {
			return imagesClosedMsg{}
		}
		return ImageLoadedMsg{URL: key}
	}
}
