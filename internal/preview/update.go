package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hullochat/hullo/internal/tier"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer = NewRenderer(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case documentReloadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("reload failed: %v", msg.err)
			return m, nil
		}
		m.doc = msg.doc
		m.reprocess()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		m.toggleScheme()
		return m, nil

	case "1":
		m.setTier(tier.Basic)
		return m, nil

	case "2":
		m.setTier(tier.Pro)
		return m, nil

	case "3":
		m.setTier(tier.Agency)
		return m, nil

	case "r":
		if m.loading || m.path == "" {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, reloadCmd(m.path))

	case "?":
		m.showHelp = true
		return m, nil

	case "esc":
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}
