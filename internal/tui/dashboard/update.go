package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hullochat/hullo/internal/registry"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)

		// Check minimum terminal size
		const minWidth = 80
		const minHeight = 24
		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			// Clear size error if terminal is now big enough
			m.showError = false
			m.errorMsg = ""
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Spinner tick for loading animations
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Status loading messages
	case InitialStatusLoadedMsg:
		for id, status := range msg.Statuses {
			m.UpdateWidgetStatus(id, status.Status, status.LastChecked)
		}
		m.sortWidgets()
		return m, nil

	// Check messages
	case CheckCompleteMsg:
		m.UpdateWidgetStatus(msg.WidgetID, msg.Result.Status, time.Now())
		m.SetCheckResult(msg.WidgetID, msg.Result)
		delete(m.loading, msg.WidgetID)
		m.sortWidgets()

		// Save to cache
		return m, saveStatusToCacheCmd(m.statusCache, msg.WidgetID, msg.Result)

	// Fix messages
	case FixCompleteMsg:
		delete(m.loading, msg.WidgetID)
		m.ClearError(msg.WidgetID)

		// Auto re-check so status and detail reflect the rewritten document
		if widget, _, ok := m.GetWidgetByID(msg.WidgetID); ok {
			m.loading[msg.WidgetID] = true
			m.UpdateWidgetStatus(msg.WidgetID, registry.StatusChecking, time.Now())
			return m, tea.Batch(m.spinner.Tick, checkCmd(widget))
		}
		return m, nil

	case FixErrorMsg:
		m.UpdateWidgetStatus(msg.WidgetID, registry.StatusBroken, time.Now())
		delete(m.loading, msg.WidgetID)
		m.errors[msg.WidgetID] = msg.Error.Error()
		m.showError = true
		m.errorMsg = fmt.Sprintf("Fix failed: %s", msg.Error.Error())
		return m, nil

	// Refresh messages
	case RefreshStartedMsg:
		m.refreshing = true
		m.refreshProgress = 0
		m.refreshTotal = msg.Total
		return m, m.spinner.Tick

	case RefreshWidgetCompleteMsg:
		m.refreshProgress = msg.Index + 1
		delete(m.loading, msg.WidgetID)
		if msg.Result != nil {
			m.UpdateWidgetStatus(msg.WidgetID, msg.Result.Status, time.Now())
			m.SetCheckResult(msg.WidgetID, msg.Result)

			// Save to cache synchronously; completion tracking below counts
			// arrivals and must not race with a deferred save command.
			cached := registry.CachedStatus{
				Status:      msg.Result.Status,
				LastChecked: time.Now(),
				Summary:     msg.Result.Summary(),
				Violations:  len(msg.Result.Violations),
			}
			if err := m.statusCache.Set(msg.WidgetID, cached); err != nil {
				m.showError = true
				m.errorMsg = fmt.Sprintf("Failed to save cache: %s", err.Error())
			} else if err := m.statusCache.Save(); err != nil {
				m.showError = true
				m.errorMsg = fmt.Sprintf("Failed to save cache: %s", err.Error())
			}
		}
		// If all widgets re-checked, trigger completion
		if m.refreshProgress >= m.refreshTotal {
			return m, func() tea.Msg {
				return RefreshCompleteMsg{}
			}
		}
		return m, nil

	case RefreshCompleteMsg:
		m.refreshing = false
		m.refreshProgress = 0
		m.refreshTotal = 0
		m.sortWidgets()
		return m, nil

	// Navigation messages
	case WidgetSelectedMsg:
		m.selectedID = msg.Widget.ID
		m.viewMode = ViewDetail
		return m, nil

	case BackToListMsg:
		m.viewMode = ViewList
		m.selectedID = ""
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	case ViewConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Clear error banner
	case "x":
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	// Quit
	case "q", "ctrl+c":
		return m, tea.Quit

	// Navigation
	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Direct selection with number keys
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		if index < len(m.widgets) {
			m.SetCursor(index)
		}
		return m, nil

	// Select widget
	case "enter", " ":
		if selected, ok := m.GetSelectedWidget(); ok {
			m.selectedID = selected.ID
			m.viewMode = ViewDetail
		}
		return m, nil

	// Re-check all widgets
	case "r":
		if m.refreshing {
			// Already refreshing, ignore
			return m, nil
		}

		if len(m.widgets) == 0 {
			return m, nil
		}

		m.refreshing = true
		m.refreshProgress = 0
		m.refreshTotal = len(m.widgets)

		// Launch a check for each widget in parallel
		var cmds []tea.Cmd
		cmds = append(cmds, m.spinner.Tick)

		for i := range m.widgets {
			m.loading[m.widgets[i].ID] = true
			cmds = append(cmds, refreshSingleCmd(m.widgets[i], i, len(m.widgets)))
		}

		return m, tea.Batch(cmds...)

	// Help
	case "?":
		m.viewMode = ViewHelp
		return m, nil

	// Clear error
	case "esc":
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleDetailKeys handles keys in detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Clear error banner
	case "x":
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	// Quit application
	case "q", "ctrl+c":
		return m, tea.Quit

	// Back to list
	case "esc", "backspace":
		m.viewMode = ViewList
		m.selectedID = ""
		return m, nil

	// Check the selected widget's document
	case "c", "r":
		widget, _, ok := m.GetWidgetByID(m.selectedID)
		if !ok || m.loading[widget.ID] {
			return m, nil
		}

		m.loading[widget.ID] = true
		m.UpdateWidgetStatus(widget.ID, registry.StatusChecking, time.Now())

		return m, tea.Batch(m.spinner.Tick, checkCmd(widget))

	// Fix the selected widget's document (with confirmation)
	case "f":
		widget, _, ok := m.GetWidgetByID(m.selectedID)
		if !ok || m.loading[widget.ID] {
			return m, nil
		}

		name := widget.Name
		if name == "" {
			name = widget.ID
		}

		// Show confirmation dialog
		m.confirmAction = "fix"
		m.confirmWidget = widget.ID
		m.confirmMessage = fmt.Sprintf("Write sanitizer corrections to '%s'?", name)
		m.viewMode = ViewConfirm
		return m, nil

	// Help
	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}
	return m, nil
}

// handleHelpKeys handles keys in help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		// Return to previous view
		if m.selectedID != "" {
			m.viewMode = ViewDetail
		} else {
			m.viewMode = ViewList
		}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleConfirmKeys handles keys in confirmation dialog
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		// User confirmed action
		action := m.confirmAction
		widgetID := m.confirmWidget

		// Clear confirmation state
		m.confirmAction = ""
		m.confirmWidget = ""
		m.confirmMessage = ""
		m.viewMode = ViewDetail

		switch action {
		case "fix":
			if widget, _, ok := m.GetWidgetByID(widgetID); ok {
				m.loading[widget.ID] = true
				return m, tea.Batch(m.spinner.Tick, fixCmd(widget))
			}
		}
		return m, nil

	case "n", "N", "esc":
		// User cancelled
		m.confirmAction = ""
		m.confirmWidget = ""
		m.confirmMessage = ""
		m.viewMode = ViewDetail
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
