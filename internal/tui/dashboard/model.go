// Package dashboard implements the interactive status board over the widget
// registry: a list of registered widgets with their last check outcome, a
// per-widget detail screen, and confirm-then-fix write-back.
package dashboard

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hullochat/hullo/internal/ports"
	"github.com/hullochat/hullo/internal/registry"
)

// Model is the main dashboard model
type Model struct {
	// Core data
	widgets     []registry.Widget
	store       ports.ConfigStore
	statusCache *registry.StatusCache

	// UI state
	viewMode     ViewMode
	cursor       int
	selectedID   string
	scrollOffset int

	// Component state
	spinner spinner.Model

	// Operation state
	loading   map[string]bool
	errors    map[string]string
	showError bool
	errorMsg  string

	// Refresh state
	refreshing      bool
	refreshProgress int
	refreshTotal    int

	// Confirmation state
	confirmAction  string
	confirmWidget  string
	confirmMessage string

	// Dimensions
	width  int
	height int

	// Configuration
	useUnicode bool
}

// NewModel creates a new dashboard model. The store is any ConfigStore
// implementation; the CLI passes the file-backed registry. Statuses recorded
// in the cache seed the initial list.
func NewModel(widgets []registry.Widget, store ports.ConfigStore, cache *registry.StatusCache) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		widgets:     widgets,
		store:       store,
		statusCache: cache,
		viewMode:    ViewList,
		cursor:      0,
		loading:     make(map[string]bool),
		errors:      make(map[string]string),
		spinner:     s,
		useUnicode:  true,
		width:       80,
		height:      24,
	}

	// Load cached statuses
	for i := range m.widgets {
		if cached, ok := cache.Get(m.widgets[i].ID); ok {
			m.widgets[i].Status = cached.Status
			m.widgets[i].LastChecked = cached.LastChecked
		} else if m.widgets[i].Status == "" {
			m.widgets[i].Status = registry.StatusUnknown
		}
	}

	// Sort widgets by priority
	m.sortWidgets()

	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
	}

	if len(m.widgets) > 0 {
		cmds = append(cmds, loadInitialStatusCmd(m.widgets, m.statusCache))
	}

	return tea.Batch(cmds...)
}

// Helper Methods

// sortWidgets sorts widgets by status priority: broken > correctable >
// clean > unknown
func (m *Model) sortWidgets() {
	sort.SliceStable(m.widgets, func(i, j int) bool {
		return m.getStatusPriority(m.widgets[i].Status) < m.getStatusPriority(m.widgets[j].Status)
	})
}

// getStatusPriority returns sort priority for a status (lower = higher priority)
func (m *Model) getStatusPriority(status registry.WidgetStatus) int {
	switch status {
	case registry.StatusBroken:
		return 0
	case registry.StatusCorrectable:
		return 1
	case registry.StatusClean:
		return 2
	case registry.StatusChecking:
		return 3
	default: // Unknown
		return 4
	}
}

// CountByStatus returns counts of widgets in each status
func (m *Model) CountByStatus() map[registry.WidgetStatus]int {
	counts := make(map[registry.WidgetStatus]int)
	for _, w := range m.widgets {
		counts[w.Status]++
	}
	return counts
}

// GetSelectedWidget returns the widget under the cursor
func (m *Model) GetSelectedWidget() (registry.Widget, bool) {
	if m.cursor < 0 || m.cursor >= len(m.widgets) {
		return registry.Widget{}, false
	}
	return m.widgets[m.cursor], true
}

// GetWidgetByID returns a widget and its list position by ID
func (m *Model) GetWidgetByID(id string) (registry.Widget, int, bool) {
	for i, w := range m.widgets {
		if w.ID == id {
			return w, i, true
		}
	}
	return registry.Widget{}, -1, false
}

// UpdateWidgetStatus updates the status and check time of a widget
func (m *Model) UpdateWidgetStatus(id string, status registry.WidgetStatus, lastChecked time.Time) {
	for i := range m.widgets {
		if m.widgets[i].ID == id {
			m.widgets[i].Status = status
			m.widgets[i].LastChecked = lastChecked
			break
		}
	}
}

// SetCheckResult stores the full check result for the detail view
func (m *Model) SetCheckResult(id string, result *registry.CheckResult) {
	for i := range m.widgets {
		if m.widgets[i].ID == id {
			m.widgets[i].LastCheck = result
			break
		}
	}
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.widgets) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.widgets) - 1
	}
	m.ensureCursorVisible()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.widgets) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.widgets) {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// SetCursor sets cursor to specific index
func (m *Model) SetCursor(index int) {
	if index >= 0 && index < len(m.widgets) {
		m.cursor = index
		m.ensureCursorVisible()
	}
}

// ensureCursorVisible keeps the cursor inside the scroll window the list
// view renders. Uses the same row budget as renderWidgetList.
func (m *Model) ensureCursorVisible() {
	visible := m.height - 10
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// IsLoading checks if a widget has an operation in progress
func (m *Model) IsLoading(id string) bool {
	return m.loading[id]
}

// HasError checks if a widget has an error
func (m *Model) HasError(id string) bool {
	_, ok := m.errors[id]
	return ok
}

// GetError returns the error message for a widget
func (m *Model) GetError(id string) string {
	return m.errors[id]
}

// ClearError clears the error for a widget
func (m *Model) ClearError(id string) {
	delete(m.errors, id)
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// IsRefreshing returns whether a re-check of all widgets is in progress
func (m *Model) IsRefreshing() bool {
	return m.refreshing
}

// GetRefreshTotal returns the total number of widgets being re-checked
func (m *Model) GetRefreshTotal() int {
	return m.refreshTotal
}
