package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/registry"
)

// loadInitialStatusCmd loads cached statuses for widgets
func loadInitialStatusCmd(widgets []registry.Widget, cache *registry.StatusCache) tea.Cmd {
	return func() tea.Msg {
		statuses := make(map[string]registry.CachedStatus)
		for _, w := range widgets {
			if cached, ok := cache.Get(w.ID); ok {
				statuses[w.ID] = cached
			}
		}
		return InitialStatusLoadedMsg{Statuses: statuses}
	}
}

// checkCmd checks a widget's stored document asynchronously. CheckWidget
// never fails; an unreadable document comes back as a broken-status result.
func checkCmd(widget registry.Widget) tea.Cmd {
	return func() tea.Msg {
		return CheckCompleteMsg{
			WidgetID: widget.ID,
			Result:   engine.CheckWidget(widget),
		}
	}
}

// fixCmd writes sanitizer corrections back to the widget's document
func fixCmd(widget registry.Widget) tea.Cmd {
	return func() tea.Msg {
		corrections, err := engine.FixWidget(widget)
		if err != nil {
			return FixErrorMsg{
				WidgetID: widget.ID,
				Error:    err,
			}
		}

		return FixCompleteMsg{
			WidgetID:    widget.ID,
			Corrections: corrections,
		}
	}
}

// refreshSingleCmd checks a single widget during a re-check of all widgets
func refreshSingleCmd(widget registry.Widget, index int, total int) tea.Cmd {
	return func() tea.Msg {
		return RefreshWidgetCompleteMsg{
			WidgetID: widget.ID,
			Index:    index,
			Total:    total,
			Result:   engine.CheckWidget(widget),
		}
	}
}

// saveStatusToCacheCmd saves a check result to the status cache
func saveStatusToCacheCmd(cache *registry.StatusCache, widgetID string, result *registry.CheckResult) tea.Cmd {
	return func() tea.Msg {
		cached := registry.CachedStatus{
			Status:      result.Status,
			LastChecked: time.Now(),
			Summary:     result.Summary(),
			Violations:  len(result.Violations),
		}

		if err := cache.Set(widgetID, cached); err != nil {
			return ErrorMsg{
				Message: "Failed to save status cache: " + err.Error(),
			}
		}

		if err := cache.Save(); err != nil {
			return ErrorMsg{
				Message: "Failed to save status cache: " + err.Error(),
			}
		}

		return StatusCacheSavedMsg{WidgetID: widgetID}
	}
}
