package dashboard

import (
	"github.com/hullochat/hullo/internal/registry"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewHelp
	ViewConfirm
)

// Navigation Messages

// WidgetSelectedMsg indicates a widget was selected
type WidgetSelectedMsg struct {
	Widget registry.Widget
}

// BackToListMsg requests return to list view
type BackToListMsg struct{}

// Check Messages

// CheckCompleteMsg carries the outcome of a document check. Unreadable
// documents arrive here too, as a broken-status result rather than a
// separate error message.
type CheckCompleteMsg struct {
	WidgetID string
	Result   *registry.CheckResult
}

// Fix Messages

// FixCompleteMsg indicates sanitizer corrections were written back to disk
type FixCompleteMsg struct {
	WidgetID    string
	Corrections int
}

// FixErrorMsg indicates the corrected document could not be written
type FixErrorMsg struct {
	WidgetID string
	Error    error
}

// Refresh Messages

// RefreshStartedMsg indicates a re-check of all widgets started
type RefreshStartedMsg struct {
	Total int
}

// RefreshWidgetCompleteMsg indicates a single widget check completed during
// a re-check of all widgets
type RefreshWidgetCompleteMsg struct {
	WidgetID string
	Index    int
	Total    int
	Result   *registry.CheckResult
}

// RefreshCompleteMsg indicates the re-check of all widgets completed
type RefreshCompleteMsg struct{}

// Status Loading Messages

// InitialStatusLoadedMsg indicates cached statuses have been loaded
type InitialStatusLoadedMsg struct {
	Statuses map[string]registry.CachedStatus
}

// StatusCacheSavedMsg indicates a check result was saved to the status cache
type StatusCacheSavedMsg struct {
	WidgetID string
}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
	Details *registry.ErrorDetail
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
