package registry

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hullochat/hullo/internal/tier"
)

// Widget represents a registered widget configuration document.
type Widget struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Tier         tier.Tier `json:"tier"`
	Description  string    `json:"description,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`

	// Runtime state (not persisted in registry)
	Status      WidgetStatus `json:"-"`
	LastChecked time.Time    `json:"-"`
	LastCheck   *CheckResult `json:"-"`
}

// WidgetStatus represents the stored document's last known state.
type WidgetStatus string

const (
	StatusUnknown WidgetStatus = "unknown"
	// StatusClean means the stored document passes validation for its tier
	// as-is; sanitization would not change it.
	StatusClean WidgetStatus = "clean"
	// StatusCorrectable means the document fails validation or carries
	// values sanitization would rewrite. Saving through the pipeline fixes it.
	StatusCorrectable WidgetStatus = "correctable"
	// StatusBroken means the file is missing or unparsable.
	StatusBroken   WidgetStatus = "broken"
	StatusChecking WidgetStatus = "checking"
)

// statusGlyphs maps each status to its display forms. The ASCII column is
// used on terminals without Unicode support.
var statusGlyphs = map[WidgetStatus]struct {
	icon  string
	ascii string
	color lipgloss.Color
}{
	StatusClean:       {"🟢", "[OK]", lipgloss.Color("42")},
	StatusCorrectable: {"🟡", "[!!]", lipgloss.Color("226")},
	StatusBroken:      {"🔴", "[XX]", lipgloss.Color("196")},
}

// Icon returns the Unicode indicator for the status.
func (s WidgetStatus) Icon() string {
	if g, ok := statusGlyphs[s]; ok {
		return g.icon
	}
	return "⚪"
}

// IconFallback returns the ASCII indicator for the status.
func (s WidgetStatus) IconFallback() string {
	if g, ok := statusGlyphs[s]; ok {
		return g.ascii
	}
	return "[??]"
}

// Color returns the lipgloss color associated with the status.
func (s WidgetStatus) Color() lipgloss.Color {
	if g, ok := statusGlyphs[s]; ok {
		return g.color
	}
	return lipgloss.Color("250")
}

func (s WidgetStatus) String() string {
	return string(s)
}

// CheckResult captures the outcome of checking one stored document.
type CheckResult struct {
	WidgetID    string        `json:"widget_id"`
	Status      WidgetStatus  `json:"status"`
	Violations  []string      `json:"violations,omitempty"`
	Corrections int           `json:"corrections,omitempty"`
	Duration    time.Duration `json:"duration"`
	CompletedAt time.Time     `json:"completed_at"`
	Error       *ErrorDetail  `json:"error,omitempty"`
}

// Summary renders a one-line description of the check outcome.
func (r *CheckResult) Summary() string {
	switch r.Status {
	case StatusClean:
		return "document valid"
	case StatusCorrectable:
		if n := len(r.Violations); n > 0 {
			return fmt.Sprintf("%d violations, auto-correctable", n)
		}
		return fmt.Sprintf("%d corrections available", r.Corrections)
	case StatusBroken:
		if r.Error != nil {
			return r.Error.Message
		}
		return "unreadable document"
	default:
		return "not checked"
	}
}

// ErrorDetail provides structured error information
type ErrorDetail struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Context    string `json:"context"`
	Suggestion string `json:"suggestion"`
}

// RegistryFile is the on-disk format of the widget registry.
type RegistryFile struct {
	Version string   `json:"version"`
	Widgets []Widget `json:"widgets"`
}

// CachedStatus stores check metadata for a widget between sessions.
type CachedStatus struct {
	Status      WidgetStatus `json:"status"`
	LastChecked time.Time    `json:"last_checked"`
	Summary     string       `json:"summary"`
	Violations  int          `json:"violations,omitempty"`
}

// StatusCacheFile is the on-disk format of the status cache.
type StatusCacheFile struct {
	Version  string                  `json:"version"`
	Statuses map[string]CachedStatus `json:"statuses"`
}
