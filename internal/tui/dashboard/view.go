package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hullochat/hullo/internal/registry"
)

// View renders the current model state
func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewHelp:
		return m.renderHelpView()
	case ViewConfirm:
		return m.renderConfirmView()
	default:
		return m.renderListView()
	}
}

// renderListView renders the main widget list view
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}

	content.WriteString(m.renderWidgetList())
	content.WriteString("\n")

	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the header with title and status summary
func (m Model) renderHeader() string {
	title := titleStyle.Render("💬 Hullo Widgets")

	counts := m.CountByStatus()
	summary := fmt.Sprintf(
		"%s %d  %s %d  %s %d  %s %d",
		registry.StatusClean.Icon(), counts[registry.StatusClean],
		registry.StatusCorrectable.Icon(), counts[registry.StatusCorrectable],
		registry.StatusBroken.Icon(), counts[registry.StatusBroken],
		registry.StatusUnknown.Icon(), counts[registry.StatusUnknown],
	)

	// Add progress indicator while re-checking everything
	if m.refreshing {
		summary += fmt.Sprintf("  %s Checking %d/%d",
			m.spinner.View(),
			m.refreshProgress,
			m.refreshTotal,
		)
	}

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		summary,
	)

	return headerStyle.Render(headerContent)
}

// renderWidgetList renders the list of widgets
func (m Model) renderWidgetList() string {
	if len(m.widgets) == 0 {
		return m.renderEmptyState()
	}

	var items []string
	visibleHeight := m.height - 10 // Reserve space for header and footer

	// Calculate scroll window
	start := m.scrollOffset
	end := start + visibleHeight
	if end > len(m.widgets) {
		end = len(m.widgets)
	}

	for i := start; i < end; i++ {
		items = append(items, m.renderWidgetItem(i, i == m.cursor))
	}

	// Add scroll indicators if needed
	if start > 0 {
		items = append([]string{lipgloss.NewStyle().Foreground(mutedColor).Render("▲ More above")}, items...)
	}
	if end < len(m.widgets) {
		items = append(items, lipgloss.NewStyle().Foreground(mutedColor).Render("▼ More below"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderWidgetItem renders a single widget item
func (m Model) renderWidgetItem(index int, selected bool) string {
	w := m.widgets[index]

	// Status icon
	icon := w.Status.Icon()
	if !m.useUnicode {
		icon = w.Status.IconFallback()
	}

	// Add spinner if loading
	if m.IsLoading(w.ID) {
		icon = m.spinner.View()
	}

	// Status with color
	statusStr := GetStatusStyle(w.Status.String()).Render(icon)

	// Widget number (1-indexed for display)
	number := fmt.Sprintf("%d.", index+1)

	// Name
	name := w.Name
	if name == "" {
		name = w.ID
	}

	// Summary line: cached check summary, else the description
	detail := w.Description
	if cached, ok := m.statusCache.Get(w.ID); ok && cached.Summary != "" {
		detail = cached.Summary
	}
	if len(detail) > 60 {
		detail = detail[:57] + "..."
	}
	if detail == "" {
		detail = lipgloss.NewStyle().Foreground(mutedColor).Render("Not checked yet")
	}

	// Last check time
	lastChecked := FormatLastChecked(w.LastChecked)

	// Compose the item
	line1 := fmt.Sprintf("%s %s %s  %s", statusStr, number,
		lipgloss.NewStyle().Bold(true).Render(name),
		lipgloss.NewStyle().Foreground(mutedColor).Render("tier "+string(w.Tier)))
	line2 := fmt.Sprintf("   %s", detail)
	line3 := fmt.Sprintf("   %s", lipgloss.NewStyle().Foreground(mutedColor).Render("Last checked: "+lastChecked))

	content := lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3)

	if selected {
		return selectedItemStyle.Render(content)
	}
	return itemStyle.Render(content)
}

// renderEmptyState renders the empty state when no widgets are registered
func (m Model) renderEmptyState() string {
	message := `No widgets registered yet.

To add one, use:
  hullo add <config-file>`

	return emptyStateStyle.Render(message)
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter() string {
	hints := []string{
		"↑/↓: navigate",
		"enter: select",
		"r: re-check all",
		"?: help",
	}

	if m.showError {
		hints = append(hints, "x: dismiss error")
	}

	hints = append(hints, "q: quit")

	return footerStyle.Render(strings.Join(hints, "  •  "))
}

// renderErrorBanner renders an error message banner
func (m Model) renderErrorBanner() string {
	return errorBannerStyle.Render(m.errorMsg)
}

// FormatLastChecked formats a timestamp to a human-readable relative time
func FormatLastChecked(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}

// renderDetailView renders the detail view for a selected widget
func (m Model) renderDetailView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var selected *registry.Widget
	for i := range m.widgets {
		if m.widgets[i].ID == m.selectedID {
			selected = &m.widgets[i]
			break
		}
	}

	if selected == nil {
		return "Widget not found"
	}

	var content strings.Builder

	header := titleStyle.Render(fmt.Sprintf("💬 %s", selected.Name))
	content.WriteString(header)
	content.WriteString("\n\n")

	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n\n")
	}

	// Status section
	statusIcon := selected.Status.Icon()
	if !m.useUnicode {
		statusIcon = selected.Status.IconFallback()
	}
	statusLine := fmt.Sprintf("%s Status: %s",
		GetStatusStyle(selected.Status.String()).Render(statusIcon),
		lipgloss.NewStyle().Bold(true).Render(selected.Status.String()))
	content.WriteString(statusLine)
	content.WriteString("\n\n")

	// Metadata section
	metaStyle := lipgloss.NewStyle().Foreground(mutedColor)
	content.WriteString(lipgloss.NewStyle().Bold(true).Render("Metadata"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  ID: %s\n", selected.ID))
	content.WriteString(fmt.Sprintf("  Path: %s\n", selected.Path))
	content.WriteString(fmt.Sprintf("  Tier: %s\n", selected.Tier))
	content.WriteString(fmt.Sprintf("  Registered: %s\n", selected.RegisteredAt.Format("Jan 2, 2006 15:04")))
	if !selected.LastChecked.IsZero() {
		content.WriteString(fmt.Sprintf("  Last Checked: %s\n", FormatLastChecked(selected.LastChecked)))
	}
	content.WriteString("\n")

	// Description section
	if selected.Description != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Render("Description"))
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("  %s\n", selected.Description))
		content.WriteString("\n")
	}

	// Last check result section
	if selected.LastCheck != nil {
		result := selected.LastCheck
		content.WriteString(lipgloss.NewStyle().Bold(true).Render("Last Check"))
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("  Result: %s\n", result.Summary()))
		content.WriteString(fmt.Sprintf("  Completed: %s\n", result.CompletedAt.Format("Jan 2, 2006 15:04:05")))
		content.WriteString(fmt.Sprintf("  Duration: %s\n", result.Duration.Round(time.Millisecond)))

		if len(result.Violations) > 0 {
			content.WriteString("\n")
			content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(warningColor).Render("Violations"))
			content.WriteString("\n")
			for _, v := range result.Violations {
				content.WriteString(fmt.Sprintf("  - %s\n", v))
			}
		}

		if result.Error != nil {
			content.WriteString("\n")
			content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(errorColor).Render("Error"))
			content.WriteString("\n")
			content.WriteString(fmt.Sprintf("  %s\n", result.Error.Message))
			if result.Error.Suggestion != "" {
				content.WriteString(fmt.Sprintf("  Suggestion: %s\n", result.Error.Suggestion))
			}
		}
		content.WriteString("\n")
	}

	// Show loading indicator if operation in progress
	if m.IsLoading(selected.ID) {
		content.WriteString("\n")
		opMsg := fmt.Sprintf("%s working...", m.spinner.View())
		content.WriteString(lipgloss.NewStyle().Foreground(primaryColor).Render(opMsg))
		content.WriteString("\n")
	}

	// Footer with actions
	hints := []string{
		"c: check",
		"f: fix",
		"esc: back",
		"?: help",
		"q: quit",
	}
	footer := footerStyle.Render(strings.Join(hints, "  •  "))

	// Calculate available height for content
	contentHeight := m.height - 4 // Reserve space for footer
	lines := strings.Split(content.String(), "\n")

	// Truncate if too many lines
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
		content.Reset()
		content.WriteString(strings.Join(lines, "\n"))
		content.WriteString("\n")
		content.WriteString(metaStyle.Render("... (content truncated)"))
		content.WriteString("\n")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content.String(),
		"",
		footer,
	)
}

// renderHelpView renders the help overlay
func (m Model) renderHelpView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render("❓ Hullo Dashboard Help")

	helpContent := `
List View:
  ↑/↓, j/k      Navigate up/down
  1-9           Jump to widget by number
  Enter         View widget details
  r             Re-check all widget documents
  ?             Toggle this help
  q, Ctrl+C     Quit application

Detail View:
  c, r          Check the document against its tier
  f             Write sanitizer corrections back (with confirmation)
  Esc           Back to list
  ?             Toggle this help
  q, Ctrl+C     Quit application

Status Indicators:
  🟢 Clean        Document is valid as stored
  🟡 Correctable  The sanitizer can repair every finding
  🔴 Broken       Document is missing or unreadable
  ⚪ Unknown      Status not yet checked

Tips:
  • Widget status is cached between sessions
  • Broken/correctable widgets are sorted to the top
  • Fixing rewrites the document file in place
`

	helpText := lipgloss.NewStyle().
		Padding(1, 2).
		Render(helpContent)

	footer := footerStyle.Render("Press ? or Esc to close")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		helpText,
		footer,
	)
}

// renderConfirmView renders a confirmation dialog
func (m Model) renderConfirmView() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var message string
	switch m.confirmAction {
	case "fix":
		message = "⚠️  " + m.confirmMessage + "\n\nThis will rewrite the document file."
	default:
		message = "Confirm action?"
	}

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(warningColor).
		Padding(1, 2).
		Width(50).
		Align(lipgloss.Center)

	dialog := dialogStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Center,
			message,
			"",
			lipgloss.NewStyle().Foreground(mutedColor).Render("y = Yes    n = No    Esc = Cancel"),
		),
	)

	centerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center)

	return centerStyle.Render(dialog)
}
