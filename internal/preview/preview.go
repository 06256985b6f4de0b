// Package preview renders a built variable set as a terminal swatch board.
// The one-shot renderer backs `hullo preview`; the bubbletea model adds an
// interactive session that re-runs the pipeline as the color scheme or the
// subscription tier changes.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/theme"
)

const (
	defaultWidth = 80
	swatchWidth  = 10
	grayCellSize = 4
)

// Renderer draws the swatch board for a processed configuration.
type Renderer struct {
	width int
}

// NewRenderer creates a renderer clamped to the given terminal width.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{width: width}
}

// Render returns the full swatch board for a pipeline result.
func (r *Renderer) Render(res *engine.Result) string {
	vars := res.Variables

	var b strings.Builder
	scheme, _ := vars.Get("cw-color-scheme")
	accent, _ := vars.Get("cw-accent-primary")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s scheme, accent %s", scheme, accent)))
	b.WriteString("\n")

	b.WriteString(r.renderSurfaces(vars))
	b.WriteString(r.renderAccent(vars))
	b.WriteString(r.renderGrayscale(vars))
	b.WriteString(r.renderMessages(vars))
	b.WriteString(r.renderMetrics(vars))

	return b.String()
}

func (r *Renderer) renderSurfaces(vars *theme.Variables) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Surfaces"))
	b.WriteString("\n")
	for _, name := range []string{
		"cw-bg", "cw-surface", "cw-composer-bg", "cw-hover-bg",
		"cw-border-color", "cw-text-color", "cw-subtext-color",
	} {
		b.WriteString(r.colorRow(vars, name))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderAccent(vars *theme.Variables) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Accent"))
	b.WriteString("\n")
	for _, name := range []string{
		"cw-accent-primary", "cw-accent-hover", "cw-accent-active",
		"cw-accent-light", "cw-accent-lighter", "cw-icon-color",
	} {
		b.WriteString(r.colorRow(vars, name))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderGrayscale(vars *theme.Variables) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Grayscale"))
	b.WriteString("\n")

	cells := make([]string, 0, theme.RampSteps)
	for i := 0; i < theme.RampSteps; i++ {
		value, _ := vars.Get(fmt.Sprintf("cw-gray-%d", i))
		cell := strings.Repeat(" ", grayCellSize)
		if c, ok := termColor(value); ok {
			cell = lipgloss.NewStyle().Background(c).Render(cell)
		}
		cells = append(cells, cell)
	}
	b.WriteString(strings.Join(cells, ""))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("gray-0 through gray-%d", theme.RampSteps-1)))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderMessages(vars *theme.Variables) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Messages"))
	b.WriteString("\n")

	userBg, _ := vars.Get("cw-user-msg-bg")
	userText, _ := vars.Get("cw-user-msg-text")
	user := lipgloss.NewStyle().Padding(0, 1)
	if c, ok := termColor(userBg); ok {
		user = user.Background(c)
	}
	if c, ok := termColor(userText); ok {
		user = user.Foreground(c)
	}
	b.WriteString(nameStyle.Render("user"))
	b.WriteString(user.Render("Hey! Can you help me get set up?"))
	b.WriteString("\n")

	assistantText, _ := vars.Get("cw-assistant-msg-text")
	assistant := lipgloss.NewStyle().Padding(0, 1)
	if c, ok := termColor(assistantText); ok {
		assistant = assistant.Foreground(c)
	}
	b.WriteString(nameStyle.Render("assistant"))
	b.WriteString(assistant.Render("Of course. What are you building?"))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderMetrics(vars *theme.Variables) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Metrics"))
	b.WriteString("\n")
	b.WriteString(r.compactRow(vars, "radius",
		"cw-radius", "cw-radius-sm", "cw-radius-md", "cw-radius-lg", "cw-radius-xl", "cw-radius-full"))
	b.WriteString(r.compactRow(vars, "spacing",
		"cw-spacing-xs", "cw-spacing-sm", "cw-spacing-md", "cw-spacing-lg", "cw-spacing-xl", "cw-gap"))
	b.WriteString(r.compactRow(vars, "font",
		"cw-font-size", "cw-font-size-sm", "cw-font-size-lg", "cw-font-size-xl"))

	family, _ := vars.Get("cw-font-family")
	b.WriteString(nameStyle.Render("family"))
	b.WriteString(valueStyle.Render(truncateValue(family, r.width-26)))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) colorRow(vars *theme.Variables, name string) string {
	value, _ := vars.Get(name)
	return fmt.Sprintf("%s%s  %s",
		nameStyle.Render(name),
		swatchCell(value, swatchWidth),
		valueStyle.Render(value))
}

func (r *Renderer) compactRow(vars *theme.Variables, label string, names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		value, _ := vars.Get(name)
		parts = append(parts, fmt.Sprintf("%s %s", strings.TrimPrefix(name, "cw-"), value))
	}
	return fmt.Sprintf("%s%s\n",
		nameStyle.Render(label),
		valueStyle.Render(truncateValue(strings.Join(parts, "  "), r.width-26)))
}

func truncateValue(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
