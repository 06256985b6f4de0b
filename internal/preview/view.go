package preview

import (
	"fmt"
	"path/filepath"
	"strings"
)

// View renders the current session state.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		return errorBannerStyle.Render(
			fmt.Sprintf("Terminal too small. Minimum size is %dx%d.", minWidth, minHeight))
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	title := fmt.Sprintf("Hullo widget preview · %s · tier %s", m.documentName(), m.tier)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorBannerStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" reloading document...\n")
	}

	if m.result != nil {
		b.WriteString(m.renderer.Render(m.result))
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) documentName() string {
	if m.path == "" {
		return "(stdin)"
	}
	return filepath.Base(m.path)
}

func (m Model) renderFooter() string {
	hints := []string{
		"s: toggle scheme",
		"1/2/3: tier",
		"r: reload",
		"?: help",
		"q: quit",
	}
	return footerStyle.Render(strings.Join(hints, "  •  "))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("Hullo Preview Help\n\n")
	b.WriteString("Pipeline\n")
	b.WriteString("  s        Toggle light/dark color scheme\n")
	b.WriteString("  1        Re-run under the basic tier\n")
	b.WriteString("  2        Re-run under the pro tier\n")
	b.WriteString("  3        Re-run under the agency tier\n")
	b.WriteString("  r        Re-read the document from disk\n\n")
	b.WriteString("General\n")
	b.WriteString("  ?        Toggle this help\n")
	b.WriteString("  esc      Dismiss error / close help\n")
	b.WriteString("  q        Quit\n")
	return helpStyle.Render(b.String())
}
