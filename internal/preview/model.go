package preview

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/tier"
)

const (
	minWidth  = 60
	minHeight = 20
)

// documentReloadedMsg carries a freshly re-read document into the session.
type documentReloadedMsg struct {
	doc *config.WidgetConfig
	err error
}

// Model is the interactive preview session. It owns a working copy of the
// parsed document and re-runs the pipeline whenever the color scheme or the
// tier changes; `r` re-reads the document from disk.
type Model struct {
	path string
	doc  *config.WidgetConfig
	tier tier.Tier

	eng    *engine.Engine
	result *engine.Result

	renderer *Renderer
	spinner  spinner.Model

	width    int
	height   int
	loading  bool
	showHelp bool
	errMsg   string
}

// NewModel creates the session and runs the pipeline once so the first View
// already has a result to draw.
func NewModel(path string, doc *config.WidgetConfig, t tier.Tier) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		path:     path,
		doc:      doc.Clone(),
		tier:     t,
		eng:      engine.New(nil),
		renderer: NewRenderer(defaultWidth),
		spinner:  s,
		width:    defaultWidth,
		height:   24,
	}
	m.reprocess()
	return m
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// reprocess runs the full pipeline over the working document.
func (m *Model) reprocess() {
	result, err := m.eng.Process(m.doc, m.tier)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.result = result
}

// scheme reports the resolved color scheme of the current result.
func (m Model) scheme() string {
	if m.result == nil {
		return "light"
	}
	return m.result.Runtime.Theme.ColorScheme
}

// toggleScheme flips the working document between light and dark. The flat
// themeMode field wins over any legacy style.theme, so setting it is enough.
func (m *Model) toggleScheme() {
	next := "dark"
	if m.scheme() == "dark" {
		next = "light"
	}
	m.doc.ThemeMode = &next
	m.reprocess()
}

// setTier re-runs the pipeline under a different subscription tier.
func (m *Model) setTier(t tier.Tier) {
	if t == m.tier {
		return
	}
	m.tier = t
	m.reprocess()
}

// reloadCmd re-reads the document from disk asynchronously.
func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := config.ParseFile(path)
		if err != nil {
			return documentReloadedMsg{err: err}
		}
		return documentReloadedMsg{doc: doc}
	}
}
