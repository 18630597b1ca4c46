package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"

	"github.com/atomicstack/pinta/internal/format/table"
	"github.com/atomicstack/pinta/internal/logging"
	"github.com/atomicstack/pinta/internal/theme"
)

type helpPage struct {
	title string
	keys  []key.Binding
	// markdown pages are rendered with glamour at the current width.
	markdown string
}

const aboutMarkdown = `# pinta

Browse directories and jump straight into **tmux**.

- Pressing *enter* on the directory tab opens a session named after the
  current directory, creating it when it does not exist yet.
- Search is incremental; *n* and *N* cycle through the matches after
  *enter* keeps them.
- Sessions are read once at startup. Press *R* to read them again.

Useful flags: ` + "`--show-hidden`, `--exclude <glob>`, `--socket <path>`, `--watch`, `--search-mode fuzzy`" + `.
`

func (m *Model) buildHelpPages() []helpPage {
	return []helpPage{
		{title: "Directories", keys: m.keys.Directories.bindings()},
		{title: "Sessions", keys: m.keys.Sessions.bindings()},
		{title: "Search", keys: m.keys.Search.bindings()},
		{title: "Help", keys: m.keys.Help.bindings()},
		{title: "About", markdown: aboutMarkdown},
	}
}

// helpLines returns the rendered body of category i at the given width.
func (m *Model) helpLines(i, width int) []string {
	if i < 0 || i >= len(m.helpPages) {
		return nil
	}
	page := m.helpPages[i]
	if page.markdown != "" {
		return m.renderMarkdown(page.markdown, width)
	}
	return keyLines(page.keys)
}

func keyLines(bindings []key.Binding) []string {
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		rows = append(rows, []string{h.Key, h.Desc})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	lines := make([]string, len(formatted))
	for i, line := range formatted {
		k := rows[i][0]
		lines[i] = styles.HelpKey.Render(k) + styles.HelpBody.Render(strings.TrimPrefix(line, k))
	}
	return lines
}

func (m *Model) renderMarkdown(md string, width int) []string {
	if width < 10 {
		width = 10
	}
	if lines, ok := m.aboutCache[width]; ok {
		return lines
	}
	style := "dark"
	if theme.Colorless() {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	var out string
	if err == nil {
		out, err = renderer.Render(md)
	}
	if err != nil {
		logging.Error(err)
		out = md
	}
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	m.aboutCache[width] = lines
	return lines
}
