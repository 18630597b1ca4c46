package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/pinta/internal/directory"
	"github.com/atomicstack/pinta/internal/logging/events"
	uistate "github.com/atomicstack/pinta/internal/ui/state"
)

const (
	minWidth       = 20
	minHeight      = 10
	helpMaxWidth   = 72
	scrollUpMark   = " ↑ "
	scrollDownMark = " ↓ "
)

type layout struct {
	width       int
	height      int
	innerWidth  int
	bodyHeight  int
	dirHeight   int
	dirRows     int
	sessHeight  int
	sessionRows int
	helpBoxW    int
	helpBoxH    int
	helpWidth   int
	helpRows    int
}

// layout splits the screen into the outer frame, the directory pane (about
// three quarters of the body), the session pane and a status line.
func (m *Model) layout() layout {
	l := layout{width: max(m.width, minWidth), height: max(m.height, minHeight)}
	l.innerWidth = l.width - 2
	l.bodyHeight = l.height - 3
	l.dirHeight = l.bodyHeight * 3 / 4
	l.sessHeight = l.bodyHeight - l.dirHeight
	if l.sessHeight < 3 {
		l.sessHeight = 3
		l.dirHeight = l.bodyHeight - l.sessHeight
	}
	l.dirRows = l.dirHeight - 2
	l.sessionRows = l.sessHeight - 2

	l.helpBoxW = min(l.innerWidth-4, helpMaxWidth)
	l.helpBoxH = l.bodyHeight - 2
	// tab row and a spacer sit above the help text
	l.helpWidth = max(l.helpBoxW-2, 1)
	l.helpRows = max(l.helpBoxH-4, 1)
	return l
}

// View renders the whole screen.
func (m *Model) View() string {
	l := m.layout()
	var body string
	if m.ctl.HelpOpen {
		body = lipgloss.Place(l.innerWidth, l.bodyHeight, lipgloss.Center, lipgloss.Center, m.renderHelp(l))
	} else {
		body = m.renderDirectoryPane(l) + "\n" + m.renderSessionPane(l)
	}
	lines := strings.Split(body, "\n")
	lines = append(lines, m.statusLine(l.innerWidth))
	return renderPanel(panel{
		title:  " Pinta ",
		info:   " <H> Help ",
		lines:  lines,
		active: false,
		frame:  true,
	}, l.width, l.height)
}

func (m *Model) renderDirectoryPane(l layout) string {
	active := m.ctl.Tab == uistate.TabDirectories
	width := l.innerWidth - 2
	var lines []string
	entries := m.dirs.Entries()
	if len(entries) == 0 {
		lines = append(lines, styles.Hint.Render("(empty)"))
	}
	start, end := m.dirList.Window()
	for i := start; i < end && i < len(entries); i++ {
		lines = append(lines, m.entryLine(entries[i], i, active, width))
	}
	p := panel{title: " " + m.dirs.Path() + " ", lines: lines, active: active}
	if m.dirList.CanScrollUp() {
		p.info = scrollUpMark
	}
	if m.dirList.CanScrollDown() {
		p.footer = scrollDownMark
	}
	return renderPanel(p, l.innerWidth, l.dirHeight)
}

func (m *Model) entryLine(entry directory.Entry, i int, active bool, width int) string {
	selected := i == m.dirList.Selected
	base := styles.Item
	if entry.IsDir {
		base = styles.Directory
	}
	match := styles.Match
	prefix := "  "
	if selected {
		prefix = "› "
		if active {
			base = styles.SelectedItem
			match = styles.SelectedMatch
		}
	}
	text := entry.Display()
	var b strings.Builder
	b.WriteString(base.Render(prefix))
	if m.search.Highlighting() && m.search.IsMatch(i) {
		for _, span := range uistate.Spans(text, m.search.Query) {
			if span.Match {
				b.WriteString(match.Render(span.Text))
			} else {
				b.WriteString(base.Render(span.Text))
			}
		}
	} else {
		b.WriteString(base.Render(text))
	}
	line := b.String()
	if selected && active {
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += base.Render(strings.Repeat(" ", pad))
		}
	}
	return line
}

func (m *Model) renderSessionPane(l layout) string {
	active := m.ctl.Tab == uistate.TabSessions
	var lines []string
	switch entries := m.sessions.Entries(); {
	case !m.sessions.Loaded():
		lines = []string{styles.Loading.Render("Loading sessions…")}
	case len(entries) == 0:
		lines = []string{styles.Empty.Render("No tmux sessions found")}
	default:
		all := m.sessionLines(active)
		start := min(m.tree.Offset, len(all))
		end := min(start+l.sessionRows, len(all))
		lines = all[start:end]
	}
	p := panel{title: " Tmux Sessions ", lines: lines, active: active}
	total := uistate.TotalLines(m.sessions.Heights())
	if m.tree.Offset > 0 {
		p.info = scrollUpMark
	}
	if m.tree.Offset+m.tree.Viewport < total {
		p.footer = scrollDownMark
	}
	return renderPanel(p, l.innerWidth, l.sessHeight)
}

// sessionLines renders every session as a header, one line per window and
// a blank separator, matching the heights the tree navigates by.
func (m *Model) sessionLines(active bool) []string {
	var lines []string
	for i, s := range m.sessions.Entries() {
		header := fmt.Sprintf("%s (created at %s)", s.Name, s.CreatedLabel)
		if i == m.tree.Selected {
			style := styles.SessionHeader
			if active {
				style = styles.SelectedItem
			}
			lines = append(lines, style.Render("› "+header))
		} else {
			lines = append(lines, styles.SessionHeader.Render("  "+header))
		}
		for _, w := range s.Windows {
			text := fmt.Sprintf("    [%s] %s", w.Index, w.Name)
			if w.Active {
				lines = append(lines, styles.ActiveWindow.Render(text+" (active)"))
				continue
			}
			lines = append(lines, styles.Window.Render(text))
		}
		lines = append(lines, "")
	}
	return lines
}

func (m *Model) renderHelp(l layout) string {
	tabs := make([]string, len(m.helpPages))
	for i, page := range m.helpPages {
		label := fmt.Sprintf(" %d %s ", i+1, page.title)
		if i == m.help.Category {
			tabs[i] = styles.HelpTabActive.Render(label)
		} else {
			tabs[i] = styles.HelpTab.Render(label)
		}
	}
	lines := []string{strings.Join(tabs, ""), ""}
	body := m.helpLines(m.help.Category, l.helpWidth)
	start, end := m.help.List.Window()
	if end > len(body) {
		end = len(body)
	}
	if start < end {
		lines = append(lines, body[start:end]...)
	}
	p := panel{title: " Help ", lines: lines, active: true}
	if m.help.List.CanScrollUp() {
		p.info = scrollUpMark
	}
	if m.help.List.CanScrollDown() {
		p.footer = scrollDownMark
	}
	return renderPanel(p, l.helpBoxW, l.helpBoxH)
}

func (m *Model) statusLine(width int) string {
	var line string
	switch {
	case m.ctl.Searching:
		prefix := "/" + m.search.Query
		line = styles.SearchPrompt.Render("/") +
			styles.Search.Render(m.search.Query) +
			m.searchCursor.View() +
			styles.Hint.Render(strings.TrimPrefix(m.search.Status(), prefix))
	case m.currentStatus() != "":
		if m.status.err {
			line = styles.Error.Render(m.status.text)
		} else {
			line = styles.Info.Render(m.status.text)
		}
	case m.search.Visible(m.now()):
		line = styles.Search.Render(m.search.Status())
	case m.ctl.Tab == uistate.TabSessions:
		line = styles.Hint.Render("enter attach · R refresh · tab directories · q quit")
	default:
		line = styles.Hint.Render("enter open session · / search · tab sessions · q quit")
	}
	return ansi.Truncate(line, width, "…")
}

type panel struct {
	title  string
	info   string
	footer string
	lines  []string
	active bool
	// frame panels use the title style for their heading.
	frame bool
}

// renderPanel draws a rounded box exactly width×height cells:
// ╭─ title ───── info ─╮ … ╰───── footer ─╯
func renderPanel(p panel, width, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	border := styles.Border
	if p.active {
		border = styles.ActiveBorder
	}
	titleStyle := styles.PaneTitle
	if p.frame {
		titleStyle = styles.Title
	}

	titleSeg := p.title
	infoSeg := p.info
	dashes := width - 4 - ansi.StringWidth(titleSeg) - ansi.StringWidth(infoSeg)
	if dashes < 0 {
		infoSeg = ""
		dashes = width - 4 - ansi.StringWidth(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(width-4, 1)), "…")
		dashes = width - 4 - ansi.StringWidth(titleSeg)
	}
	dashes = max(dashes, 0)
	top := border.Render(tlc+hz) +
		titleStyle.Render(titleSeg) +
		border.Render(strings.Repeat(hz, dashes)) +
		styles.ScrollMarker.Render(infoSeg) +
		border.Render(hz+trc)

	footerSeg := p.footer
	bottomDashes := width - 3 - ansi.StringWidth(footerSeg)
	if bottomDashes < 0 {
		footerSeg = ""
		bottomDashes = max(width-3, 0)
	}
	bottom := border.Render(blc+strings.Repeat(hz, bottomDashes)) +
		styles.ScrollMarker.Render(footerSeg) +
		border.Render(hz+brc)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(p.lines) {
			content = p.lines[i]
		}
		w := ansi.StringWidth(content)
		if w > innerW {
			content = ansi.Truncate(content, innerW, "…")
			w = ansi.StringWidth(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, border.Render(vt)+content+border.Render(vt))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

func (m *Model) setInfo(message string) {
	m.status = status{text: message, expire: m.now().Add(statusTTL)}
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	events.Action.Error(err)
	m.status = status{text: err.Error(), err: true, expire: m.now().Add(statusTTL)}
}

// dismissStatus drops the status line. The notice of a pending hand-off
// stays until its outcome arrives.
func (m *Model) dismissStatus() {
	if m.pending != "" {
		return
	}
	m.status = status{}
}

func (m *Model) currentStatus() string {
	if m.status.text != "" && !m.status.expire.IsZero() && m.now().After(m.status.expire) {
		m.status = status{}
	}
	return m.status.text
}

// Status returns the message currently on the status line, if any.
func (m *Model) Status() string {
	return m.currentStatus()
}
