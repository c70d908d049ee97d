package ui

import (
	"fmt"
	"strings"

	"github.com/anditko/docnav/internal/format/table"
	"github.com/anditko/docnav/internal/menustack"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	menuHeaderSeparator = "→"
	themeGlyphDark      = "☾"
	themeGlyphLight     = "☀"
)

// sidebarWidth returns the columns the off-canvas panel occupies.
func (m *Model) sidebarWidth() int {
	if m.width <= 0 {
		return sidebarMinWidth
	}
	w := m.width * 2 / 3
	if w > sidebarMaxWidth {
		w = sidebarMaxWidth
	}
	if w < sidebarMinWidth {
		w = sidebarMinWidth
	}
	if w > m.width {
		w = m.width
	}
	return w
}

// maxVisibleItems is the number of menu rows that fit in the sidebar.
func (m *Model) maxVisibleItems() int {
	// Header, filter row, and hint row are reserved.
	reserved := barHeight + 3
	n := m.height - reserved
	if n < 1 {
		n = 1
	}
	return n
}

// View implements tea.Model.
func (m *Model) View() string {
	body := m.viewBody()
	if m.sidebar.IsOpen() {
		body = m.overlaySidebar(body)
	}
	var b strings.Builder
	b.WriteString(m.viewBar())
	b.WriteString(body)
	if m.opts.ShowFooter {
		b.WriteString("\n")
		b.WriteString(m.viewFooter())
	}
	return b.String()
}

// viewBar renders the top bar rows. A hidden bar still occupies its rows so
// the content does not jump, mirroring a translated-off-screen bar.
func (m *Model) viewBar() string {
	if !m.vis.Visible() {
		return strings.Repeat("\n", barHeight)
	}
	var left string
	if m.compact {
		left = m.styles.BarLink.Render("≡ menu") + "  " + m.styles.BarTitle.Render(m.opts.Title)
	} else {
		segments := []string{m.styles.BarTitle.Render(m.opts.Title)}
		for _, section := range m.docsStore.Sections() {
			style := m.styles.BarLink
			if section.ID == m.activeSectionID() {
				style = m.styles.BarLinkActive
			}
			segments = append(segments, style.Render(section.Label))
		}
		left = strings.Join(segments, "  ")
	}
	row := left
	if !m.opts.DisableSwitch {
		glyph := themeGlyphDark
		if m.store.Mode().String() == "dark" {
			glyph = themeGlyphLight
		}
		toggle := m.styles.BarLink.Render(glyph)
		pad := m.width - lipgloss.Width(row) - lipgloss.Width(toggle)
		if pad > 0 {
			row += m.styles.Bar.Render(strings.Repeat(" ", pad))
		}
		row += toggle
	}
	if m.width > 0 {
		row = truncate.String(row, uint(m.width))
	}
	return row + "\n\n"
}

// activeSectionID reports which top-level section owns the current document.
func (m *Model) activeSectionID() string {
	if m.currentDoc.ID == "" {
		return ""
	}
	for _, section := range m.docsStore.Sections() {
		if section.ID == m.currentDoc.ID {
			return section.ID
		}
		for _, child := range section.Children {
			if child.ID == m.currentDoc.ID {
				return section.ID
			}
		}
	}
	return ""
}

func (m *Model) viewBody() string {
	var b strings.Builder
	if m.loading && m.pendingLabel != "" {
		b.WriteString(m.styles.Info.Render(fmt.Sprintf("Loading %s…", m.pendingLabel)))
		b.WriteString("\n")
	}
	b.WriteString(m.viewport.View())
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg)))
	}
	if info := m.currentInfo(); info != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render(info))
	}
	return b.String()
}

// overlaySidebar lays the off-canvas panel over the left edge of the body.
// The panel carries the frame's right border; the covered region of the body
// acts as the backdrop.
func (m *Model) overlaySidebar(body string) string {
	panel := m.viewSidebarPanel()
	width := m.sidebarWidth()
	backdropWidth := m.width - width - 1
	if backdropWidth < 0 {
		backdropWidth = 0
	}
	bodyLines := strings.Split(body, "\n")
	panelLines := strings.Split(panel, "\n")
	rows := len(bodyLines)
	if len(panelLines) > rows {
		rows = len(panelLines)
	}
	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(panelLines) {
			left = panelLines[i]
		}
		left = m.styles.SidebarFrame.Render(padRight(truncate.String(left, uint(width)), width))
		if i < len(bodyLines) && backdropWidth > 0 {
			right = m.styles.Backdrop.Render(truncate.String(stripANSI(bodyLines[i]), uint(backdropWidth)))
		}
		out[i] = left + right
	}
	return strings.Join(out, "\n")
}

// viewSidebarPanel renders the interactive panel of the menu stack. The
// inert panel stays mounted in model state with its scroll offset; its only
// visible trace is the dimmed crumb in the breadcrumb row.
func (m *Model) viewSidebarPanel() string {
	view := m.activePanelView()
	var b strings.Builder
	if c := m.stack.SecondaryContent(); m.stack.ActivePanel() == menustack.Secondary && c != nil {
		b.WriteString(m.styles.InertItem.Render(m.opts.Title + " " + menuHeaderSeparator))
		b.WriteString(" ")
		b.WriteString(m.styles.MenuHeader.Render(c.Title))
	} else {
		b.WriteString(m.styles.MenuHeader.Render(m.menuHeader()))
	}
	b.WriteString("\n")

	maxItems := m.maxVisibleItems()
	view.EnsureCursorVisible(maxItems)
	start := view.ViewportOffset
	items := view.Items
	if maxItems > 0 && len(items) > maxItems {
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(items) {
			start = len(items) - maxItems
			view.ViewportOffset = start
		}
		items = items[start : start+maxItems]
	} else {
		start = 0
	}
	if len(view.Items) == 0 {
		msg := "(no entries)"
		if view.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", view.Filter)
		}
		b.WriteString(m.styles.Info.Render(msg))
		b.WriteString("\n")
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		marker := ""
		if item.HasChildren() {
			marker = fmt.Sprintf("%d %s", len(item.Children), menuHeaderSeparator)
		}
		rows[i] = []string{item.Label, marker}
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	for i := range items {
		idx := start + i
		label := aligned[i]
		if idx == view.Cursor {
			b.WriteString(m.styles.ItemIndicator.Render(">"))
			b.WriteString(m.styles.SelectedItem.Render(" " + label))
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.Item.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.FilterPrompt.Render("/"))
	b.WriteString(m.styles.Filter.Render(view.Filter))
	b.WriteString("\n")
	hint := "esc close  enter open  ctrl+t theme"
	if m.stack.ActivePanel() == menustack.Secondary {
		hint = "esc back  enter open  ctrl+t theme"
	}
	if m.opts.DisableSwitch {
		hint = strings.TrimSuffix(hint, "  ctrl+t theme")
	}
	b.WriteString(m.styles.Footer.Render(hint))
	return b.String()
}

// menuHeader renders the breadcrumb for the open panel.
func (m *Model) menuHeader() string {
	if m.stack.ActivePanel() == menustack.Secondary {
		if c := m.stack.SecondaryContent(); c != nil {
			return m.opts.Title + " " + menuHeaderSeparator + " " + c.Title
		}
	}
	return m.opts.Title
}

func (m *Model) viewFooter() string {
	if m.sidebar.IsOpen() {
		return m.styles.Footer.Render("↑/↓ move  enter open  esc back/close  ctrl+c quit")
	}
	hints := "↑/↓ scroll  t theme  q quit"
	if m.compact {
		hints = "↑/↓ scroll  m menu  t theme  q quit"
	}
	return m.styles.Footer.Render(hints)
}

func padRight(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// stripANSI drops escape sequences so backdrop dimming applies cleanly.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
