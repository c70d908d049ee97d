package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/anditko/docnav/internal/content"
	"github.com/anditko/docnav/internal/docs"
	"github.com/anditko/docnav/internal/logging/events"
	"github.com/anditko/docnav/internal/nav"
	"github.com/anditko/docnav/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type docLoadedMsg struct {
	item     nav.Item
	markdown string
	err      error
}

type docsEventMsg struct {
	event docs.Event
	ok    bool
}

type frameTickMsg struct{}

// loadDocCmd reads a lesson file off the event loop and reports the result.
func (m *Model) loadDocCmd(item nav.Item) tea.Cmd {
	m.loading = true
	m.pendingID = item.ID
	m.pendingLabel = item.Label
	m.errMsg = ""
	m.clearInfo()
	return m.bus.Execute(command.Request{
		ID:    item.ID,
		Label: item.Label,
		Handler: func() tea.Msg {
			data, err := os.ReadFile(item.Target)
			if err != nil {
				return docLoadedMsg{item: item, err: fmt.Errorf("loading %s: %w", item.Target, err)}
			}
			return docLoadedMsg{item: item, markdown: string(data)}
		},
	})
}

func (m *Model) handleDocLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(docLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.item.ID != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.errMsg = ""
	m.currentDoc = loaded.item
	m.currentMD = loaded.markdown
	m.rerenderContent()
	m.viewport.GotoTop()
	m.tracker.Reset(0)
	m.observeScroll()
	events.Docs.Loaded(loaded.item.Target)
	if m.opts.Verbose {
		m.setInfo(fmt.Sprintf("Opened %s", loaded.item.Label))
	}
	return nil
}

// rerenderContent re-renders the current markdown for the active theme mode
// and viewport width, preserving the scroll position.
func (m *Model) rerenderContent() {
	if m.currentMD == "" {
		return
	}
	offset := m.viewport.YOffset
	text, err := m.renderer.Render(m.currentMD, m.store.Mode(), m.viewport.Width)
	if err != nil {
		// Degrade to the raw markdown rather than surfacing an error.
		text, _ = content.Plain{}.Render(m.currentMD, m.store.Mode(), m.viewport.Width)
	}
	m.viewport.SetContent(text)
	m.viewport.SetYOffset(offset)
}

// waitForDocsEvent blocks on the watcher channel and forwards one event.
func waitForDocsEvent(w *docs.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		return docsEventMsg{event: evt, ok: ok}
	}
}

func (m *Model) handleDocsEventMsg(msg tea.Msg) tea.Cmd {
	evtMsg, ok := msg.(docsEventMsg)
	if !ok {
		return nil
	}
	if !evtMsg.ok {
		return nil
	}
	evt := evtMsg.event
	if evt.Err != nil {
		events.Docs.ScanError(evt.Err)
		return waitForDocsEvent(m.watcher)
	}
	m.applySections(evt.Sections)
	events.Docs.Refreshed(len(evt.Sections))
	return waitForDocsEvent(m.watcher)
}

// applySections replaces the navigation tree, refreshing both panels while
// preserving their browse state where items survive.
func (m *Model) applySections(sections []nav.Item) {
	m.docsStore.SetSections(sections)
	m.primary.UpdateItems(sections)
	if m.secondary != nil {
		if parent, ok := nav.FindByID(sections, m.secondary.ID); ok && parent.HasChildren() {
			m.secondary.UpdateItems(parent.Children)
		} else {
			// The open submenu's parent vanished; fall back to Primary.
			m.menuBack()
		}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}
