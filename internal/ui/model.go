package ui

import (
	"reflect"
	"time"

	"github.com/anditko/docnav/internal/content"
	"github.com/anditko/docnav/internal/docs"
	"github.com/anditko/docnav/internal/logging/events"
	"github.com/anditko/docnav/internal/menustack"
	"github.com/anditko/docnav/internal/nav"
	"github.com/anditko/docnav/internal/scroll"
	"github.com/anditko/docnav/internal/sidebar"
	"github.com/anditko/docnav/internal/theme"
	"github.com/anditko/docnav/internal/thememode"
	"github.com/anditko/docnav/internal/ui/command"
	uistate "github.com/anditko/docnav/internal/ui/state"
	"github.com/anditko/docnav/internal/visibility"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle = "docnav"
	// barHeight is the number of rows the top bar occupies when visible.
	barHeight = 2
	// scrollEpsilon absorbs sub-line jitter from coalesced wheel deltas.
	scrollEpsilon = 0
	// wheelLines is the scroll distance of one wheel notch.
	wheelLines = 3
	// frameInterval paces coalesced scroll recomputation.
	frameInterval = 16 * time.Millisecond

	sidebarMaxWidth = 32
	sidebarMinWidth = 20
)

// Options describe the shell configuration the model needs.
type Options struct {
	Title         string
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	Breakpoint    int
	HideOnScroll  bool
	DisableSwitch bool
}

type msgHandler func(tea.Msg) tea.Cmd

// Model is the navigation shell: the scroll-aware top bar, the off-canvas
// sidebar with its two-panel menu stack, and the content viewport, all bound
// to one shared theme store.
type Model struct {
	opts        Options
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	compact     bool

	store  *thememode.Store
	styles *theme.Styles

	tracker    *scroll.Tracker
	coalescer  *scroll.Coalescer
	wheelAccum int
	vis        *visibility.Controller
	stack      *menustack.Controller
	sidebar    *sidebar.Controller

	scrollLocked bool

	primary   *uistate.PanelView
	secondary *uistate.PanelView

	docsStore docs.SectionStore
	watcher   *docs.Watcher

	renderer   content.Renderer
	viewport   viewport.Model
	currentDoc nav.Item
	currentMD  string

	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time

	bus      *command.Bus
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the shell with the section tree and configuration.
func NewModel(opts Options, store *thememode.Store, sections []nav.Item, renderer content.Renderer, watcher *docs.Watcher) *Model {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.Breakpoint <= 0 {
		opts.Breakpoint = 80
	}
	if renderer == nil {
		renderer = content.Plain{}
	}
	docsStore := docs.NewSectionStore()
	docsStore.SetSections(sections)

	m := &Model{
		opts:      opts,
		store:     store,
		styles:    theme.Select(store.Mode()),
		tracker:   scroll.NewTracker(scrollEpsilon),
		coalescer: &scroll.Coalescer{},
		vis:       visibility.New(opts.HideOnScroll, barHeight),
		stack:     menustack.New(),
		docsStore: docsStore,
		watcher:   watcher,
		renderer:  renderer,
		viewport:  viewport.New(0, 0),
		bus:       command.New(),
	}
	m.primary = uistate.NewPanelView(menustack.Primary.String(), opts.Title, sections)
	m.sidebar = sidebar.New(m.stack, sidebar.Hooks{
		LockScroll: func(locked bool) {
			m.scrollLocked = locked
		},
		ForceBarVisible: func(forced bool) {
			m.vis.SetSidebarOpen(forced)
		},
	})
	store.Subscribe(func(mode thememode.Mode) {
		m.styles = theme.Select(mode)
		m.rerenderContent()
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.applyLayout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForDocsEvent(m.watcher))
	}
	if doc, ok := firstLeaf(m.docsStore.Sections()); ok {
		cmds = append(cmds, m.loadDocCmd(doc))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(docLoadedMsg{}):      m.handleDocLoadedMsg,
		reflect.TypeOf(docsEventMsg{}):      m.handleDocsEventMsg,
		reflect.TypeOf(frameTickMsg{}):      m.handleFrameTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Sidebar exposes the sidebar controller (used by tests and the harness).
func (m *Model) Sidebar() *sidebar.Controller {
	return m.sidebar
}

// Stack exposes the menu stack controller.
func (m *Model) Stack() *menustack.Controller {
	return m.stack
}

// Visibility exposes the navbar visibility controller.
func (m *Model) Visibility() *visibility.Controller {
	return m.vis
}

// ThemeStore exposes the shared theme mode store.
func (m *Model) ThemeStore() *thememode.Store {
	return m.store
}

// Compact reports whether the shell is in the off-canvas layout.
func (m *Model) Compact() bool {
	return m.compact
}

func (m *Model) setInfo(msg string) {
	m.infoMsg = msg
	m.infoExpire = time.Now().Add(4 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		return ""
	}
	return m.infoMsg
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.applyLayout()
	m.rerenderContent()
	return nil
}

// applyLayout recomputes the compact/wide split and the viewport geometry.
// Crossing from compact to wide closes an open sidebar.
func (m *Model) applyLayout() {
	wasCompact := m.compact
	m.compact = m.width > 0 && m.width < m.opts.Breakpoint
	if wasCompact && !m.compact && m.sidebar.IsOpen() {
		m.sidebar.Close(sidebar.ReasonResize)
		m.secondary = nil
	}
	contentHeight := m.height - barHeight
	if m.opts.ShowFooter {
		contentHeight -= 2
	}
	if contentHeight < 0 {
		contentHeight = 0
	}
	m.viewport.Width = m.width
	m.viewport.Height = contentHeight
	events.UI.Resize(m.width, m.height, m.compact)
}

// firstLeaf returns the first item with a target, searching one level deep.
func firstLeaf(items []nav.Item) (nav.Item, bool) {
	for _, item := range items {
		if item.Target != "" {
			return item, true
		}
		for _, child := range item.Children {
			if child.Target != "" {
				return child, true
			}
		}
	}
	return nav.Item{}, false
}
