package events

import "github.com/anditko/docnav/internal/logging"

type UITracer struct{}

type SidebarTracer struct{}

type ThemeTracer struct{}

type NavbarTracer struct{}

type DocsTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Sidebar = SidebarTracer{}
	Theme   = ThemeTracer{}
	Navbar  = NavbarTracer{}
	Docs    = DocsTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuCursor(panel string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"panel": panel, "cursor": cursor})
}

func (UITracer) MenuEnter(panel, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"panel":  panel,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuBack(panel string) {
	logging.Trace("menu.back", map[string]interface{}{"panel": panel})
}

func (UITracer) Resize(width, height int, compact bool) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height, "compact": compact})
}

func (SidebarTracer) Open() {
	logging.Trace("sidebar.open", nil)
}

func (SidebarTracer) Close(reason string) {
	logging.Trace("sidebar.close", map[string]interface{}{"reason": reason})
}

func (ThemeTracer) Init(mode, origin string) {
	logging.Trace("theme.init", map[string]interface{}{"mode": mode, "origin": origin})
}

func (ThemeTracer) Set(mode, origin string) {
	logging.Trace("theme.set", map[string]interface{}{"mode": mode, "origin": origin})
}

func (ThemeTracer) PersistError(err error) {
	if err == nil {
		return
	}
	logging.Trace("theme.persist-error", map[string]interface{}{"error": err.Error()})
}

func (NavbarTracer) Visible(visible bool, y int) {
	logging.Trace("navbar.visible", map[string]interface{}{"visible": visible, "y": y})
}

func (DocsTracer) Loaded(path string) {
	logging.Trace("docs.loaded", map[string]interface{}{"path": path})
}

func (DocsTracer) ScanError(err error) {
	if err == nil {
		return
	}
	logging.Trace("docs.scan-error", map[string]interface{}{"error": err.Error()})
}

func (DocsTracer) WatchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("docs.watch-error", map[string]interface{}{"error": err.Error()})
}

func (DocsTracer) Refreshed(sections int) {
	logging.Trace("docs.refreshed", map[string]interface{}{"sections": sections})
}

func (FilterTracer) Append(panel, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"panel": panel, "filter": filter})
}

func (FilterTracer) Backspace(panel, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"panel": panel, "filter": filter})
}

func (FilterTracer) Cleared(panel string) {
	logging.Trace("filter.clear", map[string]interface{}{"panel": panel})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
