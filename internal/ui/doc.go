// Package ui contains the Bubble Tea program that powers the docnav shell.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, scrolling, input,
// and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, mouse wheel,
//     resize, document loads, docs-watcher refreshes, frame ticks).
//   - Navigation helpers (navigation.go) manage the sidebar's two-panel menu
//     stack, cursor movement, and link activation. Scrolling helpers
//     (scrolling.go) feed viewport offsets through the scroll tracker into
//     the navbar visibility controller. Filter helpers (input.go) keep text
//     entry isolated from the event loop.
//
// State ownership:
//   - Panel browse state lives in internal/ui/state.PanelView (items,
//     filtering, cursor, viewport offset); which panel is interactive is the
//     menustack controller's decision.
//   - The sidebar lifecycle is owned by internal/sidebar, which drives the
//     scroll lock and the forced bar visibility through hooks.
//   - The theme mode is owned by the shared internal/thememode store; the
//     header toggle and the sidebar toggle are both views over it.
//   - Document loads run asynchronously through the internal/ui/command bus;
//     the docLoadedMsg handler installs the rendered markdown.
package ui
