package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anditko/docnav/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type resultMsg struct{ value string }

func TestExecuteRunsHandler(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{
		ID:      "doc",
		Label:   "Doc",
		Handler: func() tea.Msg { return resultMsg{value: "done"} },
	})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	msg, ok := cmd().(resultMsg)
	if !ok || msg.value != "done" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestExecuteTracesQueueAndResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docnav.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	cmd := New().Execute(Request{
		ID:      "doc",
		Label:   "Doc",
		Handler: func() tea.Msg { return resultMsg{value: "done"} },
	})
	_ = cmd()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace log: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, "command.queue") || !strings.Contains(log, "command.result") {
		t.Fatalf("expected queue and result entries, got %q", log)
	}
}

func TestExecuteWithoutHandler(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop", Label: "Noop"})
	if cmd == nil {
		t.Fatalf("expected command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
