package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	s := NewSpinner(&out, "waiting")
	s.Stop()
	if s.Running() {
		t.Error("Running() = true after Stop without Start")
	}
	if out.String() != "" {
		t.Errorf("Stop without Start wrote %q", out.String())
	}
}

func TestSpinner_StartStop(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	s := NewSpinner(&out, "Running $ jira current")
	s.Start()
	s.Start() // no-op
	if !s.Running() {
		t.Fatal("Running() = false after Start")
	}
	s.Stop()
	s.Stop() // no-op
	if s.Running() {
		t.Error("Running() = true after Stop")
	}
	if !strings.HasSuffix(out.String(), "\r\033[K") {
		t.Errorf("Stop should clear the line, output ends with %q", out.String())
	}
}

func TestSpinnerModel_View(t *testing.T) {
	t.Parallel()

	m := spinnerModel{spinner: spinner.New(), message: "loading"}
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start ticking")
	}
	updated, cmd := m.Update(tea.KeyPressMsg{Code: 'q'})
	if cmd != nil {
		t.Error("key presses should be ignored")
	}
	if updated.(spinnerModel).message != "loading" {
		t.Error("key press changed the model")
	}
}
