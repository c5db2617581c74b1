package props

import (
	"context"
	"testing"

	"github.com/five82/curtain/pkg/modal"
)

type counter struct {
	store *modal.Store
	kinds map[modal.ActionKind]int
}

func newHandler(t *testing.T, id string) (*modal.Manager, *modal.Handler, *counter) {
	t.Helper()
	c := &counter{store: modal.NewStore(), kinds: make(map[modal.ActionKind]int)}
	m := modal.NewManager()
	m.Install(func(a modal.Action) error {
		c.kinds[a.Kind]++
		return c.store.Dispatch(a)
	}, c.store.Snapshot)

	h, err := m.UseModal(context.Background(), modal.ID(id), nil)
	if err != nil {
		t.Fatalf("UseModal error: %v", err)
	}
	return m, h, c
}

func TestForOpenModal_CloseSequence(t *testing.T) {
	m, h, c := newHandler(t, "m1")
	if _, err := m.Show(modal.ID("m1"), nil); err != nil {
		t.Fatalf("Show error: %v", err)
	}
	// Promote the delayed show the way a mounted adapter does.
	_ = m.SetFlags("m1", modal.Flags{Visible: modal.Bool(true), DelayVisible: modal.Bool(false)})

	p := ForOpenModal(h)
	if !p.Open {
		t.Fatalf("Open = false, want true")
	}

	if err := p.OnCancel(); err != nil {
		t.Fatalf("OnCancel error: %v", err)
	}
	hidePromise, _ := m.Hide(modal.ID("m1"))
	if err := p.AfterClose(); err != nil {
		t.Fatalf("AfterClose error: %v", err)
	}

	if !hidePromise.Settled() {
		t.Fatalf("hide promise not settled by AfterClose")
	}
	if got := c.kinds[modal.ActionRemove]; got != 1 {
		t.Fatalf("remove dispatched %d times, want 1", got)
	}
	if _, ok := c.store.Snapshot()["m1"]; ok {
		t.Fatalf("entry still present after AfterClose")
	}
}

func TestAfterClose_KeepMountedSkipsRemove(t *testing.T) {
	m, h, c := newHandler(t, "m1")
	_, _ = m.Show(modal.ID("m1"), nil)
	_ = m.SetFlags("m1", modal.Flags{KeepMounted: modal.Bool(true)})

	p := ForVisibleModal(h)
	if err := p.OnOk(); err != nil {
		t.Fatalf("OnOk error: %v", err)
	}
	if err := p.AfterClose(); err != nil {
		t.Fatalf("AfterClose error: %v", err)
	}

	if got := c.kinds[modal.ActionRemove]; got != 0 {
		t.Fatalf("remove dispatched %d times, want 0", got)
	}
	if _, ok := c.store.Snapshot()["m1"]; !ok {
		t.Fatalf("kept entry removed")
	}
}

func TestDrawers_OnlyClosingEdgeRemoves(t *testing.T) {
	tests := []struct {
		name   string
		change func(*modal.Handler) func(bool) error
	}{
		{name: "visible drawer", change: func(h *modal.Handler) func(bool) error {
			return ForVisibleDrawer(h).AfterVisibleChange
		}},
		{name: "open drawer", change: func(h *modal.Handler) func(bool) error {
			return ForOpenDrawer(h).AfterOpenChange
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h, c := newHandler(t, "d")
			_, _ = m.Show(modal.ID("d"), nil)
			change := tt.change(h)

			if err := change(true); err != nil {
				t.Fatalf("change(true) error: %v", err)
			}
			if c.kinds[modal.ActionRemove] != 0 {
				t.Fatalf("opening edge removed the entry")
			}
			if err := change(false); err != nil {
				t.Fatalf("change(false) error: %v", err)
			}
			if got := c.kinds[modal.ActionRemove]; got != 1 {
				t.Fatalf("remove dispatched %d times, want 1", got)
			}
		})
	}
}

func TestDialogs_CloseHidesAndExitRemoves(t *testing.T) {
	tests := []struct {
		name    string
		visible func(*modal.Handler) bool
		close   func(*modal.Handler) func() error
		exited  func(*modal.Handler) func() error
	}{
		{
			name:    "open dialog",
			visible: func(h *modal.Handler) bool { return ForOpenDialog(h).Open },
			close:   func(h *modal.Handler) func() error { return ForOpenDialog(h).OnClose },
			exited:  func(h *modal.Handler) func() error { return ForOpenDialog(h).OnExited },
		},
		{
			name:    "show dialog",
			visible: func(h *modal.Handler) bool { return ForShowDialog(h).Show },
			close:   func(h *modal.Handler) func() error { return ForShowDialog(h).OnHide },
			exited:  func(h *modal.Handler) func() error { return ForShowDialog(h).OnExited },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, h, c := newHandler(t, "d")
			_, _ = m.Show(modal.ID("d"), nil)
			_ = m.SetFlags("d", modal.Flags{Visible: modal.Bool(true)})

			if !tt.visible(h) {
				t.Fatalf("visible = false after show")
			}
			if err := tt.close(h)(); err != nil {
				t.Fatalf("close error: %v", err)
			}
			if tt.visible(h) {
				t.Fatalf("visible = true after close")
			}
			if c.kinds[modal.ActionHide] != 1 {
				t.Fatalf("hide dispatched %d times, want 1", c.kinds[modal.ActionHide])
			}
			if err := tt.exited(h)(); err != nil {
				t.Fatalf("exited error: %v", err)
			}
			if got := c.kinds[modal.ActionRemove]; got != 1 {
				t.Fatalf("remove dispatched %d times, want 1", got)
			}
		})
	}
}

func TestForOpenModal_ClosedWhenAbsent(t *testing.T) {
	_, h, _ := newHandler(t, "none")
	if ForOpenModal(h).Open {
		t.Fatalf("Open = true for an absent entry")
	}
}
