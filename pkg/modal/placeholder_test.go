package modal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestPlaceholder_MountsRegisteredEntries(t *testing.T) {
	m, s := newInstalled(t)
	var r recorder
	m.Register("m1", r.component("c"), Args{"title": "T"})
	p := NewPlaceholder(context.Background(), m)

	_, _ = m.Show(ID("m1"), Args{"a": 1})
	if _, err := p.Sync(); err != nil {
		t.Fatalf("Sync error: %v", err)
	}

	w, ok := p.Mounted("m1")
	if !ok {
		t.Fatalf("m1 not mounted")
	}
	if !w.Visible() || !s.Snapshot()["m1"].Visible {
		t.Fatalf("m1 not promoted to visible")
	}
	if got := r.last().args; got["title"] != "T" || got["a"] != 1 {
		t.Fatalf("build args = %#v, want defaults merged under a=1", got)
	}
	if got := p.Views(); len(got) != 1 || got[0] != "dialog:m1" {
		t.Fatalf("Views = %q, want [dialog:m1]", got)
	}
	if p.Top() != w {
		t.Fatalf("Top did not return the visible adapter")
	}
}

func TestPlaceholder_UnmountsOnRemoveAndUnregister(t *testing.T) {
	m, _ := newInstalled(t)
	var r recorder
	m.Register("m1", r.component("c"), nil)
	m.Register("m2", r.component("c"), nil)
	p := NewPlaceholder(context.Background(), m)

	_, _ = m.Show(ID("m1"), nil)
	_, _ = m.Show(ID("m2"), nil)
	_, _ = p.Sync()

	_ = m.Remove(ID("m1"))
	m.Unregister("m2")
	_, _ = p.Sync()

	if _, ok := p.Mounted("m1"); ok {
		t.Fatalf("m1 still mounted after Remove")
	}
	if _, ok := p.Mounted("m2"); ok {
		t.Fatalf("m2 still mounted after Unregister")
	}
	if m.IsMounted("m1") {
		t.Fatalf("m1 still recorded as mounted")
	}
	if p.Top() != nil {
		t.Fatalf("Top = %v, want nil", p.Top())
	}
}

func TestPlaceholder_WarnsOnceForUnknownID(t *testing.T) {
	var buf bytes.Buffer
	m, _ := newInstalled(t, WithLogger(zerolog.New(&buf)))
	p := NewPlaceholder(context.Background(), m)

	_, _ = m.Show(ID("ghost"), nil)
	_, _ = p.Sync()
	_, _ = p.Sync()

	if got := strings.Count(buf.String(), "no modal found for id"); got != 1 {
		t.Fatalf("warnings = %d, want 1; log:\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), `"modal_id":"ghost"`) {
		t.Fatalf("warning missing modal_id: %s", buf.String())
	}
	if len(p.Views()) != 0 {
		t.Fatalf("unknown id rendered")
	}

	// Warned again once the entry is removed and shown anew.
	_ = m.Remove(ID("ghost"))
	_, _ = p.Sync()
	_, _ = m.Show(ID("ghost"), nil)
	_, _ = p.Sync()
	if got := strings.Count(buf.String(), "no modal found for id"); got != 2 {
		t.Fatalf("warnings after re-show = %d, want 2", got)
	}
}

func TestPlaceholder_HostMountedIDIsNotWarned(t *testing.T) {
	var buf bytes.Buffer
	m, _ := newInstalled(t, WithLogger(zerolog.New(&buf)))
	var r recorder
	w := m.Mount(context.Background(), r.component("c"), MountConfig{ID: "inline"})
	_, _ = w.Init()
	p := NewPlaceholder(context.Background(), m)

	_, _ = m.Show(ID("inline"), nil)
	_, _ = p.Sync()

	if strings.Contains(buf.String(), "no modal found") {
		t.Fatalf("host-mounted id warned: %s", buf.String())
	}
	if _, ok := p.Mounted("inline"); ok {
		t.Fatalf("placeholder mounted a host-placed id")
	}
}

func TestPlaceholder_SetSizeReachesDialogs(t *testing.T) {
	m, _ := newInstalled(t)
	var r recorder
	m.Register("m1", r.component("c"), nil)
	p := NewPlaceholder(context.Background(), m)

	p.SetSize(100, 30)
	_, _ = m.Show(ID("m1"), nil)
	_, _ = p.Sync()
	if got := r.last().width; got != 100 {
		t.Fatalf("width at build = %d, want 100", got)
	}

	p.SetSize(60, 20)
	if got := r.last().width; got != 60 {
		t.Fatalf("width after SetSize = %d, want 60", got)
	}
}
