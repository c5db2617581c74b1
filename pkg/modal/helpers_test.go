package modal

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// newInstalled returns a manager with a fresh store installed and
// deterministic generated ids.
func newInstalled(t *testing.T, opts ...Option) (*Manager, *Store) {
	t.Helper()
	n := 0
	opts = append([]Option{WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	})}, opts...)
	m := NewManager(opts...)
	s := NewStore()
	m.Install(s.Dispatch, s.Snapshot)
	return m, s
}

type stubDialog struct {
	ctx     context.Context
	h       *Handler
	args    Args
	msgs    []tea.Msg
	setArgs int
	width   int
}

func (d *stubDialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	d.msgs = append(d.msgs, msg)
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "y":
			d.h.Resolve(true)
			_, _ = d.h.Hide()
		case "x":
			d.h.ResolveHide("closed")
			_ = d.h.Remove()
		}
	}
	return d, nil
}

func (d *stubDialog) View() string {
	return "dialog:" + d.h.ID()
}

func (d *stubDialog) SetArgs(args Args) {
	d.args = args
	d.setArgs++
}

func (d *stubDialog) SetSize(width, _ int) {
	d.width = width
}

// recorder is a component that remembers every dialog it built.
type recorder struct {
	built []*stubDialog
}

func (r *recorder) component(name string) *Component {
	return NewComponent(name, func(ctx context.Context, h *Handler, args Args) Dialog {
		d := &stubDialog{ctx: ctx, h: h, args: args}
		r.built = append(r.built, d)
		return d
	})
}

func (r *recorder) last() *stubDialog {
	if len(r.built) == 0 {
		return nil
	}
	return r.built[len(r.built)-1]
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func containsProvider(msg string) bool {
	return strings.Contains(msg, "Provider")
}
