package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/pkg/modal"
	"github.com/five82/curtain/pkg/modal/props"
)

// helpDrawer lists every board binding. The board places it in its own
// layout and keeps it mounted, so closing only hides it.
type helpDrawer struct {
	closer
	deps deps

	keys  keyMap
	help  help.Model
	width int
}

func newHelpDrawer(d deps, keys keyMap) modal.BuildFunc {
	return func(_ context.Context, h *modal.Handler, _ modal.Args) modal.Dialog {
		hm := help.New()
		hm.ShowAll = true
		return &helpDrawer{closer: newCloser(d, h), deps: d, keys: keys, help: hm}
	}
}

func (d *helpDrawer) SetSize(width, _ int) {
	d.width = max(20, width-2)
	d.help.Width = d.width - 4
}

func (d *helpDrawer) Update(msg tea.Msg) (modal.Dialog, tea.Cmd) {
	p := props.ForOpenDrawer(d.h)
	after := func() error { return p.AfterOpenChange(false) }
	if d.done(msg, after) {
		return d, nil
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok || !p.Open {
		return d, nil
	}
	switch {
	case key.Matches(k, d.deps.keys.Quit):
		return d, tea.Quit
	case key.Matches(k, d.deps.keys.Cancel), key.Matches(k, d.keys.Help):
		return d, d.close(p.OnClose)
	}
	return d, nil
}

func (d *helpDrawer) View() string {
	if d.hidden() {
		return ""
	}
	s := d.deps.pal.styles()
	style := s.Panel.BorderForeground(s.AccentText.GetForeground())
	if d.closing {
		style = s.Panel
	}
	if d.width > 0 {
		style = style.Width(d.width)
	}
	return style.Render(s.AccentText.Bold(true).Render("Keyboard Shortcuts") + "\n\n" + d.help.View(d.keys))
}
