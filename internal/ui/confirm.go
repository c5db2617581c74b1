package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/pkg/modal"
	"github.com/five82/curtain/pkg/modal/props"
)

// confirmDialog asks a yes/no question and resolves with the answer.
type confirmDialog struct {
	closer
	deps deps

	title   string
	message string
	width   int
}

func newConfirm(d deps) modal.BuildFunc {
	return func(_ context.Context, h *modal.Handler, args modal.Args) modal.Dialog {
		c := &confirmDialog{closer: newCloser(d, h), deps: d}
		c.SetArgs(args)
		return c
	}
}

func (c *confirmDialog) SetArgs(args modal.Args) {
	c.title = argString(args, "title", "Confirm")
	c.message = argString(args, "message", "Are you sure?")
}

func (c *confirmDialog) SetSize(width, _ int) {
	c.width = dialogWidth(width, 50)
}

func (c *confirmDialog) Update(msg tea.Msg) (modal.Dialog, tea.Cmd) {
	p := props.ForOpenModal(c.h)
	if c.done(msg, p.AfterClose) {
		return c, nil
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok || !p.Open {
		return c, nil
	}
	switch {
	case key.Matches(k, c.deps.keys.Quit):
		return c, tea.Quit
	case key.Matches(k, c.deps.keys.Confirm), k.String() == "y":
		c.h.Resolve(true)
		return c, c.close(p.OnOk)
	case key.Matches(k, c.deps.keys.Cancel), k.String() == "n":
		c.h.Resolve(false)
		return c, c.close(p.OnCancel)
	}
	return c, nil
}

func (c *confirmDialog) View() string {
	if c.hidden() {
		return ""
	}
	s := c.deps.pal.styles()
	body := s.Text.Render(c.message)
	return frame(s, c.title, body, "y/enter confirm  n/esc cancel", c.width, c.closing)
}
