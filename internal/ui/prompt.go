package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/pkg/modal"
	"github.com/five82/curtain/pkg/modal/props"
)

// promptDialog reads one line of text. It resolves with the trimmed value
// and rejects when cancelled.
type promptDialog struct {
	closer
	deps deps

	title string
	value string
	input textinput.Model
	width int
}

func newPrompt(d deps) modal.BuildFunc {
	return func(_ context.Context, h *modal.Handler, args modal.Args) modal.Dialog {
		input := textinput.New()
		input.CharLimit = 120
		input.Prompt = "> "
		input.Focus()

		p := &promptDialog{closer: newCloser(d, h), deps: d, input: input}
		p.SetArgs(args)
		return p
	}
}

func (p *promptDialog) Init() tea.Cmd {
	return textinput.Blink
}

func (p *promptDialog) SetArgs(args modal.Args) {
	p.title = argString(args, "title", "Input")
	p.input.Placeholder = argString(args, "placeholder", "")
	if value := argString(args, "value", ""); value != p.value {
		p.value = value
		p.input.SetValue(value)
		p.input.CursorEnd()
	}
}

func (p *promptDialog) SetSize(width, _ int) {
	p.width = dialogWidth(width, 60)
	p.input.Width = max(10, p.width-8)
}

func (p *promptDialog) Update(msg tea.Msg) (modal.Dialog, tea.Cmd) {
	pr := props.ForOpenDialog(p.h)
	if p.done(msg, pr.OnExited) {
		return p, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if !pr.Open {
			return p, nil
		}
		switch {
		case key.Matches(k, p.deps.keys.Quit):
			return p, tea.Quit
		case key.Matches(k, p.deps.keys.Confirm):
			text := strings.TrimSpace(p.input.Value())
			if text == "" {
				return p, nil
			}
			p.h.Resolve(text)
			return p, p.close(pr.OnClose)
		case key.Matches(k, p.deps.keys.Cancel):
			p.h.Reject(nil)
			return p, p.close(pr.OnClose)
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *promptDialog) View() string {
	if p.hidden() {
		return ""
	}
	s := p.deps.pal.styles()
	return frame(s, p.title, p.input.View(), "enter save  esc cancel", p.width, p.closing)
}
