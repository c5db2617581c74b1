package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/pkg/modal"
	"github.com/five82/curtain/pkg/modal/props"
)

type themeItem struct {
	name    string
	current bool
}

func (i themeItem) Title() string { return i.name }

func (i themeItem) Description() string {
	if i.current {
		return "current"
	}
	return ""
}

func (i themeItem) FilterValue() string { return i.name }

// themePicker lists the available themes and resolves with the chosen name.
type themePicker struct {
	closer
	deps deps

	list  list.Model
	width int
}

func newThemePicker(d deps) modal.BuildFunc {
	return func(_ context.Context, h *modal.Handler, args modal.Args) modal.Dialog {
		l := list.New(nil, list.NewDefaultDelegate(), 30, 12)
		l.SetShowTitle(false)
		l.SetShowHelp(false)
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		l.KeyMap.Quit.SetEnabled(false)
		l.KeyMap.ForceQuit.SetEnabled(false)

		t := &themePicker{closer: newCloser(d, h), deps: d, list: l}
		t.SetArgs(args)
		return t
	}
}

func (t *themePicker) SetArgs(args modal.Args) {
	current := argString(args, "current", t.deps.pal.theme.Name)
	items := make([]list.Item, 0, len(ThemeNames()))
	selected := 0
	for i, name := range ThemeNames() {
		items = append(items, themeItem{name: name, current: name == current})
		if name == current {
			selected = i
		}
	}
	t.list.SetItems(items)
	t.list.Select(selected)
}

func (t *themePicker) SetSize(width, height int) {
	t.width = dialogWidth(width, 40)
	t.list.SetSize(t.width-6, min(12, max(6, height-10)))
}

func (t *themePicker) Update(msg tea.Msg) (modal.Dialog, tea.Cmd) {
	p := props.ForVisibleModal(t.h)
	if t.done(msg, p.AfterClose) {
		return t, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if !p.Visible {
			return t, nil
		}
		switch {
		case key.Matches(k, t.deps.keys.Quit):
			return t, tea.Quit
		case key.Matches(k, t.deps.keys.Confirm):
			if item, ok := t.list.SelectedItem().(themeItem); ok {
				t.h.Resolve(item.name)
			}
			return t, t.close(p.OnOk)
		case key.Matches(k, t.deps.keys.Cancel):
			t.h.Reject(nil)
			return t, t.close(p.OnCancel)
		}
	}

	var cmd tea.Cmd
	t.list, cmd = t.list.Update(msg)
	return t, cmd
}

func (t *themePicker) View() string {
	if t.hidden() {
		return ""
	}
	s := t.deps.pal.styles()
	return frame(s, "Choose a theme", t.list.View(), "j/k move  enter apply  esc cancel", t.width, t.closing)
}
