package ui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// renderInspector shows the modal store and registry, one entry per line.
func (m Model) renderInspector(s Styles) string {
	state := m.mgr.State()

	var b strings.Builder
	b.WriteString(s.AccentText.Bold(true).Render("Store"))
	b.WriteString("\n")
	if len(state) == 0 {
		b.WriteString(s.FaintText.Render("empty"))
		b.WriteString("\n")
	}
	for _, id := range slices.Sorted(maps.Keys(state)) {
		e := state[id]
		b.WriteString(s.Key.Render(id))
		b.WriteString(" ")
		b.WriteString(s.MutedText.Render(fmt.Sprintf("%s args=%d", flagString(e.Visible, e.DelayVisible, e.KeepMounted), len(e.Args))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.AccentText.Bold(true).Render("Registry"))
	b.WriteString("\n")
	registered := m.mgr.Registered()
	if len(registered) == 0 {
		b.WriteString(s.FaintText.Render("empty"))
	} else {
		b.WriteString(s.Text.Render(strings.Join(registered, "\n")))
	}

	return s.Panel.Render(b.String())
}

// flagString renders the three entry flags as "v d k", with "-" for unset.
func flagString(visible, delayVisible, keepMounted bool) string {
	flag := func(set bool, c string) string {
		if set {
			return c
		}
		return "-"
	}
	return flag(visible, "v") + flag(delayVisible, "d") + flag(keepMounted, "k")
}
