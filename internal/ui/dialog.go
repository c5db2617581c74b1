package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/curtain/pkg/modal"
)

// Modal ids registered by the board.
const (
	confirmID     = "confirm-delete"
	themePickerID = "theme-picker"
	logsID        = "logs"
	helpID        = "help"
)

// deps are shared by every dialog builder.
type deps struct {
	pal     *palette
	log     zerolog.Logger
	keys    dialogKeyMap
	delay   time.Duration
	logFile string
}

// closeDoneMsg ends the close transition of the dialog with the given id.
type closeDoneMsg struct {
	id string
}

func closeAfter(id string, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return closeDoneMsg{id: id} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return closeDoneMsg{id: id}
	})
}

// closer tracks a dialog's close transition: hide first, then after the
// configured delay run the post-close hook.
type closer struct {
	h       *modal.Handler
	log     zerolog.Logger
	delay   time.Duration
	closing bool
}

func newCloser(d deps, h *modal.Handler) closer {
	return closer{h: h, log: d.log, delay: d.delay}
}

func (c *closer) close(hide func() error) tea.Cmd {
	if c.closing {
		return nil
	}
	if err := hide(); err != nil {
		c.log.Error().Err(err).Str("modal_id", c.h.ID()).Msg("hide dialog")
		return nil
	}
	c.closing = true
	return closeAfter(c.h.ID(), c.delay)
}

// done reports whether msg ends this dialog's transition. The post-close
// hook is skipped when the modal was shown again in the meantime.
func (c *closer) done(msg tea.Msg, after func() error) bool {
	m, ok := msg.(closeDoneMsg)
	if !ok || m.id != c.h.ID() {
		return false
	}
	if !c.closing {
		return true
	}
	c.closing = false
	if c.h.Visible() {
		return true
	}
	if err := after(); err != nil {
		c.log.Error().Err(err).Str("modal_id", c.h.ID()).Msg("finish closing dialog")
	}
	return true
}

func (c *closer) hidden() bool {
	return !c.closing && !c.h.Visible()
}

// frame renders a dialog body with its title and key hints.
func frame(s Styles, title, body, hints string, width int, closing bool) string {
	var b strings.Builder
	b.WriteString(s.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(body)
	if hints != "" {
		b.WriteString("\n\n")
		b.WriteString(s.FaintText.Render(hints))
	}

	style := s.Dialog
	if closing {
		style = s.DialogClosing
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(b.String())
}

func dialogWidth(termWidth, preferred int) int {
	if termWidth <= 0 {
		return preferred
	}
	return max(20, min(preferred, termWidth-4))
}

func argString(args modal.Args, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// fitScreen pads view to the terminal size so dialogs composite over a
// full-screen background.
func fitScreen(view string, width, height int) string {
	if width <= 0 || height <= 0 {
		return view
	}
	view = lipgloss.NewStyle().MaxHeight(height).Render(view)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, view)
}
