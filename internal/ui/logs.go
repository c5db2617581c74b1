package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/internal/logtail"
	"github.com/five82/curtain/pkg/modal"
	"github.com/five82/curtain/pkg/modal/props"
)

const logTailLines = 500

type logsLoadedMsg struct {
	id    string
	lines []string
	err   error
}

func loadLogsCmd(id, path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logsLoadedMsg{id: id, lines: logtail.FormatLines(lines), err: err}
	}
}

// logViewer is a drawer showing the tail of the log file.
type logViewer struct {
	closer
	deps deps

	path     string
	viewport viewport.Model
	lines    []string
	err      error
	width    int
}

func newLogViewer(d deps) modal.BuildFunc {
	return func(_ context.Context, h *modal.Handler, args modal.Args) modal.Dialog {
		v := &logViewer{
			closer:   newCloser(d, h),
			deps:     d,
			viewport: viewport.New(80, 15),
		}
		v.SetArgs(args)
		return v
	}
}

func (v *logViewer) Init() tea.Cmd {
	return loadLogsCmd(v.h.ID(), v.path)
}

func (v *logViewer) SetArgs(args modal.Args) {
	v.path = argString(args, "path", v.deps.logFile)
}

func (v *logViewer) SetSize(width, height int) {
	v.width = dialogWidth(width, 110)
	v.viewport.Width = v.width - 6
	v.viewport.Height = max(5, height/2)
}

func (v *logViewer) Update(msg tea.Msg) (modal.Dialog, tea.Cmd) {
	p := props.ForVisibleDrawer(v.h)
	after := func() error { return p.AfterVisibleChange(false) }
	if v.done(msg, after) {
		return v, nil
	}

	switch msg := msg.(type) {
	case logsLoadedMsg:
		if msg.id != v.h.ID() {
			return v, nil
		}
		v.lines, v.err = msg.lines, msg.err
		v.viewport.SetContent(v.content())
		v.viewport.GotoBottom()
		return v, nil

	case tea.KeyMsg:
		if !p.Visible {
			return v, nil
		}
		switch {
		case key.Matches(msg, v.deps.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.deps.keys.Cancel), msg.String() == "l", msg.String() == "q":
			return v, v.close(p.OnClose)
		case msg.String() == "r":
			return v, loadLogsCmd(v.h.ID(), v.path)
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *logViewer) content() string {
	s := v.deps.pal.styles()
	switch {
	case v.err != nil:
		return s.DangerText.Render(v.err.Error())
	case len(v.lines) == 0:
		return s.FaintText.Render("No log entries yet.")
	default:
		return strings.Join(v.lines, "\n")
	}
}

func (v *logViewer) View() string {
	if v.hidden() {
		return ""
	}
	s := v.deps.pal.styles()
	return frame(s, "Logs · "+v.path, v.viewport.View(), "j/k scroll  r reload  esc close", v.width, v.closing)
}
