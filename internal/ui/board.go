package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/rs/zerolog"

	"github.com/five82/curtain/internal/prefs"
	"github.com/five82/curtain/pkg/modal"
)

// Options configures the board.
type Options struct {
	Context    context.Context
	Manager    *modal.Manager
	Logger     zerolog.Logger
	Prefs      prefs.Prefs
	PrefsPath  string
	LogFile    string
	CloseDelay time.Duration
	Notes      []string
}

// Model is the notes board. It is the child of a modal.Provider, which
// renders the registered dialogs over it; the help drawer and the rename
// prompt are mounted by the board itself.
type Model struct {
	ctx       context.Context
	mgr       *modal.Manager
	log       zerolog.Logger
	keys      keyMap
	help      help.Model
	pal       *palette
	prefs     prefs.Prefs
	prefsPath string

	notes    []string
	selected int
	status   string
	width    int
	height   int

	prompt      *modal.Component
	themeDecl   *modal.Declaration
	helpPanel   *modal.Mounted
	rename      *modal.HolderHandle
	renameMount *modal.Mounted
}

// Messages carrying dialog answers.

type noteAddedMsg struct {
	text string
	err  error
}

type deleteAnsweredMsg struct {
	note string
	ok   bool
	err  error
}

type renamedMsg struct {
	note string
	text string
	err  error
}

type themePickedMsg struct {
	name string
	err  error
}

// New registers the board's dialogs with the manager and returns the board.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Manager == nil {
		return Model{}, errors.New("ui: manager is required")
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	keys := DefaultKeyMap()
	pal := newPalette(opts.Prefs.Theme)
	d := deps{
		pal:     pal,
		log:     opts.Logger,
		keys:    defaultDialogKeys(),
		delay:   opts.CloseDelay,
		logFile: opts.LogFile,
	}
	mgr := opts.Manager

	mgr.Register(confirmID, modal.NewComponent("confirm", newConfirm(d)), modal.Args{"title": "Delete note"})
	mgr.Register(logsID, modal.NewComponent("logs", newLogViewer(d)), modal.Args{"path": opts.LogFile})
	themeDecl := mgr.Declare(themePickerID, modal.NewComponent("theme-picker", newThemePicker(d)))

	prompt := modal.NewComponent("prompt", newPrompt(d))
	rename := &modal.HolderHandle{}
	renameMount, err := mgr.Hold(ctx, prompt, rename, modal.Args{"title": "Rename note"})
	if err != nil {
		return Model{}, fmt.Errorf("hold rename prompt: %w", err)
	}

	helpPanel := mgr.Mount(ctx, modal.NewComponent("help", newHelpDrawer(d, keys)), modal.MountConfig{
		ID:          helpID,
		KeepMounted: true,
	})

	return Model{
		ctx:         ctx,
		mgr:         mgr,
		log:         opts.Logger,
		keys:        keys,
		help:        help.New(),
		pal:         pal,
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		notes:       append([]string(nil), opts.Notes...),
		prompt:      prompt,
		themeDecl:   themeDecl,
		helpPanel:   helpPanel,
		rename:      rename,
		renameMount: renameMount,
	}, nil
}

// Close unregisters the declared theme picker and unmounts the board's own
// dialogs.
func (m Model) Close() {
	m.themeDecl.Close()
	m.helpPanel.Unmount()
	m.renameMount.Unmount()
}

// Notes returns the current notes.
func (m Model) Notes() []string {
	return m.notes
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range []*modal.Mounted{m.helpPanel, m.renameMount} {
		cmd, err := w.Init()
		m.logErr(err, w.ID(), "mount dialog")
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		for _, w := range []*modal.Mounted{m.renameMount, m.helpPanel} {
			if w.Visible() {
				cmd, err := w.Update(k)
				m.logErr(err, w.ID(), "update dialog")
				return m, tea.Batch(cmd, m.syncMounts())
			}
		}
		var cmd tea.Cmd
		m, cmd = m.handleKey(k)
		return m, tea.Batch(cmd, m.syncMounts())
	}

	var cmds []tea.Cmd
	for _, w := range []*modal.Mounted{m.helpPanel, m.renameMount} {
		cmd, err := w.Update(msg)
		m.logErr(err, w.ID(), "update dialog")
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case noteAddedMsg:
		if m.answered(msg.err, "add note") {
			m.notes = append(m.notes, msg.text)
			m.selected = len(m.notes) - 1
			m.status = fmt.Sprintf("Added %q", msg.text)
			m.log.Info().Str("note", msg.text).Msg("note added")
		}

	case deleteAnsweredMsg:
		if m.answered(msg.err, "delete note") {
			if !msg.ok {
				m.status = fmt.Sprintf("Kept %q", msg.note)
				break
			}
			m.deleteNote(msg.note)
		}

	case renamedMsg:
		if m.answered(msg.err, "rename note") {
			m.renameNote(msg.note, msg.text)
		}

	case themePickedMsg:
		if m.answered(msg.err, "pick theme") {
			m.applyTheme(msg.name)
		}
	}

	cmds = append(cmds, m.syncMounts())
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(k tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Add):
		p, err := m.mgr.Show(m.prompt, modal.Args{"title": "New note", "placeholder": "What needs doing?"})
		if err != nil {
			return m.failed(err, "show prompt")
		}
		return m, modal.Await(m.ctx, p, func(v any, err error) tea.Msg {
			text, _ := v.(string)
			return noteAddedMsg{text: text, err: err}
		})

	case key.Matches(k, m.keys.Delete):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		p, err := m.mgr.Show(modal.ID(confirmID), modal.Args{"message": fmt.Sprintf("Delete %q?", note)})
		if err != nil {
			return m.failed(err, "show confirm")
		}
		return m, modal.Await(m.ctx, p, func(v any, err error) tea.Msg {
			return deleteAnsweredMsg{note: note, ok: v == true, err: err}
		})

	case key.Matches(k, m.keys.Rename):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		p, err := m.rename.Show(modal.Args{"value": note})
		if err != nil {
			return m.failed(err, "show rename")
		}
		return m, modal.Await(m.ctx, p, func(v any, err error) tea.Msg {
			text, _ := v.(string)
			return renamedMsg{note: note, text: text, err: err}
		})

	case key.Matches(k, m.keys.PickTheme):
		p, err := m.mgr.Show(modal.ID(themePickerID), modal.Args{"current": m.pal.theme.Name})
		if err != nil {
			return m.failed(err, "show theme picker")
		}
		return m, modal.Await(m.ctx, p, func(v any, err error) tea.Msg {
			name, _ := v.(string)
			return themePickedMsg{name: name, err: err}
		})

	case key.Matches(k, m.keys.CycleTheme):
		m.applyTheme(NextTheme(m.pal.theme.Name))

	case key.Matches(k, m.keys.Logs):
		if _, err := m.mgr.Show(modal.ID(logsID), nil); err != nil {
			return m.failed(err, "show logs")
		}

	case key.Matches(k, m.keys.Help):
		if _, err := m.helpPanel.Handler().Show(nil); err != nil {
			return m.failed(err, "show help")
		}

	case key.Matches(k, m.keys.Inspector):
		m.prefs.ShowInspector = !m.prefs.ShowInspector
		m.savePrefs()

	case key.Matches(k, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(k, m.keys.Down):
		if m.selected < len(m.notes)-1 {
			m.selected++
		}
	case key.Matches(k, m.keys.Top):
		m.selected = 0
	case key.Matches(k, m.keys.Bottom):
		m.selected = max(0, len(m.notes)-1)
	}
	return m, nil
}

func (m Model) syncMounts() tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range []*modal.Mounted{m.helpPanel, m.renameMount} {
		cmd, err := w.Sync()
		m.logErr(err, w.ID(), "sync dialog")
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) current() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.notes) {
		return "", false
	}
	return m.notes[m.selected], true
}

// answered reports whether a dialog produced an answer. Cancelled dialogs
// and failures only update the status line.
func (m *Model) answered(err error, action string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, modal.ErrRejected):
		m.status = "Cancelled"
	default:
		m.status = "Failed to " + action
		m.log.Error().Err(err).Str("action", action).Msg("dialog failed")
	}
	return false
}

func (m Model) failed(err error, action string) (Model, tea.Cmd) {
	m.status = "Failed to " + action
	m.log.Error().Err(err).Str("action", action).Msg("open dialog")
	return m, nil
}

func (m *Model) deleteNote(note string) {
	for i, n := range m.notes {
		if n != note {
			continue
		}
		m.notes = append(m.notes[:i:i], m.notes[i+1:]...)
		if m.selected >= len(m.notes) {
			m.selected = max(0, len(m.notes)-1)
		}
		m.status = fmt.Sprintf("Deleted %q", note)
		m.log.Info().Str("note", note).Msg("note deleted")
		return
	}
}

func (m *Model) renameNote(note, text string) {
	for i, n := range m.notes {
		if n == note {
			m.notes[i] = text
			m.status = fmt.Sprintf("Renamed %q to %q", note, text)
			m.log.Info().Str("from", note).Str("to", text).Msg("note renamed")
			return
		}
	}
}

func (m *Model) applyTheme(name string) {
	m.pal.theme = GetTheme(name)
	m.prefs.Theme = m.pal.theme.Name
	m.status = "Theme: " + m.pal.theme.Name
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Error().Err(err).Str("path", m.prefsPath).Msg("save prefs")
	}
}

func (m Model) logErr(err error, id, msg string) {
	if err != nil {
		m.log.Error().Err(err).Str("modal_id", id).Msg(msg)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.pal.styles()

	var b strings.Builder
	b.WriteString(s.Header.Render("curtain · notes"))
	b.WriteString(s.FaintText.Render("  " + m.pal.theme.Name))
	b.WriteString("\n\n")

	main := m.renderNotes(s)
	if m.prefs.ShowInspector {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", m.renderInspector(s))
	}
	b.WriteString(main)
	b.WriteString("\n")

	if drawer := m.helpPanel.View(); drawer != "" {
		b.WriteString("\n")
		b.WriteString(drawer)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(s.MutedText.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(s.Footer.Render(m.help.View(m.keys)))

	view := fitScreen(b.String(), m.width, m.height)
	if fg := m.renameMount.View(); fg != "" {
		view = overlay.Composite(fg, view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

func (m Model) renderNotes(s Styles) string {
	if len(m.notes) == 0 {
		return s.FaintText.Render("No notes yet. Press a to add one.")
	}
	var b strings.Builder
	for i, note := range m.notes {
		line := "  " + note
		if i == m.selected {
			line = s.Selected.Render("› " + note)
		} else {
			line = s.Text.Render(line)
		}
		b.WriteString(line)
		if i < len(m.notes)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
