package modal

import (
	"context"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// MountConfig configures a Mounted adapter.
type MountConfig struct {
	// ID is the modal id the adapter follows. Empty uses the component's
	// generated id.
	ID string

	// DefaultVisible shows the modal as soon as the adapter mounts.
	DefaultVisible bool

	// KeepMounted keeps the store entry after the dialog finishes closing.
	KeepMounted bool

	// Args are merged under the args of each Show.
	Args Args
}

// Mounted binds a component to a modal id. It builds the dialog while the
// store holds an entry for the id, whether visible or not, so a hidden
// dialog can finish its close transition before Remove drops it.
//
// The owner drives the lifecycle: Init on first mount, Update for every
// message, View when rendering and Unmount when the adapter is discarded.
type Mounted struct {
	mgr     *Manager
	comp    *Component
	cfg     MountConfig
	ctx     context.Context
	handler *Handler

	dialog  Dialog
	args    Args
	mounted bool
	width   int
	height  int
}

// Mount returns an adapter for c. ctx is the parent context handed to the
// component's BuildFunc, extended with the modal id.
func (m *Manager) Mount(ctx context.Context, c *Component, cfg MountConfig) *Mounted {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.ID == "" {
		cfg.ID = m.ResolveID(c)
	}
	return &Mounted{
		mgr:     m,
		comp:    c,
		cfg:     cfg,
		ctx:     WithID(ctx, cfg.ID),
		handler: m.handler(cfg.ID),
	}
}

// ID returns the modal id.
func (w *Mounted) ID() string {
	return w.cfg.ID
}

// Handler returns the handler bound to the adapter's id.
func (w *Mounted) Handler() *Handler {
	return w.handler
}

// Dialog returns the current dialog, or nil when the store has no entry.
func (w *Mounted) Dialog() Dialog {
	return w.dialog
}

// Present reports whether the store holds an entry for the id.
func (w *Mounted) Present() bool {
	_, ok := w.mgr.State().Lookup(w.cfg.ID)
	return ok
}

// Visible reports whether the modal is visible.
func (w *Mounted) Visible() bool {
	return w.handler.Visible()
}

// Init performs the first mount: shows the modal when DefaultVisible is set,
// records the id as mounted and persists KeepMounted. Calling it again only
// syncs.
func (w *Mounted) Init() (tea.Cmd, error) {
	if w.mounted {
		return w.Sync()
	}
	if w.cfg.DefaultVisible {
		if _, err := w.mgr.Show(ID(w.cfg.ID), nil); err != nil {
			return nil, err
		}
	}
	w.mgr.markMounted(w.cfg.ID)
	w.mounted = true

	if w.cfg.KeepMounted {
		if err := w.mgr.SetFlags(w.cfg.ID, Flags{KeepMounted: Bool(true)}); err != nil {
			return nil, err
		}
	}
	return w.Sync()
}

// Unmount clears the mounted record and drops the dialog.
func (w *Mounted) Unmount() {
	if !w.mounted {
		return
	}
	w.mgr.unmarkMounted(w.cfg.ID)
	w.mounted = false
	w.dialog = nil
	w.args = nil
}

// SetKeepMounted updates the KeepMounted setting and persists it to the
// store when set.
func (w *Mounted) SetKeepMounted(keep bool) error {
	w.cfg.KeepMounted = keep
	if !keep || !w.mounted {
		return nil
	}
	return w.mgr.SetFlags(w.cfg.ID, Flags{KeepMounted: Bool(true)})
}

// SetDefaults replaces the args merged under each Show.
func (w *Mounted) SetDefaults(args Args) {
	w.cfg.Args = args
}

// SetSize records the terminal size and passes it to the dialog.
func (w *Mounted) SetSize(width, height int) {
	w.width, w.height = width, height
	if s, ok := w.dialog.(Sizer); ok {
		s.SetSize(width, height)
	}
}

// Sync reconciles the adapter with the store. A pending DelayVisible is
// promoted by showing again with the current args, the dialog is built when
// an entry appears and dropped when it disappears, and changed args are
// handed to dialogs that implement ArgsSetter.
func (w *Mounted) Sync() (tea.Cmd, error) {
	if !w.mounted {
		return nil, nil
	}

	entry, ok := w.mgr.State().Lookup(w.cfg.ID)
	if ok && entry.DelayVisible {
		if _, err := w.mgr.Show(ID(w.cfg.ID), entry.Args); err != nil {
			return nil, err
		}
		entry, ok = w.mgr.State().Lookup(w.cfg.ID)
	}
	if !ok {
		w.dialog = nil
		w.args = nil
		return nil, nil
	}

	args := mergeArgs(w.cfg.Args, entry.Args)
	if w.dialog == nil {
		return w.build(args), nil
	}
	if !reflect.DeepEqual(args, w.args) {
		w.args = args
		if s, ok := w.dialog.(ArgsSetter); ok {
			s.SetArgs(args)
		}
	}
	return nil, nil
}

func (w *Mounted) build(args Args) tea.Cmd {
	if w.comp == nil || w.comp.build == nil {
		return nil
	}
	w.dialog = w.comp.build(w.ctx, w.handler, args)
	w.args = args
	if w.dialog == nil {
		return nil
	}
	if s, ok := w.dialog.(Sizer); ok && w.width > 0 {
		s.SetSize(w.width, w.height)
	}
	if i, ok := w.dialog.(Initializer); ok {
		return i.Init()
	}
	return nil
}

// Update syncs with the store and forwards msg to the dialog. Key messages
// only reach a visible dialog.
func (w *Mounted) Update(msg tea.Msg) (tea.Cmd, error) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		w.SetSize(size.Width, size.Height)
	}

	before, err := w.Sync()
	if err != nil || w.dialog == nil {
		return before, err
	}
	if _, isKey := msg.(tea.KeyMsg); isKey && !w.Visible() {
		return before, nil
	}

	next, cmd := w.dialog.Update(msg)
	if next != nil {
		w.dialog = next
	}

	after, err := w.Sync()
	return tea.Batch(before, cmd, after), err
}

// View renders the dialog, or nothing while the store has no entry.
func (w *Mounted) View() string {
	if w.dialog == nil || !w.Present() {
		return ""
	}
	return w.dialog.View()
}
