package modal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// StateChangedMsg is delivered to the Provider, and forwarded to its child,
// after a transition made outside the Update loop (for example from a
// command goroutine).
type StateChangedMsg struct {
	State State
}

// Provider is the root tea.Model of a program that uses modals. It owns the
// store, installs the manager's dispatcher, renders the child model and
// composites every placeholder dialog on top of it.
type Provider struct {
	mgr   *Manager
	child tea.Model
	ctx   context.Context

	store       *Store
	dispatch    DispatchFunc
	state       StateFunc
	updates     <-chan State
	unsubscribe func()
	token       uint64

	placeholder *Placeholder
	width       int
	height      int
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithExternalStore makes the provider install a host-owned store instead
// of creating its own. The host is responsible for redrawing on change.
// Both funcs are required; if either is nil the option is ignored and the
// provider keeps its own store.
func WithExternalStore(dispatch DispatchFunc, state StateFunc) ProviderOption {
	return func(p *Provider) {
		p.dispatch = dispatch
		p.state = state
	}
}

// WithContext sets the parent context handed to dialog builders.
func WithContext(ctx context.Context) ProviderOption {
	return func(p *Provider) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewProvider wraps child and installs a dispatcher into mgr. Until Close is
// called, imperative calls on mgr go through this provider's store.
func NewProvider(mgr *Manager, child tea.Model, opts ...ProviderOption) *Provider {
	p := &Provider{
		mgr:   mgr,
		child: child,
		ctx:   context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if (p.dispatch == nil) != (p.state == nil) {
		mgr.log.Error().Msg("external store needs both dispatch and state; using a provider-owned store")
		p.dispatch, p.state = nil, nil
	}
	if p.dispatch == nil {
		p.store = NewStore()
		p.dispatch = p.store.Dispatch
		p.state = p.store.Snapshot
		p.updates, p.unsubscribe = p.store.Subscribe()
	}
	p.token = mgr.install(p.dispatch, p.state)

	p.placeholder = NewPlaceholder(p.ctx, mgr)
	return p
}

// Store returns the provider-owned store, or nil with an external store.
func (p *Provider) Store() *Store {
	return p.store
}

// Child returns the wrapped model.
func (p *Provider) Child() tea.Model {
	return p.child
}

// Placeholder returns the placeholder rendering registered modals.
func (p *Provider) Placeholder() *Placeholder {
	return p.placeholder
}

// Close uninstalls the dispatcher, unless a newer provider has installed
// its own since, and stops publishing state changes.
func (p *Provider) Close() {
	p.mgr.uninstallIf(p.token)
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (p *Provider) Init() tea.Cmd {
	var cmds []tea.Cmd
	if p.child != nil {
		cmds = append(cmds, p.child.Init())
	}
	cmds = append(cmds, p.listen(), p.sync())
	return tea.Batch(cmds...)
}

// Update implements tea.Model. While a placeholder dialog is visible it
// receives all key input; other messages reach the child and every dialog.
func (p *Provider) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case StateChangedMsg:
		cmds = append(cmds, p.listen())

	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.placeholder.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if top := p.placeholder.Top(); top != nil {
			cmd, err := top.Update(msg)
			p.logErr(err, top.ID())
			return p, tea.Batch(cmd, p.sync())
		}
	}

	if p.child != nil {
		var cmd tea.Cmd
		p.child, cmd = p.child.Update(msg)
		cmds = append(cmds, cmd)
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		cmd, err := p.placeholder.Update(msg)
		p.logErr(err, "")
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, p.sync())
	return p, tea.Batch(cmds...)
}

// View implements tea.Model.
func (p *Provider) View() string {
	var view string
	if p.child != nil {
		view = p.child.View()
	}
	for _, fg := range p.placeholder.Views() {
		view = overlay.Composite(fg, view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

func (p *Provider) sync() tea.Cmd {
	cmd, err := p.placeholder.Sync()
	p.logErr(err, "")
	return cmd
}

func (p *Provider) listen() tea.Cmd {
	ch := p.updates
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return StateChangedMsg{State: state}
	}
}

func (p *Provider) logErr(err error, id string) {
	if err == nil {
		return
	}
	ev := p.mgr.log.Error().Err(err)
	if id != "" {
		ev = ev.Str("modal_id", id)
	}
	ev.Msg("modal update failed")
}
