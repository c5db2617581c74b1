package modal

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager is the shared context for one modal tree: the registry, the set of
// mounted dialogs, pending promises and the installed dispatcher. A zero
// Manager is not usable; build one with NewManager.
type Manager struct {
	mu sync.Mutex

	log            zerolog.Logger
	rejectOnRemove bool
	newID          func() string

	dispatch  DispatchFunc
	state     StateFunc
	installed bool
	installs  uint64 // bumped by every install; identifies the current one

	registry     map[string]Registration
	mounted      map[string]struct{}
	showPending  map[string]*Promise
	hidePending  map[string]*Promise
	componentIDs map[*Component]string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithRejectOnRemove makes Remove reject pending promises with ErrRemoved
// instead of abandoning them.
func WithRejectOnRemove() Option {
	return func(m *Manager) {
		m.rejectOnRemove = true
	}
}

// WithIDGenerator overrides how ids are generated for component refs and
// Hold instances.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewManager returns a manager with empty registries and no dispatcher.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		log:          zerolog.Nop(),
		newID:        func() string { return "modal-" + uuid.NewString() },
		dispatch:     notInstalled,
		state:        emptyState,
		registry:     make(map[string]Registration),
		mounted:      make(map[string]struct{}),
		showPending:  make(map[string]*Promise),
		hidePending:  make(map[string]*Promise),
		componentIDs: make(map[*Component]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func notInstalled(Action) error { return ErrDispatchNotInstalled }

func emptyState() State { return nil }

// Install routes all imperative calls through dispatch and reads state from
// state. Providers call it; hosts with their own store may call it directly.
func (m *Manager) Install(dispatch DispatchFunc, state StateFunc) {
	m.install(dispatch, state)
}

func (m *Manager) install(dispatch DispatchFunc, state StateFunc) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.installs++
	m.installed = dispatch != nil
	if dispatch == nil {
		dispatch = notInstalled
	}
	if state == nil {
		state = emptyState
	}
	m.dispatch = dispatch
	m.state = state
	return m.installs
}

// Uninstall restores the not-installed dispatcher.
func (m *Manager) Uninstall() {
	m.Install(nil, nil)
}

// uninstallIf uninstalls only if token still names the current install, so
// a stale provider cannot detach a newer one.
func (m *Manager) uninstallIf(token uint64) bool {
	m.mu.Lock()
	current := m.installs == token
	m.mu.Unlock()
	if !current {
		return false
	}
	m.install(nil, nil)
	return true
}

// Installed reports whether a dispatcher is installed.
func (m *Manager) Installed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.installed
}

// State returns the installed store's current snapshot, or nil.
func (m *Manager) State() State {
	m.mu.Lock()
	state := m.state
	m.mu.Unlock()
	return state()
}

// ResolveID returns the modal id ref refers to. A component is assigned a
// generated id on first use and keeps it for the manager's lifetime.
func (m *Manager) ResolveID(ref Ref) string {
	if ref == nil {
		return ""
	}
	return ref.modalID(m)
}

func (m *Manager) componentID(c *Component) string {
	if c == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.componentIDs[c]
	if !ok {
		id = m.newID()
		m.componentIDs[c] = id
	}
	return id
}

// Show makes the modal visible with args and returns the pending show
// promise. While that promise is unsettled, further Show calls for the same
// id return it again and only replace the stored args. Unregistered
// component refs are registered without defaults.
func (m *Manager) Show(ref Ref, args Args) (*Promise, error) {
	id := m.ResolveID(ref)
	if id == "" {
		return nil, ErrNoModalID
	}
	if c, ok := ref.(*Component); ok {
		if _, registered := m.Component(id); !registered {
			m.Register(id, c, nil)
		}
	}

	if err := m.send(ShowAction(id, args, m.IsMounted(id))); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.showPending[id]
	if !ok {
		p = newPromise()
		m.showPending[id] = p
	}
	return p, nil
}

// Hide marks the modal hidden and returns the pending hide promise, settled
// by Handler.ResolveHide once the dialog finishes closing. Any pending show
// promise is dropped without settling.
func (m *Manager) Hide(ref Ref) (*Promise, error) {
	id := m.ResolveID(ref)
	if id == "" {
		return nil, ErrNoModalID
	}
	if err := m.send(HideAction(id)); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.showPending, id)
	p, ok := m.hidePending[id]
	if !ok {
		p = newPromise()
		m.hidePending[id] = p
	}
	return p, nil
}

// Remove deletes the modal's store entry. Pending show and hide promises are
// dropped without settling unless the manager rejects on remove.
func (m *Manager) Remove(ref Ref) error {
	id := m.ResolveID(ref)
	if id == "" {
		return ErrNoModalID
	}
	if err := m.send(RemoveAction(id)); err != nil {
		return err
	}

	m.mu.Lock()
	show, hide := m.showPending[id], m.hidePending[id]
	delete(m.showPending, id)
	delete(m.hidePending, id)
	reject := m.rejectOnRemove
	m.mu.Unlock()

	if reject {
		for _, p := range []*Promise{show, hide} {
			if p != nil {
				p.reject(ErrRemoved)
			}
		}
	}
	return nil
}

// SetFlags merges flags into the modal's store entry.
func (m *Manager) SetFlags(id string, flags Flags) error {
	if id == "" {
		return ErrNoModalID
	}
	return m.send(SetFlagsAction(id, flags))
}

func (m *Manager) send(action Action) error {
	m.mu.Lock()
	dispatch := m.dispatch
	m.mu.Unlock()

	if err := dispatch(action); err != nil {
		return err
	}
	m.log.Debug().
		Str("modal_id", action.ID).
		Stringer("action", action.Kind).
		Msg("modal action dispatched")
	return nil
}

// settleShow resolves or rejects the pending show promise for id.
func (m *Manager) settleShow(id string, value any, err error, rejected bool) {
	m.mu.Lock()
	p := m.showPending[id]
	delete(m.showPending, id)
	m.mu.Unlock()

	switch {
	case p == nil:
	case rejected:
		p.reject(err)
	default:
		p.resolve(value)
	}
}

// settleHide resolves the pending hide promise for id.
func (m *Manager) settleHide(id string, value any) {
	m.mu.Lock()
	p := m.hidePending[id]
	delete(m.hidePending, id)
	m.mu.Unlock()

	if p != nil {
		p.resolve(value)
	}
}

// IsMounted reports whether a dialog for id has completed its first mount.
func (m *Manager) IsMounted(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.mounted[id]
	return ok
}

func (m *Manager) markMounted(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mounted[id] = struct{}{}
}

func (m *Manager) unmarkMounted(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.mounted, id)
}
