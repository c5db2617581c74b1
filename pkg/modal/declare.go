package modal

import (
	"context"
	"fmt"
	"sync"
)

// Declaration keeps a component registered under an id until closed.
type Declaration struct {
	mgr  *Manager
	id   string
	once sync.Once
}

// Declare registers c under id without defaults. Close the declaration when
// the owner goes away to unregister it.
func (m *Manager) Declare(id string, c *Component) *Declaration {
	m.Register(id, c, nil)
	return &Declaration{mgr: m, id: id}
}

// ID returns the declared id.
func (d *Declaration) ID() string {
	return d.id
}

// Close unregisters the id. Later calls do nothing.
func (d *Declaration) Close() {
	d.once.Do(func() {
		d.mgr.Unregister(d.id)
	})
}

// HolderHandle is filled in by Hold with Show and Hide bound to the held
// instance's private id.
type HolderHandle struct {
	mu  sync.Mutex
	mgr *Manager
	id  string
}

// ID returns the held instance's id, or "" before Hold.
func (h *HolderHandle) ID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id
}

// Show shows the held instance.
func (h *HolderHandle) Show(args Args) (*Promise, error) {
	mgr, id := h.bound()
	if mgr == nil {
		return nil, ErrNoModalID
	}
	return mgr.Show(ID(id), args)
}

// Hide hides the held instance.
func (h *HolderHandle) Hide() (*Promise, error) {
	mgr, id := h.bound()
	if mgr == nil {
		return nil, ErrNoModalID
	}
	return mgr.Hide(ID(id))
}

func (h *HolderHandle) bound() (*Manager, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mgr, h.id
}

// Hold mounts a private instance of ref under a generated id and binds
// handle to it, so one component can back several independent modals. ref
// is either a registered id or a component.
func (m *Manager) Hold(ctx context.Context, ref Ref, handle *HolderHandle, args Args) (*Mounted, error) {
	if handle == nil {
		return nil, ErrNoHandlerProvided
	}

	var comp *Component
	switch r := ref.(type) {
	case ID:
		comp, _ = m.Component(string(r))
	case *Component:
		comp = r
	}
	if comp == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoModalForID, m.ResolveID(ref))
	}

	id := m.newID()
	handle.mu.Lock()
	handle.mgr, handle.id = m, id
	handle.mu.Unlock()

	return m.Mount(ctx, comp, MountConfig{ID: id, Args: args}), nil
}
