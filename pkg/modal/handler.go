package modal

import "context"

// Handler is the view of one modal used by the dialog that renders it:
// live reads of its store entry plus actions bound to its id.
type Handler struct {
	mgr *Manager
	id  string
}

// UseModal returns the handler for ref. A nil ref resolves to the ambient
// id in ctx. A component ref that is not registered yet is registered with
// args as its defaults.
func (m *Manager) UseModal(ctx context.Context, ref Ref, args Args) (*Handler, error) {
	var id string
	if ref == nil {
		id, _ = IDFromContext(ctx)
	} else {
		id = m.ResolveID(ref)
	}
	if id == "" {
		return nil, ErrNoModalID
	}

	if c, ok := ref.(*Component); ok {
		if _, registered := m.Component(id); !registered {
			m.Register(id, c, args)
		}
	}
	return m.handler(id), nil
}

func (m *Manager) handler(id string) *Handler {
	return &Handler{mgr: m, id: id}
}

// ID returns the modal id.
func (h *Handler) ID() string {
	return h.id
}

func (h *Handler) entry() ModalState {
	entry, _ := h.mgr.State().Lookup(h.id)
	return entry
}

// Args returns the args of the latest Show.
func (h *Handler) Args() Args {
	return h.entry().Args
}

// Visible reports whether the modal should currently be shown.
func (h *Handler) Visible() bool {
	return h.entry().Visible
}

// KeepMounted reports whether the entry survives its close transition.
func (h *Handler) KeepMounted() bool {
	return h.entry().KeepMounted
}

// Show shows this modal again with args.
func (h *Handler) Show(args Args) (*Promise, error) {
	return h.mgr.Show(ID(h.id), args)
}

// Hide hides this modal.
func (h *Handler) Hide() (*Promise, error) {
	return h.mgr.Hide(ID(h.id))
}

// Remove deletes this modal's store entry.
func (h *Handler) Remove() error {
	return h.mgr.Remove(ID(h.id))
}

// Resolve settles the pending show promise with value.
func (h *Handler) Resolve(value any) {
	h.mgr.settleShow(h.id, value, nil, false)
}

// Reject settles the pending show promise with err, or ErrRejected when err
// is nil.
func (h *Handler) Reject(err error) {
	h.mgr.settleShow(h.id, nil, err, true)
}

// ResolveHide settles the pending hide promise with value. Dialogs call it
// once their close transition has finished.
func (h *Handler) ResolveHide(value any) {
	h.mgr.settleHide(h.id, value)
}
