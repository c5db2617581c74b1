// Package modal manages the visibility of modal dialogs in Bubble Tea
// programs from anywhere in the program, not only from the model that
// renders the dialog.
//
// # Overview
//
// Modal state lives in one store keyed by modal id. Code that wants a
// dialog calls Show with an id (or a component) and gets back a Promise
// that settles when the dialog resolves it. The dialog itself is built and
// rendered by the Provider, which wraps the program's root model.
//
//	Update()                    Provider                    Dialog
//	┌──────────────┐           ┌──────────────┐           ┌──────────────┐
//	│ mgr.Show()   │──action──→│ Store.Reduce │──state───→│ Mounted.Sync │
//	│      ↓       │           │      ↓       │           │      ↓       │
//	│ modal.Await  │           │ Placeholder  │           │ h.Resolve()  │
//	│      ↓       │←─promise──│   overlay    │←──────────│ h.Hide()     │
//	│ resultMsg    │           └──────────────┘           └──────────────┘
//	└──────────────┘
//
// # Core Types
//
//   - Manager: registry, mounted set, pending promises and the installed
//     dispatcher. One per program; pass it to whoever shows modals.
//   - Store / Reduce: the state table and its pure transition function.
//   - Provider: root tea.Model that owns the store and draws dialogs.
//   - Component: a BuildFunc plus identity; Show accepts it directly.
//   - Mounted: adapter that builds a component's Dialog while its id has a
//     store entry, promoting shows requested before the first mount.
//   - Handler: what a dialog uses to read its args and settle promises.
//
// # Usage
//
//	mgr := modal.NewManager(modal.WithLogger(log))
//	mgr.Register("confirm", confirmComponent, modal.Args{"title": "Sure?"})
//
//	program := tea.NewProgram(modal.NewProvider(mgr, rootModel))
//
//	// In rootModel.Update:
//	p, err := mgr.Show(modal.ID("confirm"), modal.Args{"message": "Delete note?"})
//	if err != nil {
//		return m, nil
//	}
//	return m, modal.Await(ctx, p, func(v any, err error) tea.Msg {
//		return confirmMsg{ok: v == true}
//	})
//
//	// In the confirm dialog:
//	h.Resolve(true)
//	h.Hide()
//
// # Lifecycle
//
// Show on an id whose dialog has never mounted records DelayVisible instead
// of Visible; the Mounted adapter shows again once mounted so the dialog
// never sees a visible entry before it exists. Hide keeps the entry so the
// dialog can play its close transition; the dialog then calls ResolveHide
// and Remove (see package props for the usual wiring). Entries marked
// KeepMounted are never removed by that wiring.
//
// # Errors
//
// Show, Hide, Remove and SetFlags return ErrDispatchNotInstalled until a
// Provider (or Install) provides a dispatcher. UseModal returns ErrNoModalID
// when there is no id to bind to. These are programming errors and are
// returned synchronously; the only asynchronous failure is a dialog calling
// Reject.
//
// Remove drops pending promises without settling them unless the manager
// was built WithRejectOnRemove. Await with a cancellable context when a
// Remove may race the dialog.
package modal
