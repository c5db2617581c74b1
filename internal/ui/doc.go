// Package ui implements curtain's notes board, a Bubble Tea program whose
// dialogs are all driven through pkg/modal.
//
// # Architecture Overview
//
// The board Model is the child of a modal.Provider. The provider owns the
// modal store and composites every registered dialog over the board; the
// board opens dialogs imperatively and receives the answers as messages
// through modal.Await.
//
//	modal.Provider
//	  ├── Model (board)
//	  │     ├── help drawer   (host-placed Mounted, KeepMounted)
//	  │     └── rename prompt (Hold instance of the prompt component)
//	  └── Placeholder
//	        ├── prompt        (component ref, registered on first Show)
//	        ├── confirm-delete (registered id with default args)
//	        ├── theme-picker  (Declare)
//	        └── logs          (registered id)
//
// # Package Structure
//
//   - board.go: the Model, key handling and answer messages
//   - dialog.go: ids, shared builder deps, the close transition and chrome
//   - confirm.go, prompt.go, picker.go, logs.go, help.go: the dialogs
//   - inspector.go: the store inspector side panel
//   - keys.go: board and dialog key maps (bubbles/key)
//   - theme.go: themes, styles and the shared palette
//
// # Dialog Lifecycle
//
// Every dialog follows the same close sequence, expressed through the
// adapters in pkg/modal/props:
//
//  1. A key resolves (or rejects) the show promise and calls the adapter's
//     close callback, which hides the modal.
//  2. The dialog keeps rendering with a dimmed border and schedules a
//     closeDoneMsg after the configured close delay.
//  3. On closeDoneMsg it runs the post-close hook, which settles the hide
//     promise and removes the store entry unless the modal is kept mounted.
//
// A modal shown again during the delay stays open.
//
// # Key Routing
//
// While a placeholder dialog is visible the provider sends it every key.
// Otherwise keys reach the board, which hands them to the rename prompt or
// the help drawer when either is visible. ctrl+c quits from anywhere.
//
// # Preferences
//
// The theme (t to pick, T to cycle) and the inspector toggle (s) are saved
// to prefs.toml as soon as they change. Save failures are logged and do not
// interrupt the session.
package ui
