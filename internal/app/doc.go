// Package app is the composition root of curtain.
//
// # Overview
//
// Run loads the configuration, opens the log file, reads the user's
// preferences and wires the modal manager, the notes board and the modal
// provider before handing the provider to Bubble Tea.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()      Read config.toml
//	       ├─────> logging.Open()     JSON log file (zerolog)
//	       ├─────> prefs.Load()       Theme and inspector toggle
//	       ├─────> compose()
//	       │         ├─> modal.NewManager(WithLogger, [WithRejectOnRemove])
//	       │         ├─> ui.New()       Registers and mounts the dialogs
//	       │         └─> modal.NewProvider()
//	       └─────> tea.Program.Run()  Blocks until quit or ctx is done
//
// # Error Handling
//
// Run returns an error when the config cannot be parsed, the --log-level
// override is unknown, the log file cannot be opened or the program fails.
// Missing preferences fall back to defaults. Cancelling ctx (SIGINT or
// SIGTERM in cmd/curtain) stops the program without an error.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{LogLevel: "debug"}); err != nil {
//		log.Fatalf("curtain failed: %v", err)
//	}
package app
