// Package config loads curtain's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/curtain/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are missing or blank, keep the defaults
//
// # TOML Format
//
//	log_file = "~/.local/state/curtain/curtain.log"
//	log_level = "info"          # any zerolog level name
//	close_delay_ms = 150        # how long dialogs animate out before removal
//	reject_on_remove = false    # reject pending promises on Remove
//
// All fields are optional. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors, unknown log levels and negative close
// delays. A missing file is not an error.
package config
