// Package logtail reads the tail of curtain's log file and renders its
// JSON events for display in the log viewer dialog.
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries, so memory stays
// O(maxLines) regardless of file size, and returns lines oldest first. A
// non-positive maxLines returns the whole file.
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.FormatLines(lines) {
//		fmt.Println(line)
//	}
//
// # Formatting
//
// FormatLine passes each JSON event through zerolog's ConsoleWriter with
// colors disabled, giving "15:04:05 INF message key=value". Lines that are
// not JSON objects are returned unchanged.
//
// # Error Handling
//
// Read returns nil, nil for files that do not exist yet; the log file is
// created lazily on the first event. Other errors are wrapped.
package logtail
