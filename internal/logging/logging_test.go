package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info event written at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"app":"curtain"`) {
		t.Fatalf("log output = %s, want warn event tagged with app", out)
	}
}

func TestOpen_CreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "curtain.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := Open(path, zerolog.InfoLevel)
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		logger.Info().Msg(msg)
		if err := closer.Close(); err != nil {
			t.Fatalf("Close returned error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("log has %d lines, want 2:\n%s", got, data)
	}
}

func TestOpen_FailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, _, err := Open(filepath.Join(blocker, "curtain.log"), zerolog.InfoLevel); err == nil {
		t.Fatalf("Open returned nil error, want error for a path under a file")
	}
}
