package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config holds the settings curtain reads at startup.
type Config struct {
	LogFile        string
	LogLevel       zerolog.Level
	CloseDelay     time.Duration
	RejectOnRemove bool
}

const (
	defaultConfigPath   = "~/.config/curtain/config.toml"
	defaultLogFile      = "~/.local/state/curtain/curtain.log"
	defaultLogLevel     = zerolog.InfoLevel
	defaultCloseDelayMS = 150
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:    mustExpand(defaultLogFile),
		LogLevel:   defaultLogLevel,
		CloseDelay: defaultCloseDelayMS * time.Millisecond,
	}
}

// Load locates and parses the curtain config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		CloseDelayMS   *int   `toml:"close_delay_ms"`
		RejectOnRemove bool   `toml:"reject_on_remove"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	if raw.CloseDelayMS != nil {
		if *raw.CloseDelayMS < 0 {
			return Config{}, fmt.Errorf("close_delay_ms must not be negative, got %d", *raw.CloseDelayMS)
		}
		cfg.CloseDelay = time.Duration(*raw.CloseDelayMS) * time.Millisecond
	}

	cfg.RejectOnRemove = raw.RejectOnRemove
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
