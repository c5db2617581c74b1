package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/curtain/internal/config"
	"github.com/five82/curtain/internal/logging"
	"github.com/five82/curtain/internal/prefs"
	"github.com/five82/curtain/internal/ui"
	"github.com/five82/curtain/pkg/modal"
)

// Options configure the curtain application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/curtain/prefs.toml
	LogLevel   string // overrides the configured level when set
}

// Run boots the notes board until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	userPrefs := loadPrefs(opts.PrefsPath, logger)

	sess, err := compose(ctx, cfg, userPrefs, opts.PrefsPath, logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	logger.Info().
		Str("theme", userPrefs.Theme).
		Dur("close_delay", cfg.CloseDelay).
		Bool("reject_on_remove", cfg.RejectOnRemove).
		Msg("starting curtain")

	program := tea.NewProgram(sess.provider, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info().Msg("curtain stopped")
	return nil
}

// loadPrefs returns the saved preferences. A broken prefs file is logged
// and the defaults are used.
func loadPrefs(path string, logger zerolog.Logger) prefs.Prefs {
	p, err := prefs.Load(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("prefs unreadable, using defaults")
	}
	return p
}

// session is one wired board: the modal manager, the board and the
// provider rendering both.
type session struct {
	mgr      *modal.Manager
	board    ui.Model
	provider *modal.Provider
}

// Close uninstalls the provider and releases the board's dialogs.
func (s *session) Close() {
	s.provider.Close()
	s.board.Close()
}

// compose wires the modal manager, the board and the provider.
func compose(ctx context.Context, cfg config.Config, userPrefs prefs.Prefs, prefsPath string, logger zerolog.Logger) (*session, error) {
	mgrOpts := []modal.Option{
		modal.WithLogger(logger.With().Str("component", "modal").Logger()),
	}
	if cfg.RejectOnRemove {
		mgrOpts = append(mgrOpts, modal.WithRejectOnRemove())
	}
	mgr := modal.NewManager(mgrOpts...)

	board, err := ui.New(ui.Options{
		Context:    ctx,
		Manager:    mgr,
		Logger:     logger.With().Str("component", "ui").Logger(),
		Prefs:      userPrefs,
		PrefsPath:  prefsPath,
		LogFile:    cfg.LogFile,
		CloseDelay: cfg.CloseDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("init board: %w", err)
	}

	return &session{
		mgr:      mgr,
		board:    board,
		provider: modal.NewProvider(mgr, board, modal.WithContext(ctx)),
	}, nil
}
