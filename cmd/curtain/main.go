package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/curtain/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "curtain: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(context.Context, app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "curtain",
		Short: "A notes board driven entirely by modal dialogs",
		Long: `curtain - a small notes board for the terminal.

Every interaction opens a dialog: add, rename and delete notes, pick a theme,
read the log or show the key bindings. Settings are read from
~/.config/curtain/config.toml and preferences are saved to
~/.config/curtain/prefs.toml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	root.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (optional)")
	root.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (optional)")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the curtain version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "curtain %s\n", version)
}
