package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"counterlab/internal/config"
	"counterlab/internal/logging"
	"counterlab/internal/title"
	"counterlab/internal/trace"
	"counterlab/internal/ui"
)

// options are the persistent flags.
type options struct {
	configPath string
	verbose    bool
	noTitle    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "counterlab",
		Short: "Two counters, one state machine",
		Long: `counterlab runs an object-style and a hook-style counter side by side.
Both drive the same counter and show the current count in the terminal title.

Press SPC for commands, SPC c for the comparison page, q to quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every intent at debug level")
	root.Flags().BoolVar(&opts.noTitle, "no-title", false, "Leave the terminal and tmux titles alone")

	root.AddCommand(newCompareCmd())
	return root
}

func runTUI(ctx context.Context, opts *options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	provider, err := trace.Setup(ctx, cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown failed", zap.Error(err))
		}
	}()

	sink, window := titleSink(cfg.Title, opts.noTitle, out)
	app := ui.NewAppModel(ui.Deps{
		Title:        sink,
		DefaultTitle: cfg.Title.Default,
		Logger:       logger,
		Tracer:       provider.Tracer(),
		Window:       window,
	})
	// Runs after the program restores the screen, so the default title sticks.
	defer app.Close()

	logger.Info("starting", zap.String("config", opts.configPath))
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// titleSink picks where the count is shown. The terminal title goes through
// the returned window sink, which is nil when the terminal title is off.
func titleSink(cfg config.TitleConfig, disabled bool, out io.Writer) (title.Sink, *ui.ProgramTitle) {
	if disabled {
		return title.Discard, nil
	}
	var (
		sinks  title.Multi
		window *ui.ProgramTitle
	)
	if cfg.Terminal {
		window = ui.NewProgramTitle(title.NewTerminal(out))
		sinks = append(sinks, window)
	}
	if cfg.Tmux && title.InTmux() {
		sinks = append(sinks, title.NewTmux())
	}
	if len(sinks) == 0 {
		return title.Discard, nil
	}
	return sinks, window
}

// stdoutWidth is $COLUMNS, or 0 for natural width.
func stdoutWidth() int {
	n, err := strconv.Atoi(os.Getenv("COLUMNS"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
