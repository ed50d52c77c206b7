package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/api"
	"github.com/idilsaglam/todoboard/internal/config"
	"github.com/idilsaglam/todoboard/internal/controller"
	"github.com/idilsaglam/todoboard/internal/store/prefs"
	"github.com/idilsaglam/todoboard/internal/tui"
	"github.com/idilsaglam/todoboard/internal/ui"
)

const debugLogFile = "todo-debug.log"

// App carries root flags to every subcommand.
type App struct {
	APIURL string
	Theme  string
	Debug  bool

	logFile *os.File
}

// NewRootCmd builds the todo command tree.
func NewRootCmd() *cobra.Command { return newRootCmd(&App{}) }

func newRootCmd(app *App) *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{APIURL: api.DefaultBaseURL}
	}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Manage todos on a remote todo server (TUI + scriptable commands)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add "Buy milk" --user 1
  todo ls --filter uncompleted --page 2
  todo done 2
  todo rm 3
`),
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		mode, err := ui.ParseMode(app.Theme)
		if err != nil {
			return usageError{err}
		}
		ui.ApplyColorProfile(cmd.Name() == "todo")
		ui.SetTheme(mode)
		return app.setupLogging()
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", cfg.APIURL, "Base URL of the todo server (env "+config.EnvAPIURL+")")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", cfg.Theme, "Theme: dark|light|system (env "+config.EnvTheme+")")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", cfg.Debug, "Write a debug log to "+debugLogFile+" (env "+config.EnvDebug+")")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newThemeCmd(app))

	return cmd
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, &App{}, args, stdout, stderr)
}

func execute(ctx context.Context, app *App, args []string, stdout, stderr io.Writer) int {
	// Post-run hooks are skipped when RunE fails, so the log is closed here.
	defer app.closeLog()

	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, cmd.UsageString())
		return 2
	}
	return 1
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctl := controller.New(app.client(), nil)
	return tui.Run(cmd.Context(), ctl, tui.Options{
		SaveTheme: func(m ui.Mode) error { return prefs.SaveTheme(string(m)) },
	})
}

func (app *App) closeLog() {
	if app.logFile == nil {
		return
	}
	log.SetOutput(io.Discard)
	if err := app.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
	}
	app.logFile = nil
}

func (app *App) client() *api.Client { return api.New(app.APIURL) }

// setupLogging sends the standard logger to a file in debug mode and
// discards it otherwise; the TUI owns the terminal.
func (app *App) setupLogging() error {
	if !app.Debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(debugLogFile, "todo")
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	app.logFile = f
	log.Printf("api base url: %s", app.APIURL)
	return nil
}
