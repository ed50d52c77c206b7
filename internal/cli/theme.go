package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoboard/internal/store/prefs"
	"github.com/idilsaglam/todoboard/internal/ui"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light|system|toggle]",
		Short: "Show or change the saved theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Mode)
				return nil
			}

			var mode ui.Mode
			if strings.EqualFold(strings.TrimSpace(args[0]), "toggle") {
				mode = ui.Toggle()
			} else {
				m, err := ui.ParseMode(args[0])
				if err != nil {
					return usageError{err}
				}
				mode = m
				ui.SetTheme(mode)
			}
			if err := prefs.SaveTheme(string(mode)); err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "theme: "+string(mode))
			return nil
		},
	}
}
