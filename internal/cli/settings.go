package cli

import (
	"errors"
	"fmt"

	"github.com/neelchauhan/torlink/internal/settings"
	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "settings [key]",
		Short: "Show the settings read from config.rust",
		Long: `Locate config.rust from --out-dir and print its entries sorted by key, or the
value of a single key.

Example:
  torlink settings --out-dir build
  torlink settings BUILDDIR --out-dir build`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := a.cfg.Options().OutDir
			if outDir == "" {
				return errors.New("no output directory: set OUT_DIR or pass --out-dir")
			}

			s, err := settings.Load(a.fs, outDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				value, err := s.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil
			}

			fmt.Fprintf(out, "# %s\n", s.Path())
			for _, key := range s.Keys() {
				fmt.Fprintf(out, "%s=%s\n", key, s.MustGet(key))
			}
			return nil
		},
	}
}
