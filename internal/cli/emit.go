package cli

import (
	"github.com/neelchauhan/torlink/internal/directive"
	"github.com/neelchauhan/torlink/internal/dispatch"
	"github.com/neelchauhan/torlink/internal/profile"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func newEmitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "emit",
		Short: "Print link directives for a package",
		Long: `Find config.rust at or above --out-dir, apply the profile for --package and
print the resulting directives to stdout. Nothing is printed unless every step
succeeds.

Example:
  OUT_DIR=$PWD/target CARGO_PKG_NAME=crypto torlink emit
  torlink emit --out-dir build/src/rust --package crypto --format ldflags`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(a, cmd)
		},
	}
}

func runEmit(a *app, cmd *cobra.Command) error {
	opts := a.cfg.Options()

	format, err := directive.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	reg, err := a.registry(opts.Profiles)
	if err != nil {
		return err
	}

	d := &dispatch.Dispatcher{
		Fs:       a.fs,
		Registry: reg,
		Log:      a.logger,
		Version:  a.version,
	}
	res, err := d.Run(dispatch.Request{OutDir: opts.OutDir, Package: opts.Package})
	if err != nil {
		return err
	}

	if err := directive.Render(cmd.OutOrStdout(), res.Directives, format); err != nil {
		return err
	}

	a.logger.Info(printer.Sprintf("Emitted %d directives for package %s from %s",
		len(res.Directives), res.Profile.Name, res.SettingsPath))
	return nil
}

// registry returns the built-in profiles with extra merged over them.
func (a *app) registry(extra string) (*profile.Registry, error) {
	reg, err := profile.NewRegistry()
	if err != nil {
		return nil, err
	}
	if extra != "" {
		if err := reg.MergeFile(a.fs, extra); err != nil {
			return nil, err
		}
		a.logger.WithField("file", extra).Debug("Merged profile table")
	}
	return reg, nil
}
