package cli

import (
	"fmt"
	"os"

	"github.com/neelchauhan/torlink/internal/branding"
	"github.com/neelchauhan/torlink/internal/config"
	"github.com/neelchauhan/torlink/internal/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	fs        afero.Fs
	configDir string

	version string
	commit  string
	date    string

	cfg    *config.Config
	logger *logrus.Logger
}

func newApp(version, commit, date string) *app {
	return &app{
		fs:      afero.NewOsFs(),
		version: version,
		commit:  commit,
		date:    date,
		logger:  log.NewNull(),
	}
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"out-dir":    config.KeyOutDir,
	"package":    config.KeyPackage,
	"profiles":   config.KeyProfiles,
	"format":     config.KeyFormat,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` reads the config.rust file written by configure and prints the
link directives a package needs. With no subcommand it runs "emit", so the
binary can be used directly as a cargo build script.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(a, cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("out-dir", "", "Directory to start the config.rust search from (default $OUT_DIR)")
	pf.String("package", "", "Package to configure (default $CARGO_PKG_NAME)")
	pf.String("profiles", "", "Extra profile table to merge over the built-in one")
	pf.String("format", "", "Output format: cargo, ldflags, json (default cargo)")
	pf.String("log-level", "", "Log level for stderr diagnostics (default warn)")
	pf.String("log-format", "", "Log format: text or json (default text)")

	root.AddCommand(
		newEmitCmd(a),
		newSettingsCmd(a),
		newProfilesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration, binds flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.New(a.fs, a.configDir)
	if err := a.cfg.Load(); err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		if err := a.cfg.BindFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}

	opts := a.cfg.Options()
	logger, err := log.New(cmd.ErrOrStderr(), opts.LogLevel, opts.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	root := newRootCmd(newApp(version, commit, date))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", branding.CLIName(), err)
		return err
	}
	return nil
}
