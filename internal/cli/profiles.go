package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/neelchauhan/torlink/internal/profile"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func newProfilesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect link profiles",
		Long:  `List, show and validate the per-package link profiles.`,
	}
	cmd.AddCommand(
		newProfilesListCmd(a),
		newProfilesShowCmd(a),
		newProfilesValidateCmd(a),
	)
	return cmd
}

func newProfilesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(a.cfg.Options().Profiles)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tFLAGS\tPATHS\tCOMPONENTS\tDEPENDENCIES")
			for _, p := range reg.Profiles() {
				c := p.Count()
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n", p.Name, p.Source,
					c[profile.OpFlags], c[profile.OpRelPath]+c[profile.OpPath],
					c[profile.OpComponent], c[profile.OpDependency])
			}
			return w.Flush()
		},
	}
}

func newProfilesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a profile as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(a.cfg.Options().Profiles)
			if err != nil {
				return err
			}
			p, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(map[string]*profile.Profile{p.Name: p})
			if err != nil {
				return fmt.Errorf("marshaling profile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", p.Source, out)
			return nil
		},
	}
}

func newProfilesValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a profile table against the schema",
		Long: `Validate a profile table file without merging it.

Example:
  torlink profiles validate ./link-profiles.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := profile.ParseTableFile(a.fs, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				printer.Sprintf("%s: valid (%d profiles: %s)", args[0], len(table.Profiles), strings.Join(table.Names(), ", ")))
			return nil
		},
	}
}
