package cli

import (
	"github.com/spf13/cobra"

	"github.com/mikerosasdev/crud-alumnos/internal/bootstrap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command. Without a subcommand it serves the panel.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	serveCmd := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:          "crud-alumnos",
		Short:        "CRUD Alumnos - student registry panel",
		Long:         "Web panel and JSON API to manage alumnos and their phone numbers.",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML config file")

	cmd.AddCommand(serveCmd)
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}
