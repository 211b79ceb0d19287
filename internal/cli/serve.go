package cli

import (
	"github.com/spf13/cobra"

	"github.com/mikerosasdev/crud-alumnos/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Run the HTTP server",
		Long:         "Connect to PostgreSQL, apply pending migrations, optionally seed, and serve the panel and API until SIGINT or SIGTERM.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(cmd.Context(), rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
}
