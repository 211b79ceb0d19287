package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikerosasdev/crud-alumnos/internal/bootstrap"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Force bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the demo alumnos",
		Long: `Create the demo alumnos through the regular create logic.

Nothing is written when alumnos already exist unless --force is given.
Demo records whose phones or email are already registered are skipped.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "seed even when alumnos already exist")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath)
	if err != nil {
		return err
	}

	database, err := bootstrap.SetupDatabase(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		return err
	}

	created, err := bootstrap.SeedDefaultData(cmd.Context(), deps, opts.Force)
	fmt.Fprintf(cmd.OutOrStdout(), "%d alumnos created\n", created)
	return err
}
