package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forestsim/internal/forest"
	"forestsim/internal/logging"
	"forestsim/internal/shell"
	"forestsim/internal/store"
)

func runShell(cmd *cobra.Command, ctx *commandContext, names []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	session, err := shell.NewSession(shell.Options{
		Names:     names,
		CSVDir:    cfg.Paths.CSVDir,
		Generator: forest.NewGenerator(simulationRanges(cfg)),
		Store:     st,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	return session.Run(contextOf(cmd))
}
