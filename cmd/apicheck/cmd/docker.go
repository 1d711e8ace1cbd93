package cmd

import (
	"github.com/andyle182810/apicheck/dockerwrap"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newExecutor(cmd *cobra.Command) *dockerwrap.Executor {
	exe := dockerwrap.NewExecutor()
	exe.Stdin = cmd.InOrStdin()
	exe.Stdout = cmd.OutOrStdout()
	exe.Stderr = cmd.ErrOrStderr()
	exe.Logger = log.Logger

	return exe
}

func newDockerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docker <docker args...>",
		Short: "Run docker, passing .env to \"docker run\" when present",
		Long: `Runs docker with the given arguments. When a .env file exists in the current
directory, --env-file .env is inserted right after the first "run" argument so
the container sees the same variables as a local run. The exit status of docker
is returned unchanged.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCode(newExecutor(cmd).Run(cmd.Context(), args))
		},
	}
}
