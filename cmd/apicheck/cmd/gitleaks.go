package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/andyle182810/apicheck/dockerwrap"
	"github.com/andyle182810/apicheck/logutil"
	"github.com/spf13/cobra"
)

func newGitleaksCmd(root *rootOptions) *cobra.Command {
	var (
		mode     string
		wantJSON bool
		debug    bool
	)

	cmd := &cobra.Command{
		Use:   "gitleaks",
		Short: "Scan the repository for secrets with the gitleaks docker image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := dockerwrap.ParseMode(mode)
			if err != nil {
				return withCode(dockerwrap.ExitUsage, err)
			}

			if debug {
				logutil.Setup(cmd.ErrOrStderr(), logutil.Format(root.logFormat), "debug")
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("gitleaks: working directory: %w", err)
			}

			return withCode(newExecutor(cmd).Gitleaks(cmd.Context(), dockerwrap.GitleaksOptions{
				Mode: parsed,
				JSON: wantJSON,
				Dir:  dockerwrap.DockerPath(wd, runtime.GOOS),
			}))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(dockerwrap.ModeStaged), "staged scans the index, full scans the whole history")
	cmd.Flags().BoolVar(&wantJSON, "json", false, "Also write "+dockerwrap.GitleaksReport)
	cmd.Flags().BoolVar(&debug, "debug", false, "Print the docker command before running it")

	return cmd
}
