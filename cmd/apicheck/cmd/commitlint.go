package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/andyle182810/apicheck/commitlint"
	"github.com/spf13/cobra"
)

func newCommitlintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commitlint <message-file|->",
		Short: "Check a commit message against the repository policy",
		Long: `Checks a commit message file, as passed by a commit-msg hook, against:

  <type>(<optional scope>): <optional TICKET> <subject>

Exits 1 when any error-level rule is broken.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readMessage(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			violations := commitlint.Lint(message, commitlint.DefaultConfig())
			if len(violations) == 0 {
				return nil
			}

			header := message
			if parsed, _ := commitlint.Parse(message); parsed != nil {
				header = parsed.RawHeader
			}

			fmt.Fprint(cmd.ErrOrStderr(), commitlint.Summary(header, violations))

			if commitlint.HasErrors(violations) {
				return withCode(1, nil)
			}

			return nil
		},
	}
}

func readMessage(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("commitlint: read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("commitlint: %w", err)
	}

	return string(data), nil
}
