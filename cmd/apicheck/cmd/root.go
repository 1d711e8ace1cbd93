package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andyle182810/apicheck/logutil"
	"github.com/spf13/cobra"
)

// exitError carries a process exit status through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}

	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withCode(code int, err error) error {
	if code == 0 && err == nil {
		return nil
	}

	return &exitError{code: code, err: err}
}

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd(s streams) *cobra.Command {
	opts := &rootOptions{logLevel: "", logFormat: ""}

	root := &cobra.Command{
		SilenceUsage:  true,
		SilenceErrors: true,
		Use:           "apicheck [command]",
		Short:         "API contract harness for the reqres demo API",
		Long: `apicheck bundles the tooling around the API contract suite: docker wrappers,
a commit message linter, a local stub of the demo API and a quick health check.`,
		Example: `  apicheck docker run --rm demo-api-test go test ./contract/...
  apicheck gitleaks --mode=full --json
  apicheck commitlint .git/COMMIT_EDITMSG
  apicheck stub --port 8080
  apicheck health`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logutil.Setup(s.err, logutil.Format(opts.logFormat), opts.logLevel)
		},
	}

	root.SetIn(s.in)
	root.SetOut(s.out)
	root.SetErr(s.err)

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", level, "Log level (trace, debug, info, warn, error, disabled)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(logutil.FormatConsole), "Log format (console, json)")

	root.AddCommand(
		newDockerCmd(),
		newGitleaksCmd(opts),
		newCommitlintCmd(),
		newStubCmd(),
		newHealthCmd(),
	)

	return root
}

// Execute runs the CLI and returns the process exit status.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(streams{in: stdin, out: stdout, err: stderr})
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintln(stderr, exitErr.err)
		}

		return exitErr.code
	}

	fmt.Fprintln(stderr, err)

	return 1
}
