package dockerwrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ExitUsage    = 2
	ExitNotFound = 127
)

var (
	ErrUsage         = errors.New("dockerwrap: usage: apicheck docker <docker args...>")
	ErrMissingConfig = errors.New("dockerwrap: " + GitleaksConfig + " not found in repo root")
	ErrExecFailed    = errors.New("dockerwrap: could not run command")
)

// Executor runs one binary with the given stdio. The zero value is not
// usable; see NewExecutor.
type Executor struct {
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger

	// Exists reports whether a file is present, relative to the working
	// directory.
	Exists func(path string) bool
}

func NewExecutor() *Executor {
	return &Executor{
		Binary: "docker",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: log.Logger,
		Exists: fileExists,
	}
}

// Exec runs the binary and returns its exit status. A status is returned even
// when the command could not be started (ExitNotFound), alongside the error.
func (e *Executor) Exec(ctx context.Context, args []string) (int, error) {
	e.Logger.Debug().
		Str("command", e.Binary+" "+strings.Join(args, " ")).
		Msg("Running command")

	cmd := exec.CommandContext(ctx, e.Binary, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal.
			code = 1
		}

		return code, nil
	}

	return ExitNotFound, fmt.Errorf("%w: %s: %w", ErrExecFailed, e.Binary, err)
}

// Run executes "docker <args>", adding the env file when present.
func (e *Executor) Run(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		return ExitUsage, ErrUsage
	}

	return e.Exec(ctx, RunArgs(args, e.Exists(EnvFile)))
}

// Gitleaks scans the repository in the current directory with the gitleaks
// image. opts.Dir defaults to the working directory.
func (e *Executor) Gitleaks(ctx context.Context, opts GitleaksOptions) (int, error) {
	if !e.Exists(GitleaksConfig) {
		return ExitUsage, ErrMissingConfig
	}

	args := GitleaksArgs(opts)

	e.Logger.Debug().
		Str("docker_path", opts.Dir).
		Str("mode", string(opts.Mode)).
		Bool("config_present", true).
		Str("command", e.Binary+" "+strings.Join(args, " ")).
		Msg("Gitleaks wrapper")

	return e.Exec(ctx, args)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
