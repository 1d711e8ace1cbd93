// Package dockerwrap builds the docker command lines used by the harness and
// runs them with the caller's stdio, forwarding the exit status.
package dockerwrap

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	EnvFile        = ".env"
	GitleaksConfig = ".gitleaks.toml"
	GitleaksImage  = "ghcr.io/gitleaks/gitleaks:latest"
	GitleaksReport = "gitleaks-report.json"

	repoMount = "/repo"
)

type Mode string

const (
	ModeStaged Mode = "staged"
	ModeFull   Mode = "full"
)

var ErrInvalidMode = errors.New("dockerwrap: mode must be staged or full")

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStaged, ModeFull:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidMode, s)
	}
}

// RunArgs inserts --env-file .env right after the first "run" argument when
// the env file exists. Otherwise args come back unchanged.
func RunArgs(args []string, envFileExists bool) []string {
	idx := slices.Index(args, "run")
	if idx == -1 || !envFileExists {
		return slices.Clone(args)
	}

	out := make([]string, 0, len(args)+2)
	out = append(out, args[:idx+1]...)
	out = append(out, "--env-file", EnvFile)

	return append(out, args[idx+1:]...)
}

type GitleaksOptions struct {
	Mode Mode
	JSON bool
	// Dir is the docker-side path of the repository to mount.
	Dir string
}

func GitleaksArgs(opts GitleaksOptions) []string {
	args := []string{
		"run", "--rm",
		"-e", "MSYS_NO_PATHCONV=1",
		"-v", opts.Dir + ":" + repoMount,
		"-w", repoMount,
		GitleaksImage,
	}

	if opts.Mode == ModeFull {
		args = append(args, "detect", "--source", repoMount, "--config", GitleaksConfig, "-v")
	} else {
		args = append(args, "protect", "--staged", "--config", GitleaksConfig, "-v")
	}

	if opts.JSON {
		args = append(args, "--report-format", "json", "--report-path", GitleaksReport)
	}

	return args
}

// DockerPath converts a host directory into the form docker expects for a
// bind mount. On windows C:\src\app becomes /c/src/app; elsewhere dir is
// returned as is.
func DockerPath(dir, goos string) string {
	if goos != "windows" || len(dir) < 2 || dir[1] != ':' {
		return dir
	}

	drive := strings.ToLower(dir[:1])
	rest := strings.ReplaceAll(dir[2:], `\`, "/")

	return "/" + drive + rest
}
