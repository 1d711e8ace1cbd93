package dockerwrap_test

import (
	"testing"

	"github.com/andyle182810/apicheck/dockerwrap"
	"github.com/stretchr/testify/require"
)

func TestRunArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		exists bool
		want   []string
	}{
		{
			name:   "env file inserted after run",
			args:   []string{"run", "--rm", "demo-api-test", "go", "test", "./..."},
			exists: true,
			want:   []string{"run", "--env-file", ".env", "--rm", "demo-api-test", "go", "test", "./..."},
		},
		{
			name:   "no env file",
			args:   []string{"run", "--rm", "demo-api-test"},
			exists: false,
			want:   []string{"run", "--rm", "demo-api-test"},
		},
		{
			name:   "no run subcommand",
			args:   []string{"build", "-t", "demo-api-test", "."},
			exists: true,
			want:   []string{"build", "-t", "demo-api-test", "."},
		},
		{
			name:   "only the first run",
			args:   []string{"--log-level", "warn", "run", "img", "run"},
			exists: true,
			want:   []string{"--log-level", "warn", "run", "--env-file", ".env", "img", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := append([]string(nil), tt.args...)

			require.Equal(t, tt.want, dockerwrap.RunArgs(tt.args, tt.exists))
			require.Equal(t, original, tt.args)
		})
	}
}

func TestGitleaksArgs(t *testing.T) {
	t.Parallel()

	prefix := []string{
		"run", "--rm", "-e", "MSYS_NO_PATHCONV=1",
		"-v", "/work/app:/repo", "-w", "/repo",
		"ghcr.io/gitleaks/gitleaks:latest",
	}

	staged := dockerwrap.GitleaksArgs(dockerwrap.GitleaksOptions{Mode: dockerwrap.ModeStaged, JSON: false, Dir: "/work/app"})
	require.Equal(t, append(append([]string(nil), prefix...),
		"protect", "--staged", "--config", ".gitleaks.toml", "-v"), staged)

	full := dockerwrap.GitleaksArgs(dockerwrap.GitleaksOptions{Mode: dockerwrap.ModeFull, JSON: true, Dir: "/work/app"})
	require.Equal(t, append(append([]string(nil), prefix...),
		"detect", "--source", "/repo", "--config", ".gitleaks.toml", "-v",
		"--report-format", "json", "--report-path", "gitleaks-report.json"), full)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := dockerwrap.ParseMode("full")
	require.NoError(t, err)
	require.Equal(t, dockerwrap.ModeFull, mode)

	_, err = dockerwrap.ParseMode("partial")
	require.ErrorIs(t, err, dockerwrap.ErrInvalidMode)
}

func TestDockerPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/c/Users/dev/app", dockerwrap.DockerPath(`C:\Users\dev\app`, "windows"))
	require.Equal(t, "/d/", dockerwrap.DockerPath(`D:\`, "windows"))
	require.Equal(t, `C:\Users\dev\app`, dockerwrap.DockerPath(`C:\Users\dev\app`, "linux"))
	require.Equal(t, "/home/dev/app", dockerwrap.DockerPath("/home/dev/app", "linux"))
	require.Equal(t, `\\server\share`, dockerwrap.DockerPath(`\\server\share`, "windows"))
}
