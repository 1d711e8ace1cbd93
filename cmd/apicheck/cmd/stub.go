package cmd

import (
	"time"

	"github.com/andyle182810/apicheck/httpserver"
	"github.com/andyle182810/apicheck/runner"
	"github.com/andyle182810/apicheck/stubapi"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newStubCmd() *cobra.Command {
	var (
		cfg      httpserver.Config
		apiKey   string
		maxDelay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve an in-memory copy of the demo API until interrupted",
		Long: `Serves the demo API routes under /api from a fixed fixture. Point the suite at
it with API_BASE_URL=http://<host>:<port>/api.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api := stubapi.NewAPI(stubapi.WithAPIKey(apiKey), stubapi.WithMaxDelay(maxDelay))
			srv := stubapi.NewServer(&cfg, api, log.Logger)

			return runner.New(runner.WithService(srv)).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.Host, "host", "127.0.0.1", "Listen address")
	cmd.Flags().IntVar(&cfg.Port, "port", 8080, "Listen port")
	cmd.Flags().DurationVar(&cfg.ReadTimeout, "read-timeout", 10*time.Second, "HTTP read timeout")
	cmd.Flags().DurationVar(&cfg.WriteTimeout, "write-timeout", 10*time.Second, "HTTP write timeout")
	cmd.Flags().DurationVar(&cfg.GracePeriod, "grace-period", 5*time.Second, "Graceful shutdown period")
	cmd.Flags().StringVar(&cfg.BodyLimit, "body-limit", "1M", "Maximum request body size")
	cmd.Flags().StringVar(&apiKey, "api-key", "reqres-free-v1", "Key required on /unknown routes; empty disables the check")
	cmd.Flags().DurationVar(&maxDelay, "max-delay", stubapi.DefaultMaxDelay, "Upper bound for ?delay=N")

	return cmd
}
