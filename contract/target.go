// Package contract wires the scenario suite to its target: the live demo
// API when APICHECK_LIVE is set, an in-process stub otherwise.
package contract

import (
	"context"
	"fmt"

	"github.com/andyle182810/apicheck/config"
	"github.com/andyle182810/apicheck/httpclient"
	"github.com/andyle182810/apicheck/httpserver"
	"github.com/andyle182810/apicheck/reqres"
	"github.com/andyle182810/apicheck/stubapi"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type Settings struct {
	Live       bool   `env:"APICHECK_LIVE"`
	StubAPIKey string `env:"APICHECK_STUB_API_KEY" envDefault:"reqres-free-v1"`
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("contract: settings: %w", err)
	}

	return s, nil
}

// Target is the API under test. Config carries the base URL and, when one is
// known, the API key the target accepts.
type Target struct {
	Config *config.Config
	Live   bool
	server *httpserver.Server
}

func Open(ctx context.Context, settings Settings, base *config.Config, logger zerolog.Logger) (*Target, error) {
	if settings.Live {
		return &Target{Config: base, Live: true, server: nil}, nil
	}

	api := stubapi.NewAPI(stubapi.WithAPIKey(settings.StubAPIKey))
	srv := stubapi.NewServer(&httpserver.Config{ //nolint:exhaustruct
		Host: "127.0.0.1",
	}, api, logger)

	if err := srv.Start(ctx); err != nil {
		return nil, fmt.Errorf("contract: start stub: %w", err)
	}

	cfg := base.WithBaseURL(srv.URL() + stubapi.BasePath).WithAPIKey(settings.StubAPIKey)

	return &Target{Config: cfg, Live: false, server: srv}, nil
}

func (t *Target) Close() error {
	if t.server == nil {
		return nil
	}

	return t.server.Stop()
}

// HasAPIKey reports whether keyed endpoints can be expected to succeed.
func (t *Target) HasAPIKey() bool {
	return t.Config.APIKey != ""
}

func (t *Target) Client(opts ...httpclient.Option) *reqres.Client {
	return reqres.NewFromConfig(t.Config, opts...)
}

// ClientWithoutKey is Client minus the x-api-key default header.
func (t *Target) ClientWithoutKey(opts ...httpclient.Option) *reqres.Client {
	return reqres.NewFromConfig(t.Config.WithAPIKey(""), opts...)
}
