package stubapi

import (
	"github.com/andyle182810/apicheck/httpserver"
	"github.com/rs/zerolog"
)

// BasePath mirrors the /api prefix of the live service, so a base URL of
// http://host:port/api resolves the same paths.
const BasePath = "/api"

// NewServer mounts api under BasePath on a new HTTP server. The result is a
// runner.Service.
func NewServer(cfg *httpserver.Config, api *API, logger zerolog.Logger) *httpserver.Server {
	srv := httpserver.New(cfg, logger.With().Str("component", "stubapi").Logger())
	api.Register(srv.Root.Group(BasePath))

	return srv
}
