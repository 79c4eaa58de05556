package paygate

import (
	"net/http"
	"time"

	"github.com/merchantkit/paygate/clients"
	"github.com/merchantkit/paygate/logger"
	"github.com/merchantkit/paygate/metrics"
	"github.com/merchantkit/paygate/types"
)

type Option func(*Gateway)

// WithEnvironment selects the gateway environment (default sandbox).
func WithEnvironment(env types.Environment) Option {
	return func(g *Gateway) {
		g.env = env
	}
}

func WithLogger(l logger.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(g *Gateway) {
		g.metrics = r
	}
}

func WithTimeout(t time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = t
	}
}

// WithHTTPClient supplies the underlying HTTP client, for custom transports.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = c
	}
}

// WithSeedLength overrides the auth token seed length (default 16).
func WithSeedLength(n int) Option {
	return func(g *Gateway) {
		g.seedLen = n
	}
}

// WithClient replaces the transport entirely; mainly a test seam.
func WithClient(c clients.Client) Option {
	return func(g *Gateway) {
		g.client = c
	}
}
