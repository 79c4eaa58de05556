// Package paygate implements the client core for the gateway's REST API:
// seeded hash-based credential authentication, normalization of flat
// transaction documents into the nested shape the API expects, and a thin
// transport for submitting test transactions.
package paygate

import (
	"context"
	"net/http"
	"time"

	"github.com/merchantkit/paygate/auth"
	"github.com/merchantkit/paygate/clients"
	"github.com/merchantkit/paygate/logger"
	"github.com/merchantkit/paygate/metrics"
	"github.com/merchantkit/paygate/normalize"
	"github.com/merchantkit/paygate/types"
)

// Gateway bundles a merchant credential with an environment and transport.
// Authorization headers and normalized bodies are computed fully before any
// request is sent; nothing here holds shared mutable state, so a Gateway is
// safe for concurrent use.
type Gateway struct {
	cred       types.Credential
	env        types.Environment
	seedLen    int
	timeout    time.Duration
	httpClient *http.Client
	client     clients.Client
	logger     logger.Logger
	metrics    metrics.Recorder
}

// New creates a Gateway for the given credential. Defaults: sandbox
// environment, 16-character seeds, 30 second request timeout, silent logger,
// noop metrics.
func New(cred types.Credential, opts ...Option) (*Gateway, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}

	g := &Gateway{
		cred:    cred,
		env:     types.Sandbox,
		seedLen: auth.DefaultSeedLength,
		timeout: 30 * time.Second,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = clients.New(g.env, g.httpClient, g.timeout)
	}
	return g, nil
}

// AuthorizationHeader returns a fresh "Basic ..." header value for the
// credential. Each call draws a new seed, so the embedded token is single-use.
func (g *Gateway) AuthorizationHeader() (string, error) {
	return auth.BuildAuthorizationHeader(g.cred.APIKey, g.cred.APIPin, g.seedLen)
}

// Normalize rewrites a flat transaction document into the nested card shape.
func (g *Gateway) Normalize(doc map[string]any) map[string]any {
	return normalize.Normalize(doc)
}

// Send normalizes a transaction document, builds an authorization header, and
// submits the result to the environment's transactions endpoint.
func (g *Gateway) Send(ctx context.Context, doc map[string]any) (*types.TransactionResponse, error) {
	start := time.Now()
	labels := map[string]string{"environment": g.env.Name()}

	body := normalize.Normalize(doc)

	header, err := g.AuthorizationHeader()
	if err != nil {
		return nil, err
	}

	resp, err := g.client.PostTransaction(ctx, header, body)
	g.metrics.ObserveLatency("transaction", time.Since(start), labels)
	if err != nil {
		g.metrics.IncCounter("transaction_error", labels)
		g.logger.Error("transaction request failed", map[string]any{
			"environment": g.env.Name(),
			"error":       err.Error(),
		})
		return nil, err
	}

	g.metrics.IncCounter("transaction", labels)
	g.logger.Info("transaction sent", map[string]any{
		"environment": g.env.Name(),
		"result":      resp.Result,
		"result_code": resp.ResultCode,
		"refnum":      resp.RefNum,
	})
	return resp, nil
}

// SendRequest submits a typed, already-nested transaction request.
func (g *Gateway) SendRequest(ctx context.Context, req *types.TransactionRequest) (*types.TransactionResponse, error) {
	if req == nil {
		return nil, types.InvalidArgument("request", "request must not be nil")
	}

	header, err := g.AuthorizationHeader()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	labels := map[string]string{"environment": g.env.Name()}
	resp, err := g.client.PostTransaction(ctx, header, req)
	g.metrics.ObserveLatency("transaction", time.Since(start), labels)
	if err != nil {
		g.metrics.IncCounter("transaction_error", labels)
		return nil, err
	}
	g.metrics.IncCounter("transaction", labels)
	return resp, nil
}

// Environment returns the environment this Gateway talks to.
func (g *Gateway) Environment() types.Environment {
	return g.env
}

// Version information
const (
	Version    = "1.0.0"
	APIVersion = "v2"
)

// GetVersion returns version information
func GetVersion() map[string]interface{} {
	commands := []types.TransactionCommand{
		types.CommandSale, types.CommandAuthOnly, types.CommandCapture,
		types.CommandVoid, types.CommandRefund, types.CommandCheck,
	}
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, string(c))
	}

	return map[string]interface{}{
		"library_version":    Version,
		"api_version":        APIVersion,
		"token_prefix":       auth.TokenPrefix,
		"supported_commands": names,
	}
}
