// Package clients holds the HTTP transport for the gateway REST API. The
// credential and payload work happens before a request is built; this package
// only ships the finished header and body and decodes what comes back.
package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/merchantkit/paygate/types"
)

const transactionsEndpoint = "/transactions"

// Client sends authorized JSON requests to the gateway API.
type Client interface {
	PostTransaction(ctx context.Context, authorization string, body any) (*types.TransactionResponse, error)
	PostJSON(ctx context.Context, endpoint, authorization string, body, result any) error
}

type restClient struct {
	rest *resty.Client
	env  types.Environment
}

// New creates a gateway client for the given environment. A nil httpClient
// uses resty's default transport; timeout bounds each request end to end.
func New(env types.Environment, httpClient *http.Client, timeout time.Duration) Client {
	var rc *resty.Client
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	} else {
		rc = resty.New()
	}
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &restClient{rest: rc, env: env}
}

// PostTransaction submits a transaction document and decodes the gateway's
// reply. The body may be a typed request or an already-normalized JSON object.
func (c *restClient) PostTransaction(ctx context.Context, authorization string, body any) (*types.TransactionResponse, error) {
	var result types.TransactionResponse
	if err := c.PostJSON(ctx, transactionsEndpoint, authorization, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PostJSON posts a JSON body to an endpoint under the environment's base URL
// and unmarshals a 2xx response into result. Non-2xx replies become a
// *RequestError carrying the status, raw body, and any decoded error details.
func (c *restClient) PostJSON(ctx context.Context, endpoint, authorization string, body, result any) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Authorization", authorization).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		// The gateway replies JSON regardless of what Content-Type it
		// advertises; decode unconditionally.
		ForceContentType("application/json").
		Post(c.env.BaseURL() + endpoint)

	return checkError(resp, err)
}

func checkError(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		body := resp.String()
		var errorMap map[string]any
		if body != "" {
			_ = json.Unmarshal([]byte(body), &errorMap)
		}
		return &RequestError{
			StatusCode:   resp.StatusCode(),
			Body:         body,
			ErrorDetails: errorMap,
		}
	}
	return nil
}
