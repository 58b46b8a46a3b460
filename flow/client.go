// Package flow sequences OAuth 2.0 grant flows: the interactive redirect step
// of the authorization-code grant followed by token exchange, or the direct
// token exchange of the client-credentials and refresh-token grants. Each
// invocation delivers exactly one terminal Response through a one-shot
// channel and holds no state afterwards.
package flow

import (
	"context"
	"io"
	"net/url"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/request"
	"github.com/jrsteele09/go-oauth-client/response"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client orchestrates grant flows over injected capabilities. Capabilities
// are bound at construction, never through shared global state, so concurrent
// flows never interfere. The zero value is unusable; use New.
type Client struct {
	httpClient Doer
	userAgent  UserAgent
	logger     zerolog.Logger
}

// Option modifies a Client at construction.
type Option func(*Client)

// WithLogger sets the logger for flow transitions. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New validates the injected capabilities and builds a Client. Both are
// required: a nil capability is a programmer error rejected here, never
// deferred to flow execution.
func New(httpClient Doer, userAgent UserAgent, options ...Option) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("[New] httpClient is required")
	}
	if userAgent == nil {
		return nil, errors.New("[New] userAgent is required")
	}

	client := &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

// Authorize runs the flow for any grant-type request. The returned channel
// is buffered, receives exactly one terminal Response, and is then closed.
// Independent invocations may run concurrently; each owns its own state.
func (c *Client) Authorize(ctx context.Context, req request.Request) <-chan response.Response {
	terminal := make(chan response.Response, 1)
	go func() {
		defer close(terminal)
		terminal <- c.run(ctx, req)
	}()
	return terminal
}

// Refresh runs a refresh-token flow. Equivalent to Authorize, typed to the
// refresh grant.
func (c *Client) Refresh(ctx context.Context, req *request.RefreshTokenRequest) <-chan response.Response {
	return c.Authorize(ctx, req)
}

// run dispatches on the closed set of grant kinds. The authorization-code
// grant needs the interactive step first; the other two go straight to token
// exchange against their respective endpoints.
func (c *Client) run(ctx context.Context, req request.Request) response.Response {
	c.logger.Debug().Str("grant_type", string(req.GrantType())).Msg("starting flow")

	switch r := req.(type) {
	case *request.AuthorizationCodeRequest:
		return c.authorizationCodeFlow(ctx, r)
	case *request.ClientCredentialsRequest:
		return c.tokenExchange(ctx, r.AuthorizationURL(), r.Headers(), r.Parameters())
	case *request.RefreshTokenRequest:
		return c.tokenExchange(ctx, r.TokenURL(), r.Headers(), r.Parameters())
	default:
		// Request is sealed to the three variants above.
		err := errors.Errorf("[run] unsupported request type %T", req)
		return response.NewFailureResponse(response.NewUnexpectedServerResponseFailure(err, 0, nil))
	}
}

// authorizationCodeFlow performs the interactive redirect step and, when the
// redirect carries a code, the subsequent token exchange. A redirect carrying
// an error classifies directly; one carrying neither is a structural failure.
func (c *Client) authorizationCodeFlow(ctx context.Context, req *request.AuthorizationCodeRequest) response.Response {
	authorizationURL := request.AppendQuery(req.AuthorizationURL(), req.Parameters())

	redirectURL, err := c.userAgent.PresentAuthorization(ctx, authorizationURL, req.RedirectURL)
	if err != nil {
		c.logger.Debug().Err(err).Msg("authorization page load failed")
		wrapped := errors.Wrap(err, "[authorizationCodeFlow] PresentAuthorization")
		return response.NewFailureResponse(response.NewUnexpectedServerResponseFailure(wrapped, 0, nil))
	}

	query := redirectURL.Query()
	switch {
	case query.Has(oauth2.ParamCode):
		c.logger.Debug().Msg("redirect carried authorization code, exchanging")
		parameters := req.TokenExchangeParameters(query.Get(oauth2.ParamCode))
		return c.tokenExchange(ctx, req.TokenURL(), req.Headers(), parameters)
	case query.Has(oauth2.ParamError):
		return response.NewFailureResponse(response.ClassifyError(redirectErrorData(query)))
	default:
		return response.NewFailureResponse(response.NewMissingRedirectParametersFailure())
	}
}

// redirectErrorData reads the error fields out of a redirect query string.
// url.Values has already percent-decoded the values.
func redirectErrorData(query url.Values) response.ErrorData {
	data := response.ErrorData{
		Code:        query.Get(oauth2.ParamError),
		Description: query.Get(oauth2.ParamErrorDescription),
	}
	if raw := query.Get(oauth2.ParamErrorURI); raw != "" {
		if uri, err := url.Parse(raw); err == nil {
			data.URI = uri
		}
	}
	return data
}

// tokenExchange renders and issues the HTTP request, then decodes whatever
// came back. Transport errors short-circuit to a structural failure without
// attempting response decoding.
func (c *Client) tokenExchange(ctx context.Context, target *url.URL, headers map[string]string, parameters map[string]string) response.Response {
	httpReq, err := request.NewHTTPRequest(ctx, target, headers, parameters)
	if err != nil {
		wrapped := errors.Wrap(err, "[tokenExchange] NewHTTPRequest")
		return response.NewFailureResponse(response.NewUnexpectedServerResponseFailure(wrapped, 0, nil))
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug().Err(err).Msg("token exchange transport failure")
		wrapped := errors.Wrap(err, "[tokenExchange] Do")
		return response.NewFailureResponse(response.NewUnexpectedServerResponseFailure(wrapped, 0, nil))
	}
	defer httpResp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		wrapped := errors.Wrap(err, "[tokenExchange] reading response body")
		return response.NewFailureResponse(response.NewUnexpectedServerResponseFailure(wrapped, httpResp.StatusCode, httpResp.Header))
	}

	c.logger.Debug().Int("status", httpResp.StatusCode).Msg("decoding token response")
	return response.Decode(body, httpResp.StatusCode, httpResp.Header)
}
