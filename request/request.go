// Package request models the three supported OAuth 2.0 grant-type requests
// and renders them into transport-ready HTTP requests. Request values are
// immutable and consumed once per exchange: parameters such as grant_type are
// fixed at construction, so a fresh value is required per attempt.
package request

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/pkg/errors"
)

// Request is the closed set of grant-type requests understood by the flow
// orchestrator. Exactly three types implement it: AuthorizationCodeRequest,
// ClientCredentialsRequest and RefreshTokenRequest.
type Request interface {
	// GrantType identifies the OAuth 2.0 grant this request performs.
	GrantType() oauth2.GrantType

	// AuthorizationURL is the endpoint for the interactive authorization
	// step (authorization-code grant) or the token-issuing endpoint
	// (client-credentials grant). Nil for refresh-token requests.
	AuthorizationURL() *url.URL

	// TokenURL is the token-exchange endpoint. Nil for client-credentials
	// requests, which carry their endpoint as the authorization URL.
	TokenURL() *url.URL

	// Headers returns the HTTP headers the token request must carry.
	Headers() map[string]string

	// Parameters returns the request parameters for the grant's first step.
	Parameters() map[string]string

	// sealed keeps the set of grant kinds closed so the orchestrator's
	// dispatch can be exhaustive.
	sealed()
}

// AppendQuery returns a copy of target with parameters appended to its
// existing query string, never replacing it.
func AppendQuery(target *url.URL, parameters map[string]string) *url.URL {
	u := *target
	query := u.Query()
	for name, value := range parameters {
		query.Add(name, value)
	}
	u.RawQuery = query.Encode()
	return &u
}

// NewHTTPRequest renders headers and parameters into a POST request against
// target. Parameters are appended to the target's existing query string,
// never replacing it; headers overwrite any same-named header.
func NewHTTPRequest(ctx context.Context, target *url.URL, headers map[string]string, parameters map[string]string) (*http.Request, error) {
	if target == nil {
		return nil, errors.New("[NewHTTPRequest] target URL is required")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, AppendQuery(target, parameters).String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "[NewHTTPRequest] http.NewRequestWithContext")
	}
	for name, value := range headers {
		httpReq.Header.Set(name, value)
	}
	return httpReq, nil
}

// parseAbsoluteURL validates that raw parses as an absolute URL. Construction
// of any request fails on the first invalid URL, so flow execution never sees
// a half-built request.
func parseAbsoluteURL(field, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "[parseAbsoluteURL] invalid %s", field)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("[parseAbsoluteURL] %s must be an absolute URL: %q", field, raw)
	}
	return u, nil
}

func setIfNotEmpty(params map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	params[name] = value
}
