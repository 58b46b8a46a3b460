package flow

import (
	"context"
	"net/http"
	"net/url"
)

// Doer issues the token-exchange HTTP request. *http.Client satisfies it;
// tests inject fakes. A Doer error means the request never produced a
// response (network failure), and short-circuits the flow without response
// decoding.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UserAgent presents the authorization page for the interactive step of the
// authorization-code grant and reports where the redirect landed.
//
// Implementations return the final redirect URL, whose query string carries
// either a `code` or an `error`, or a non-nil error when the page could not
// be loaded. Timeouts are the implementation's responsibility: the flow
// waits until exactly one of the two outcomes is reported.
type UserAgent interface {
	PresentAuthorization(ctx context.Context, authorizationURL *url.URL, redirectURL *url.URL) (*url.URL, error)
}
