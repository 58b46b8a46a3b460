// Package flowfakes provides in-memory implementations of the flow package's
// injected capabilities for tests.
package flowfakes

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/jrsteele09/go-oauth-client/flow"
	"github.com/pkg/errors"
)

var _ flow.Doer = (*FakeDoer)(nil)

// FakeDoer records every request and answers with DoFunc.
type FakeDoer struct {
	// DoFunc produces the canned response. Required.
	DoFunc func(req *http.Request) (*http.Response, error)

	lock     sync.Mutex
	requests []*http.Request
}

func (d *FakeDoer) Do(req *http.Request) (*http.Response, error) {
	d.lock.Lock()
	d.requests = append(d.requests, req)
	d.lock.Unlock()

	if d.DoFunc == nil {
		return nil, errors.New("FakeDoer: DoFunc not set")
	}
	return d.DoFunc(req)
}

// Requests returns the requests seen so far, in order.
func (d *FakeDoer) Requests() []*http.Request {
	d.lock.Lock()
	defer d.lock.Unlock()
	return append([]*http.Request(nil), d.requests...)
}

var _ flow.UserAgent = (*FakeUserAgent)(nil)

// FakeUserAgent records the authorization URLs it was asked to present and
// answers with PresentFunc.
type FakeUserAgent struct {
	// PresentFunc reports the redirect outcome. Required.
	PresentFunc func(ctx context.Context, authorizationURL, redirectURL *url.URL) (*url.URL, error)

	lock      sync.Mutex
	presented []*url.URL
}

func (a *FakeUserAgent) PresentAuthorization(ctx context.Context, authorizationURL, redirectURL *url.URL) (*url.URL, error) {
	a.lock.Lock()
	a.presented = append(a.presented, authorizationURL)
	a.lock.Unlock()

	if a.PresentFunc == nil {
		return nil, errors.New("FakeUserAgent: PresentFunc not set")
	}
	return a.PresentFunc(ctx, authorizationURL, redirectURL)
}

// Presented returns the authorization URLs presented so far, in order.
func (a *FakeUserAgent) Presented() []*url.URL {
	a.lock.Lock()
	defer a.lock.Unlock()
	return append([]*url.URL(nil), a.presented...)
}
