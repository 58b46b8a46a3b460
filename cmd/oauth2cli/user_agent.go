package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// consoleUserAgent drives the interactive authorization step over the
// terminal: it prints the authorization URL for the user to open in a
// browser, then reads the redirect URL the browser lands on from stdin.
type consoleUserAgent struct {
	in  io.Reader
	out io.Writer
}

func (a consoleUserAgent) PresentAuthorization(ctx context.Context, authorizationURL, redirectURL *url.URL) (*url.URL, error) {
	fmt.Fprintf(a.out, "Open the following URL in your browser:\n\n  %s\n\n", authorizationURL)
	fmt.Fprintf(a.out, "After authorizing, paste the full redirect URL (%s?...) here:\n> ", redirectURL)

	line := make(chan string, 1)
	readErr := make(chan error, 1)
	go func() {
		text, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil {
			readErr <- err
			return
		}
		line <- strings.TrimSpace(text)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-readErr:
		return nil, errors.Wrap(err, "[PresentAuthorization] reading redirect URL")
	case text := <-line:
		u, err := url.Parse(text)
		if err != nil {
			return nil, errors.Wrap(err, "[PresentAuthorization] parsing redirect URL")
		}
		return u, nil
	}
}
