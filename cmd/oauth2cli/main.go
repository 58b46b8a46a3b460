package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-oauth-client/discovery"
	"github.com/jrsteele09/go-oauth-client/flow"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/request"
	"github.com/jrsteele09/go-oauth-client/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("oauth2cli failed")
	}
}

func run(logger zerolog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	displayAppName("oauth2cli")

	userAgent := consoleUserAgent{in: os.Stdin, out: os.Stdout}
	client, err := flow.New(&http.Client{Timeout: cfg.HTTPTimeout}, userAgent, flow.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx := context.Background()
	req, err := buildRequest(ctx, cfg)
	if err != nil {
		return err
	}

	resp := <-client.Authorize(ctx, req)
	if !resp.Succeeded() {
		return resp.Failure
	}

	data := resp.Data
	event := logger.Info()
	if data.ExpiresIn != nil {
		event = event.Dur("expires_in", time.Duration(*data.ExpiresIn)*time.Second)
	} else if expiry, ok := token.ExpiryHint(data.AccessToken); ok {
		event = event.Time("expires_at", expiry)
	}
	event.Bool("refresh_token_issued", data.RefreshToken != nil).Msg("authorization succeeded")

	fmt.Println(data.AccessToken)
	return nil
}

func buildRequest(ctx context.Context, cfg config) (request.Request, error) {
	switch oauth2.GrantType(cfg.GrantType) {
	case oauth2.AuthorizationCodeGrant:
		opts := []request.AuthorizationCodeOption{request.WithState(request.RandomState())}
		if cfg.Scope != "" {
			opts = append(opts, request.WithScope(cfg.Scope))
		}
		if cfg.Issuer != "" {
			return discovery.NewAuthorizationCodeRequest(ctx, cfg.Issuer, cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, opts...)
		}
		return request.NewAuthorizationCodeRequest(cfg.AuthorizationURL, cfg.TokenURL, cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, opts...)

	case oauth2.ClientCredentialsGrant:
		placement := request.CredentialsInHeader
		if cfg.CredentialsInBody {
			placement = request.CredentialsInBody
		}
		var opts []request.ClientCredentialsOption
		if cfg.Scope != "" {
			opts = append(opts, request.WithClientCredentialsScope(cfg.Scope))
		}
		return request.NewClientCredentialsRequest(cfg.TokenURL, cfg.ClientID, cfg.ClientSecret, placement, opts...)

	case oauth2.RefreshTokenGrant:
		return request.NewRefreshTokenRequest(cfg.TokenURL, cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken)

	default:
		return nil, errors.Errorf("[buildRequest] unsupported grant type %q", cfg.GrantType)
	}
}

func displayAppName(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
