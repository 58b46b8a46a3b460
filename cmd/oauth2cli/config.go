package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// config is read from the environment. Endpoints come either from explicit
// URLs or, for the authorization-code grant, from OIDC discovery via ISSUER.
type config struct {
	GrantType         string        `env:"GRANT_TYPE" envDefault:"client_credentials"`
	Issuer            string        `env:"ISSUER"`
	AuthorizationURL  string        `env:"AUTHORIZATION_URL"`
	TokenURL          string        `env:"TOKEN_URL"`
	ClientID          string        `env:"CLIENT_ID,required"`
	ClientSecret      string        `env:"CLIENT_SECRET"`
	RedirectURL       string        `env:"REDIRECT_URL"`
	Scope             string        `env:"SCOPE"`
	RefreshToken      string        `env:"REFRESH_TOKEN"`
	CredentialsInBody bool          `env:"CREDENTIALS_IN_BODY"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, errors.Wrap(err, "[loadConfig] env.Parse")
	}
	return cfg, nil
}
