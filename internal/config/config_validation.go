package config

import (
	"errors"
	"time"
)

// Defaults applied by validate for optional settings.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenDuration  = time.Hour
	defaultCSRFTokenTTL   = time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate fills in defaults for optional fields and rejects configurations
// missing the values the server cannot run without: both secrets and the
// database DSN.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.App.CSRFTokenTTL <= 0 {
		c.App.CSRFTokenTTL = defaultCSRFTokenTTL
	}

	var err error
	if c.App.HashingSecret == "" {
		err = errors.Join(err, ErrNoHashingSecret)
	}
	if c.App.TokenSignKey == "" {
		err = errors.Join(err, ErrNoTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}

	return err
}
