package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sniper-Code/auth-server/internal/config"
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/utils"
)

const csrfNonceLength = 16

// csrfService issues and validates stateless forgery-protection tokens.
//
// A token has the form "hex(nonce).expiryUnix.hex(signature)" where the
// signature is an HMAC-SHA512 over "hex(nonce).expiryUnix" keyed with the
// token sign key. Nothing is stored server-side: possession of a token with a
// valid signature and an unexpired timestamp is the whole proof.
type csrfService struct {
	signKey  string
	tokenTTL time.Duration
	logger   *logger.Logger
}

// NewCSRFService constructs a CSRFService from the application config.
func NewCSRFService(cfg config.App, logger *logger.Logger) CSRFService {
	return &csrfService{
		signKey:  cfg.TokenSignKey,
		tokenTTL: cfg.CSRFTokenTTL,
		logger:   logger,
	}
}

// IssueToken mints a fresh forgery token valid for the configured TTL.
func (c *csrfService) IssueToken(ctx context.Context) (string, error) {
	nonce := make([]byte, csrfNonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("error generating forgery token nonce: %w", err)
	}

	expiry := time.Now().Add(c.tokenTTL).Unix()
	payload := hex.EncodeToString(nonce) + "." + strconv.FormatInt(expiry, 10)
	signature := utils.HashString(payload, c.signKey)

	return payload + "." + signature, nil
}

// ValidateToken checks the shape, signature and expiry of a presented token.
// The signature is recomputed and compared before the expiry is looked at, so
// a forged token never gets a different answer than a malformed one.
func (c *csrfService) ValidateToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrForgeryTokenInvalid
	}

	payload := parts[0] + "." + parts[1]
	if !utils.HashEqual(utils.HashString(payload, c.signKey), parts[2]) {
		log.Debug().Msg("forgery token signature mismatch")
		return ErrForgeryTokenInvalid
	}

	expiry, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ErrForgeryTokenInvalid
	}
	if time.Now().Unix() >= expiry {
		return ErrForgeryTokenExpired
	}

	return nil
}
