package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mmynk/tripwiser/internal/auth"
	"github.com/mmynk/tripwiser/internal/config"
	"github.com/mmynk/tripwiser/internal/models"
)

// TokenCmd prints a signed token, since login is handled outside this service.
type TokenCmd struct {
	User  string        `kong:"required,help='User ID to embed in the token'"`
	Email string        `kong:"help='Email claim (optional)'"`
	TTL   time.Duration `kong:"name='ttl',help='Token lifetime (default TRIPWISER_TOKEN_TTL)'"`
}

func (c *TokenCmd) Run(cfg *config.Config) error {
	ttl := cfg.TokenTTL
	if c.TTL > 0 {
		ttl = c.TTL
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, ttl).Generate(models.UserID(c.User), c.Email)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, token)
	return err
}
