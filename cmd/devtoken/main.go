// Command devtoken mints a signed identity token for local development.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"confcompanion/config"
	"confcompanion/internal/adapters/auth"
	"confcompanion/internal/domain"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var claims domain.IdentityClaims
	var expiry time.Duration

	flagSet := pflag.NewFlagSet("devtoken", pflag.ContinueOnError)
	flagSet.StringVar(&claims.Subject, "sub", "dev-user", "subject (user id)")
	flagSet.StringVar(&claims.Email, "email", "dev@example.com", "email claim")
	flagSet.StringVar(&claims.FirstName, "first-name", "Dev", "first name claim")
	flagSet.StringVar(&claims.LastName, "last-name", "User", "last name claim")
	flagSet.StringVar(&claims.ProfileImageURL, "picture", "", "profile image URL claim")
	flagSet.DurationVarP(&expiry, "expiry", "e", 24*time.Hour, "token lifetime")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		return errors.New("refusing to mint tokens with GO_ENV=production")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer).Issue(claims, expiry)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
