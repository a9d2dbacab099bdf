// Command mint-token signs an identity token for local development.
//
//	JWT_SECRET=... mint-token --household flat-4b --participant alice
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/mmynk/sharemates/internal/auth"
	"github.com/mmynk/sharemates/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	cfg := config.Load()
	var householdID, participantID string

	flags := pflag.NewFlagSet("mint-token", pflag.ContinueOnError)
	flags.StringVar(&householdID, "household", "", "household id the token grants access to")
	flags.StringVarP(&participantID, "participant", "p", "", "participant id of the caller")
	flags.StringVar(&cfg.JWTSecret, "secret", cfg.JWTSecret, "signing secret (default: JWT_SECRET)")
	flags.DurationVar(&cfg.TokenTTL, "ttl", cfg.TokenTTL, "token lifetime (default: TOKEN_TTL or 720h)")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.JWTSecret == "" {
		return errors.New("no signing secret: set JWT_SECRET or pass --secret")
	}
	// The server's rules apply: secret length, TOKEN_TTL format.
	if err := cfg.Validate(); err != nil {
		return err
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL).Generate(householdID, participantID)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
