package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/server"
)

var tokenClientID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API bearer token",
	Long:  "Mint a signed bearer token for the REST API using the JWT_SECRET environment variable. Tokens are only needed when the server runs with authentication enabled.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client", "cli", "Client identifier embedded in the token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtCfg, err := config.JWTFromEnv()
	if err != nil {
		return err
	}
	if jwtCfg == nil {
		return fmt.Errorf("JWT_SECRET is not set; the server runs without authentication")
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(tokenClientID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
