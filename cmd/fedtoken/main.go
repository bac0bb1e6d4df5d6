// fedtoken generates the bearer tokens federation clients present on
// the gRPC surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	vault "github.com/hashicorp/vault/api"

	"github.com/National-Digital-Twin/federator-sub004/internal/auth"
)

var (
	clientID   = flag.String("client", "", "Client ID (required)")
	duration   = flag.Duration("duration", 24*time.Hour, "Token validity duration")
	issuer     = flag.String("issuer", "federator", "JWT issuer")
	secret     = flag.String("secret", os.Getenv("AUTH_JWT_SECRET"), "Shared HS256 secret")
	vaultAddr  = flag.String("vault-addr", os.Getenv("VAULT_ADDR"), "Vault address")
	vaultToken = flag.String("vault-token", os.Getenv("VAULT_TOKEN"), "Vault token")
	vaultPath  = flag.String("vault-path", "", "Vault path holding the shared secret")
)

func main() {
	flag.Parse()

	if *clientID == "" {
		flag.Usage()
		log.Fatal("\nClient ID is required for token generation")
	}

	jwtManager, err := buildManager()
	if err != nil {
		log.Fatalf("Failed to create JWT manager: %v", err)
	}

	token, err := jwtManager.GenerateToken(*clientID, *duration)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("JWT Token generated successfully:\n\n")
	fmt.Printf("Client ID: %s\n", *clientID)
	fmt.Printf("Valid For: %v\n", *duration)
	fmt.Printf("Issuer:    %s\n\n", *issuer)
	fmt.Printf("Token:\n%s\n\n", token)
	fmt.Printf("Use this token in your client by setting the Authorization header:\n")
	fmt.Printf("Authorization: Bearer %s\n", token)
}

// buildManager sources the shared secret from the flag or from Vault.
func buildManager() (*auth.JWTManager, error) {
	if *secret != "" {
		return auth.NewJWTManager([]byte(*secret), *issuer)
	}

	if *vaultPath == "" {
		return nil, fmt.Errorf("a secret is required (use -secret or -vault-path)")
	}
	if *vaultAddr == "" {
		return nil, fmt.Errorf("vault address is required (use -vault-addr or VAULT_ADDR env var)")
	}
	if *vaultToken == "" {
		return nil, fmt.Errorf("vault token is required (use -vault-token or VAULT_TOKEN env var)")
	}

	config := vault.DefaultConfig()
	config.Address = *vaultAddr

	vaultClient, err := vault.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	vaultClient.SetToken(*vaultToken)

	return auth.NewJWTManagerFromVault(context.Background(), vaultClient, *vaultPath, *issuer)
}
