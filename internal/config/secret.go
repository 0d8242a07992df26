package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// SecretConfig holds the hashing settings for the server's API secret.
type SecretConfig struct {
	BcryptCost int
	Pepper     string // optional extra secret mixed into the hash input
}

// NewSecretConfig reads hashing settings from the environment: BCRYPT_COST
// (default 12) and optionally SECRET_PEPPER.
func NewSecretConfig() (*SecretConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	cfg := &SecretConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("SECRET_PEPPER"),
	}
	if cfg.BcryptCost < 10 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cfg.BcryptCost)
	}
	return cfg, nil
}

// HashSecret hashes a secret with bcrypt, mixing in the pepper when set.
func (c *SecretConfig) HashSecret(secret string) (string, error) {
	input := secret
	if c.Pepper != "" {
		input = secret + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// VerifySecret checks a secret against a stored bcrypt hash.
func (c *SecretConfig) VerifySecret(secret, storedHash string) bool {
	input := secret
	if c.Pepper != "" {
		input = secret + c.Pepper
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input)) == nil
}
