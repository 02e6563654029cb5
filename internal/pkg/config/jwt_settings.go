package config

import (
	"fmt"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// JwtSettings configures access token issuance and validation.
type JwtSettings struct {
	SigningMethod  string        `yaml:"signing_method" env:"JWT_SIGNING_METHOD" validate:"required,signingmethod"`
	Secret         string        `yaml:"secret" env:"JWT_SECRET"`
	PrivateKeyPath string        `yaml:"private_key_path" env:"JWT_PRIVATE_KEY_PATH"`
	PublicKeyPath  string        `yaml:"public_key_path" env:"JWT_PUBLIC_KEY_PATH"`
	Issuer         string        `yaml:"issuer" env:"JWT_ISSUER" validate:"required"`
	Audience       string        `yaml:"audience" env:"JWT_AUDIENCE"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"JWT_ACCESS_TOKEN_TTL" validate:"required,min=1m,max=720h"`
	Leeway         time.Duration `yaml:"leeway" env:"JWT_LEEWAY" validate:"min=0,max=2m"`
}

// Validate checks that all fields in JwtSettings are valid
func (s *JwtSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("signingmethod", validators.SigningMethodValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for JwtSettings: %w", err)
	}

	return nil
}
