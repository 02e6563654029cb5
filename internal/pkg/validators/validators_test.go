//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenancyFixture struct {
	Enabled  bool
	Strategy string `validate:"tenancystrategy"`
}

type signingFixture struct {
	Method         string `validate:"signingmethod"`
	Secret         string
	PrivateKeyPath string
	PublicKeyPath  string
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("tenancystrategy", TenancyStrategyValidation))
	require.NoError(t, v.RegisterValidation("signingmethod", SigningMethodValidation))
	return v
}

func TestTenancyStrategyValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		fixture tenancyFixture
		valid   bool
	}{
		{"single", tenancyFixture{Enabled: true, Strategy: StrategySingleDatabase}, true},
		{"separate", tenancyFixture{Enabled: true, Strategy: StrategySeparateDatabase}, true},
		{"hybrid", tenancyFixture{Enabled: true, Strategy: StrategyHybrid}, true},
		{"empty while disabled", tenancyFixture{Enabled: false}, true},
		{"empty while enabled", tenancyFixture{Enabled: true}, false},
		{"unknown", tenancyFixture{Enabled: true, Strategy: "sharded"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.fixture)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSigningMethodValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		fixture signingFixture
		valid   bool
	}{
		{"hs256 with long secret", signingFixture{Method: "HS256", Secret: strings.Repeat("s", 32)}, true},
		{"hs256 lower case", signingFixture{Method: "hs256", Secret: strings.Repeat("s", 40)}, true},
		{"hs256 short secret", signingFixture{Method: "HS256", Secret: "short"}, false},
		{"rs256 with private key", signingFixture{Method: "RS256", PrivateKeyPath: "jwt.pem"}, true},
		{"rs256 without keys", signingFixture{Method: "RS256"}, false},
		{"unsupported", signingFixture{Method: "ES256", Secret: strings.Repeat("s", 32)}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.fixture)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
