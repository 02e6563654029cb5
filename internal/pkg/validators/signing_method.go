package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SigningMethodValidation validates the JWT signing method and checks that the
// key material it needs is configured on the parent struct.
func SigningMethodValidation(fl validator.FieldLevel) bool {
	parent := fl.Parent()

	switch strings.ToUpper(fl.Field().String()) {
	case "HS256":
		return len(parent.FieldByName("Secret").String()) >= 32
	case "RS256":
		return parent.FieldByName("PrivateKeyPath").String() != "" ||
			parent.FieldByName("PublicKeyPath").String() != ""
	default:
		return false
	}
}
