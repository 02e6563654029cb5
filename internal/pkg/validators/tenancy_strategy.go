package validators

import (
	"github.com/go-playground/validator/v10"
)

// Multi-tenancy database strategies.
const (
	StrategySingleDatabase   = "single"
	StrategySeparateDatabase = "separate"
	StrategyHybrid           = "hybrid"
)

// TenancyStrategyValidation validates the database strategy of the multi-tenancy settings.
// An empty strategy is only accepted when multi-tenancy is disabled.
func TenancyStrategyValidation(fl validator.FieldLevel) bool {
	strategy := fl.Field().String()
	enabled := fl.Parent().FieldByName("Enabled").Bool()

	switch strategy {
	case StrategySingleDatabase, StrategySeparateDatabase, StrategyHybrid:
		return true
	case "":
		return !enabled
	default:
		return false
	}
}
