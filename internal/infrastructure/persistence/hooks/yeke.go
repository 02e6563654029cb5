package hooks

import (
	"reflect"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	arabicYeh         = 'ي'
	arabicAlefMaksura = 'ى'
	arabicKaf         = 'ك'
	persianYeh        = 'ی'
	persianKeheh      = 'ک'
)

func yeKeMapping(r rune) rune {
	switch r {
	case arabicYeh, arabicAlefMaksura:
		return persianYeh
	case arabicKaf:
		return persianKeheh
	default:
		return r
	}
}

// ApplyCorrectYeKe rewrites Arabic Yeh and Kaf into their Persian forms.
func ApplyCorrectYeKe(s string) string {
	if s == "" {
		return s
	}
	out, _, err := transform.String(runes.Map(yeKeMapping), s)
	if err != nil {
		return s
	}
	return out
}

// ApplyCorrectYeKeToFields normalizes every exported settable string and
// *string field of the struct entity points to, embedded structs included.
func ApplyCorrectYeKeToFields(entity any) {
	v := reflect.ValueOf(entity)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	applyYeKe(v.Elem())
}

func applyYeKe(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		info := t.Field(i)

		if info.Anonymous {
			switch field.Kind() {
			case reflect.Struct:
				applyYeKe(field)
			case reflect.Pointer:
				if !field.IsNil() {
					applyYeKe(field.Elem())
				}
			}
			continue
		}
		if !info.IsExported() || !field.CanSet() {
			continue
		}

		switch {
		case field.Kind() == reflect.String:
			field.SetString(ApplyCorrectYeKe(field.String()))
		case field.Kind() == reflect.Pointer && field.Type().Elem().Kind() == reflect.String && !field.IsNil():
			field.Elem().SetString(ApplyCorrectYeKe(field.Elem().String()))
		}
	}
}
