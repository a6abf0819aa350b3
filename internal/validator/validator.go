package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	once     sync.Once
	validate *govalidator.Validate
	// trans is the singleton English translator for validation errors.
	trans ut.Translator
)

// Setup builds the validator with English translations.
// Calling it more than once is harmless; Struct calls it lazily as well.
func Setup() {
	once.Do(func() {
		validate = govalidator.New(govalidator.WithRequiredStructEnabled())

		// Use JSON tag name for field names in error messages.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, trans)
	})
}

// Struct validates v and returns a map of field name → message, or nil if v is valid.
func Struct(v interface{}) map[string]string {
	Setup()
	if err := validate.Struct(v); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// TranslateErrors takes a validation error and returns a map of field name →
// human-readable error message. If the error is not a validation error, it
// returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	Setup()
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}
