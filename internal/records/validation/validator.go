package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"recordbook-server/internal/records/domain"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once

	plainEmailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()

		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister("trimmed_required", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		mustRegister("numeric_text", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseNumber(fl.Field().String())
			return ok
		})
		mustRegister("positive_integer", func(fl validator.FieldLevel) bool {
			return domain.ParseLeadingInt(fl.Field().String()) > 0
		})
		mustRegister("positive_number", func(fl validator.FieldLevel) bool {
			v, ok := domain.ParseNumber(fl.Field().String())
			return ok && v > 0
		})
		mustRegister("plain_email", func(fl validator.FieldLevel) bool {
			return plainEmailPattern.MatchString(fl.Field().String())
		})
		mustRegister("calendar_date", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseCalendarDate(fl.Field().String())
			return ok
		})
	})

	return validatorInstance
}

func mustRegister(tag string, fn validator.Func) {
	if err := validatorInstance.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validate runs the struct tags of input and maps the first failing tag of
// each field to its message, keyed "<field>.<tag>".
func validate(input any, messages map[string]string) domain.ValidationErrors {
	err := getValidator().Struct(input)
	if err == nil {
		return domain.ValidationErrors{}
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		panic(err)
	}

	result := make(domain.ValidationErrors, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := domain.FieldName(fe.Field())
		if _, seen := result[field]; seen {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		result[field] = msg
	}
	return result
}
