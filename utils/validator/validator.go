package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	// report fields by their json name so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// bcrypt reads at most 72 bytes, while max counts runes
	_ = v.RegisterValidation("maxbytes", maxBytes)
}

func maxBytes(fl gpvalidator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors flattens a validation error into field -> message.
// Returns nil when err is not a validator.ValidationErrors.
func FieldErrors(err error) map[string]string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe gpvalidator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", field)
	case "email":
		return fmt.Sprintf("%s harus berupa alamat email yang valid", field)
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s maksimal %s byte", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s minimal %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s tidak sama dengan %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}
