package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/inventory/constant"
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
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("movement_type", func(fl gpvalidator.FieldLevel) bool {
		return constant.MovementType(fl.Field().String()).Valid()
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Message renders the first field failure as a short human readable string.
func Message(err error) string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return constant.ErrorTypeMessage[constant.ErrInvalidRequest]
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "movement_type":
		return fmt.Sprintf("%s must be one of IN, OUT, ADJUSTMENT, RETURN, SALE", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid uuid", field)
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
