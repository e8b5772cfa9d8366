package validate

import (
	"reflect"
	"sync"

	"github.com/cloudwego/hertz/pkg/app/server/binding"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/go-playground/validator/v10"
)

// StructValidator plugs go-playground/validator into hertz request binding, so
// dto structs are checked through their `validate` tags.
type StructValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var (
	_ binding.StructValidator = (*StructValidator)(nil)
	_ binding.ValidatorFunc   = New().ValidateRequest
)

func New() *StructValidator {
	return &StructValidator{}
}

// ValidateRequest is the binding.ValidatorFunc handed to
// server.WithCustomValidatorFunc.
func (v *StructValidator) ValidateRequest(_ *protocol.Request, req interface{}) error {
	return v.ValidateStruct(req)
}

// ValidateStruct accepts the bound struct, a pointer to it, or the
// reflect.Value hertz passes through binding.MakeValidatorFunc.
func (v *StructValidator) ValidateStruct(obj interface{}) error {
	if rv, ok := obj.(reflect.Value); ok {
		if !rv.IsValid() || !rv.CanInterface() {
			return nil
		}
		obj = rv.Interface()
	}
	if obj == nil {
		return nil
	}
	rt := reflect.TypeOf(obj)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	return v.engine().Struct(obj)
}

func (v *StructValidator) Engine() interface{} {
	return v.engine()
}

func (v *StructValidator) ValidateTag() string {
	return "validate"
}

func (v *StructValidator) engine() *validator.Validate {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return v.validate
}
