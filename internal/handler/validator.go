package handler

import "github.com/go-playground/validator/v10"

// StructValidator plugs go-playground/validator into Fiber's request
// binding, so struct tags on request bodies are enforced before any
// handler logic runs.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{validate: validator.New()}
}

func (v *StructValidator) Validate(out any) error {
	return v.validate.Struct(out)
}
