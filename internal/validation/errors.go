package validation

import validatorv10 "github.com/go-playground/validator/v10"

// ValidationErrorsToMap flattens validator errors keyed by struct namespace.
func ValidationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
