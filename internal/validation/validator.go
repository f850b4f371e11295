package validation

import (
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// a search range must not be inverted
	v.RegisterStructValidation(searchQueryStructValidation, SearchQuery{})

	return v
}

func searchQueryStructValidation(sl validatorv10.StructLevel) {
	q := sl.Current().Interface().(SearchQuery)
	if q.MinRange == nil || q.MaxRange == nil {
		return
	}
	if *q.MinRange > *q.MaxRange {
		sl.ReportError(q.MaxRange, "maxRange", "MaxRange", "range_order", fmt.Sprintf("minRange %.0f > maxRange %.0f", *q.MinRange, *q.MaxRange))
	}
}
