package storefront

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// SearchFilter holds the optional product search parameters. Empty fields are
// left out of the query. MinRange and MaxRange are in major currency units and
// are sent in minor units.
type SearchFilter struct {
	Name     string
	Category string
	MinRange string
	MaxRange string
}

// Values encodes f as URL query values.
func (f SearchFilter) Values() (url.Values, error) {
	q := url.Values{}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if err := setMinorUnits(q, "minRange", f.MinRange); err != nil {
		return nil, err
	}
	if err := setMinorUnits(q, "maxRange", f.MaxRange); err != nil {
		return nil, err
	}
	return q, nil
}

// setMinorUnits multiplies a major-unit amount by 100 and stores it under key.
func setMinorUnits(q url.Values, key, major string) error {
	if major == "" {
		return nil
	}
	// a present but blank amount counts as zero
	trimmed := strings.TrimSpace(major)
	if trimmed == "" {
		trimmed = "0"
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.IsInf(v*100, 0) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidRange, key, major)
	}
	q.Set(key, strconv.FormatFloat(v*100, 'f', -1, 64))
	return nil
}

func newestQuery() url.Values {
	return url.Values{"newest": {"true"}}
}
