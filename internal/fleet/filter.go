package fleet

import (
	"net/url"
	"strconv"
	"strings"

	"carfleet/internal/validation"
)

// Criteria are the raw filter inputs of the vehicle list. An empty field is
// not applied.
type Criteria struct {
	Name  string
	Brand string
	Year  string
	Color string
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Query encodes the criteria as search query parameters.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	if c.Name != "" {
		q.Set("veiculo", c.Name)
	}
	if c.Brand != "" {
		q.Set("marca", c.Brand)
	}
	if c.Year != "" {
		if year, ok := validation.ParseInt(c.Year); ok {
			q.Set("ano", strconv.Itoa(year))
		}
	}
	if c.Color != "" {
		q.Set("cor", c.Color)
	}
	return q
}

// Filter returns the vehicles of src that satisfy every set criterion.
// Text criteria are case-insensitive substring matches; the year criterion
// is integer equality and matches nothing when it does not parse. The
// result is a new slice; src is never modified.
func Filter(src []Vehicle, c Criteria) []Vehicle {
	out := make([]Vehicle, 0, len(src))
	if c.IsEmpty() {
		return append(out, src...)
	}

	year, yearOK := 0, true
	if c.Year != "" {
		year, yearOK = validation.ParseInt(c.Year)
	}
	if !yearOK {
		return out
	}

	name := strings.ToLower(c.Name)
	brand := strings.ToLower(c.Brand)
	color := strings.ToLower(c.Color)

	for _, v := range src {
		if name != "" && !strings.Contains(strings.ToLower(v.Name), name) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(v.Brand), brand) {
			continue
		}
		if c.Year != "" && v.Year != year {
			continue
		}
		if color != "" && (v.Color == "" || !strings.Contains(strings.ToLower(v.Color), color)) {
			continue
		}
		out = append(out, v)
	}
	return out
}
