package footprint

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Values maps each category to the raw text entered for it.
// A missing key is treated the same as an empty string.
type Values map[Category]string

// FieldError reports why a single field failed submit-time validation.
type FieldError struct {
	Category Category
	Err      error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// FieldErrors collects every failing field from one submit attempt.
type FieldErrors map[Category]FieldError

// Error joins the failing fields in category order.
func (fe FieldErrors) Error() string {
	cats := fe.Categories()
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, fe[c].Error())
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-field errors so errors.Is can match ErrRequired or ErrNegative.
func (fe FieldErrors) Unwrap() []error {
	cats := fe.Categories()
	out := make([]error, 0, len(cats))
	for _, c := range cats {
		out = append(out, fe[c])
	}
	return out
}

// Has reports whether c failed validation.
func (fe FieldErrors) Has(c Category) bool {
	_, ok := fe[c]
	return ok
}

// Categories returns the failing categories in form order.
func (fe FieldErrors) Categories() []Category {
	out := make([]Category, 0, len(fe))
	for c := range fe {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateField checks one raw value against the submit rule: required and
// non-negative. Any negative number fails, including ones too large to
// represent. A non-empty value that does not parse as a number passes here;
// the calculator then counts it as 0.
func ValidateField(raw string) error {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ErrRequired
	}
	// Out-of-range input still carries its sign: "-1e400" parses to -Inf with ErrRange.
	v, err := strconv.ParseFloat(s, 64)
	if (err == nil || errors.Is(err, strconv.ErrRange)) && v < 0 {
		return ErrNegative
	}
	return nil
}

// Validate checks every category in values and returns the failures, or nil
// when the form may be submitted.
func Validate(values Values) FieldErrors {
	var errs FieldErrors
	for _, c := range Categories() {
		if err := ValidateField(values[c]); err != nil {
			if errs == nil {
				errs = make(FieldErrors)
			}
			errs[c] = FieldError{Category: c, Err: err}
		}
	}
	return errs
}
