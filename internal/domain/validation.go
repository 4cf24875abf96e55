package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalid matches every FieldError.
var ErrInvalid = errors.New("invalid input")

// FieldError reports one violated rule of a form field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// Is makes errors.Is(err, ErrInvalid) true for field errors.
func (e FieldError) Is(target error) bool { return target == ErrInvalid }

// FieldErrors flattens the field errors carried by err.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var fe FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []FieldError
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}
	if errors.As(err, &fe) {
		return []FieldError{fe}
	}
	return nil
}

type lengthRule struct {
	min, max int
}

var (
	tagTitleRule           = lengthRule{min: 3}
	productNameRule        = lengthRule{min: 3, max: 50}
	productDescriptionRule = lengthRule{min: 10, max: 200}
)

func (r lengthRule) check(field, value string) []error {
	var errs []error
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < r.min {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("Minimum %d characters.", r.min)})
	}
	if r.max > 0 && n > r.max {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("Maximum %d characters.", r.max)})
	}
	return errs
}

// Validate checks the tag draft
func (d TagDraft) Validate() error {
	return errors.Join(tagTitleRule.check("title", d.Title)...)
}

// Validate checks the product draft, reporting every violated rule
func (d ProductDraft) Validate() error {
	var errs []error
	errs = append(errs, productNameRule.check("name", d.Name)...)
	if d.Amount.IsNegative() {
		errs = append(errs, FieldError{Field: "amount", Message: "It must be positive"})
	}
	if !d.Amount.IsPositive() {
		errs = append(errs, FieldError{Field: "amount", Message: "Must be greater than 0 (zero)."})
	}
	errs = append(errs, productDescriptionRule.check("description", d.Description)...)
	return errors.Join(errs...)
}
