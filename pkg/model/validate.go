package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checker accumulates field errors for one request.
type checker struct {
	fields []FieldError
}

func (c *checker) add(field, format string, args ...any) {
	c.fields = append(c.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) required(field, v string) bool {
	if v == "" {
		c.add(field, "is required")
		return false
	}
	return true
}

func (c *checker) length(field, v string, lo, hi int) {
	n := utf8.RuneCountInString(v)
	if lo > 0 && n < lo {
		c.add(field, "must be at least %d characters", lo)
	}
	if hi > 0 && n > hi {
		c.add(field, "must be at most %d characters", hi)
	}
}

func (c *checker) email(field, v string) {
	if err := validate.Var(v, "required,email"); err != nil {
		c.add(field, "must be a valid email address")
	}
}

func (c *checker) between(field string, v, lo, hi int) {
	if v < lo || v > hi {
		c.add(field, "must be between %d and %d", lo, hi)
	}
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}
