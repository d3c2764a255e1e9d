package api

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the formats accepted for publishedDate, tried in order.
// RFC 3339 covers the canonical "2022-01-01T00:00:00.000Z" form; the
// others accept the looser date strings clients commonly send.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// bookValidator is the shared validator instance with the custom book
// payload rules registered. validator.Validate is safe for concurrent use.
var bookValidator = newBookValidator()

func newBookValidator() *validator.Validate {
	v := validator.New()

	// ALLOW-PANIC: registration only fails on a programming error (empty tag
	// name), which should abort startup.
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		panic(err)
	}

	return v
}

// validateNotBlank reports whether the field is non-empty after trimming
// whitespace. "required" already rejects the empty string; this catches
// whitespace-only values.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateISODate reports whether the field parses as a valid date under
// any of the accepted layouts.
func validateISODate(fl validator.FieldLevel) bool {
	return parseableDate(fl.Field().String())
}

func parseableDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// ValidateBook checks a book payload against the content rules and collects
// every defect in one pass; a failing field never suppresses checks on the
// others. The error order follows the field order: title, author,
// publishedDate, genre. Pure function of its input.
func ValidateBook(req BookRequest) ValidationResult {
	err := bookValidator.Struct(req)
	if err == nil {
		return ValidationResult{IsValid: true, Errors: []string{}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct() only returns ValidationErrors for a valid struct input;
		// anything else is a programming error surfaced as a single defect.
		return ValidationResult{IsValid: false, Errors: []string{err.Error()}}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, validationMessage(fe))
	}

	return ValidationResult{IsValid: false, Errors: messages}
}

// validationMessage maps a field-level validator error to its canonical
// human-readable message.
func validationMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Title":
		return "Title is required and must be a non-empty string"
	case "Author":
		return "Author is required and must be a non-empty string"
	case "PublishedDate":
		if fe.Tag() == "required" {
			return "Published date is required"
		}
		return "Published date must be a valid ISO date string"
	case "Genre":
		return "Genre is required and must be a non-empty string"
	default:
		return fe.Error()
	}
}
