package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBookRequest() BookRequest {
	return BookRequest{
		Title:         "New Book",
		Author:        "New Author",
		PublishedDate: "2022-01-01T00:00:00.000Z",
		Genre:         "History",
	}
}

func TestValidateBookAcceptsValidPayload(t *testing.T) {
	result := ValidateBook(validBookRequest())

	assert.True(t, result.IsValid, "Expected a fully populated payload to validate")
	assert.Empty(t, result.Errors, "Expected no errors for a valid payload")
	assert.NotNil(t, result.Errors, "Errors should be an empty slice, not nil")
}

func TestValidateBookAcceptedDateFormats(t *testing.T) {
	dates := []string{
		"2022-01-01T00:00:00.000Z",
		"2022-01-01T00:00:00Z",
		"2022-01-01",
		"1945-08-17T12:30:00+02:00",
		"2014/11/17",
	}

	for _, date := range dates {
		req := validBookRequest()
		req.PublishedDate = date

		result := ValidateBook(req)
		assert.True(t, result.IsValid, "Expected date %q to be accepted", date)
	}
}

func TestValidateBookCollectsAllErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*BookRequest)
		expected []string
	}{
		{
			name:   "missing title",
			mutate: func(r *BookRequest) { r.Title = "" },
			expected: []string{
				"Title is required and must be a non-empty string",
			},
		},
		{
			name:   "whitespace-only title",
			mutate: func(r *BookRequest) { r.Title = "   " },
			expected: []string{
				"Title is required and must be a non-empty string",
			},
		},
		{
			name:   "missing author",
			mutate: func(r *BookRequest) { r.Author = "" },
			expected: []string{
				"Author is required and must be a non-empty string",
			},
		},
		{
			name:   "missing published date",
			mutate: func(r *BookRequest) { r.PublishedDate = "" },
			expected: []string{
				"Published date is required",
			},
		},
		{
			name:   "unparseable published date",
			mutate: func(r *BookRequest) { r.PublishedDate = "not-a-date" },
			expected: []string{
				"Published date must be a valid ISO date string",
			},
		},
		{
			name:   "missing genre",
			mutate: func(r *BookRequest) { r.Genre = "\t " },
			expected: []string{
				"Genre is required and must be a non-empty string",
			},
		},
		{
			name: "two defects reported together",
			mutate: func(r *BookRequest) {
				r.Title = ""
				r.PublishedDate = "yesterday"
			},
			expected: []string{
				"Title is required and must be a non-empty string",
				"Published date must be a valid ISO date string",
			},
		},
		{
			name:   "empty payload reports every field in order",
			mutate: func(r *BookRequest) { *r = BookRequest{} },
			expected: []string{
				"Title is required and must be a non-empty string",
				"Author is required and must be a non-empty string",
				"Published date is required",
				"Genre is required and must be a non-empty string",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookRequest()
			tc.mutate(&req)

			result := ValidateBook(req)

			assert.False(t, result.IsValid, "Expected payload to be rejected")
			assert.Equal(t, tc.expected, result.Errors,
				"Errors should list every defect, in field order")
		})
	}
}

func TestValidateBookHasNoSideEffects(t *testing.T) {
	req := validBookRequest()
	before := req

	_ = ValidateBook(req)

	assert.Equal(t, before, req, "ValidateBook must not mutate its input")
}
