package api

// BookRequest defines the payload for the create and update book endpoints.
//
// The validate tags encode the content rules: title, author, and genre must
// be present and non-blank after trimming; publishedDate must be present and
// parseable as an ISO-8601 date-time. The notblank and isodate tags are
// registered in validation.go. Field order matters: the validator reports
// defects in struct order, which fixes the order of the details list.
type BookRequest struct {
	Title         string `json:"title"         validate:"required,notblank"`
	Author        string `json:"author"        validate:"required,notblank"`
	PublishedDate string `json:"publishedDate" validate:"required,isodate"`
	Genre         string `json:"genre"         validate:"required,notblank"`
}

// ValidationResult is the outcome of validating a book payload.
// It is transient: produced per call, never persisted or serialized.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}
