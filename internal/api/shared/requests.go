package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
//
// An empty body is not an error: the destination is left at its zero value,
// matching the behavior of a body-parsing middleware that produces an empty
// object. Validation then reports the missing fields individually.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
