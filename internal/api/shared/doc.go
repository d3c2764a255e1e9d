// Package shared provides request/response helpers used by all API handlers:
// JSON decoding, the standard error envelope, and trace-ID context plumbing.
package shared
