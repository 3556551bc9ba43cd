package dto

// ErrorResponse is the uniform error envelope returned by every route.
// Details carries transport-level diagnostics on unexpected failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
