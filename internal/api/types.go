// Package api defines response envelopes shared by all HTTP handlers.
package api

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for confirmations that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}
