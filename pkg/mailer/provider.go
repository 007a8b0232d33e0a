package mailer

import (
	"context"
	"net/http"
)

// Message is a fully rendered email handed to a Provider.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// LoggableResponse is the provider outcome written to logs.
// Providers must keep secrets and full payloads out of it.
type LoggableResponse struct {
	Status     int    `json:"status"`
	StatusText string `json:"status_text"`
	Data       any    `json:"data,omitempty"`
}

// Response is returned by a Provider on success.
type Response struct {
	Original any // provider-native response, never logged
	Loggable LoggableResponse
}

// Provider delivers rendered emails.
// Timeouts and retries are the provider's concern; Send passes the caller's context through.
type Provider interface {
	Send(ctx context.Context, msg Message) (*Response, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, msg Message) (*Response, error)

func (f ProviderFunc) Send(ctx context.Context, msg Message) (*Response, error) {
	return f(ctx, msg)
}

// OKResponse builds a 200 response with the given loggable data.
func OKResponse(original, data any) *Response {
	return &Response{
		Original: original,
		Loggable: LoggableResponse{
			Status:     http.StatusOK,
			StatusText: http.StatusText(http.StatusOK),
			Data:       data,
		},
	}
}

// mockResponse is what a mock-mode send reports instead of a provider response.
func mockResponse() *Response {
	return OKResponse(nil, "Mocked email sent")
}
