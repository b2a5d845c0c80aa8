// Package client wraps the upstream travel API. Every endpoint speaks the
// same envelope: {status: true, data} on success, {status: false, message}
// on failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// GenericErrorMessage deliberately hides upstream internals from travellers.
const GenericErrorMessage = "Something went wrong, please try again"

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ServerError maps an upstream HTTP 500. The message is always the generic
// one regardless of what the upstream leaked.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return GenericErrorMessage
}

// ApplicationError carries the upstream's own failure message, or the
// transport failure, or the generic fallback.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

func newApplicationError(message string) *ApplicationError {
	if message == "" {
		message = GenericErrorMessage
	}
	return &ApplicationError{Message: message}
}

// doJSON sends a JSON request and unwraps the envelope, applying the error
// taxonomy: transport failure -> ApplicationError with the transport message,
// 500 -> ServerError, any other failure -> ApplicationError with the server
// message when present.
func doJSON(ctx context.Context, httpClient *http.Client, method, url string, payload interface{}, headers map[string]string) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, newApplicationError(err.Error())
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, newApplicationError(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, newApplicationError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &ServerError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newApplicationError(err.Error())
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, newApplicationError(GenericErrorMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		return nil, newApplicationError(env.Message)
	}

	return env.Data, nil
}
