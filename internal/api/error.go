package api

import (
	"fmt"
	"net/http"
)

const snippetLimit = 300

// Error is a non-2xx answer from the backend. Message is the server's own
// message field when the body was JSON, the status text when it carried
// none, or a status line with a body snippet when the body was not JSON.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newJSONError(status int, serverMessage string) *Error {
	if serverMessage != "" {
		return &Error{Status: status, Message: serverMessage}
	}
	return &Error{Status: status, Message: fmt.Sprintf("%d %s", status, http.StatusText(status))}
}

func newTextError(status int, body []byte) *Error {
	snippet := string(body)
	if len(snippet) > snippetLimit {
		snippet = snippet[:snippetLimit] + "..."
	}
	return &Error{
		Status:  status,
		Message: fmt.Sprintf("HTTP %d %s: %s", status, http.StatusText(status), snippet),
	}
}
