package api

import (
	"encoding/json"
	"io"
	"net/http"
)

// handleResponse reads the whole body as text and applies the parse rules
// every endpoint shares:
//   - body parses as JSON, 2xx: return the JSON bytes
//   - body parses as JSON, non-2xx: Error with the server message if present
//   - body is not JSON, 2xx: return the raw text (some endpoints answer
//     plain text or HTML on success)
//   - body is not JSON, non-2xx: Error with status and a body snippet
func handleResponse(res *http.Response) ([]byte, error) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	ok := res.StatusCode >= 200 && res.StatusCode < 300

	if len(body) == 0 || !json.Valid(body) {
		if ok {
			return body, nil
		}
		return nil, newTextError(res.StatusCode, body)
	}

	if ok {
		return body, nil
	}

	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &envelope)
	return nil, newJSONError(res.StatusCode, envelope.Message)
}

// unwrapList accepts either a bare JSON array or an object carrying a `data`
// array. Anything else means the endpoint has nothing to offer; callers
// treat that as an empty list rather than a failure.
func unwrapList(body []byte) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data
	}
	return nil
}
