package searchclient

import (
	"fmt"
	"unicode/utf8"
)

// SnippetLength is how many characters of a non-JSON body are kept.
const SnippetLength = 100

// NonJSONError is returned when the server answers with something other than
// JSON, typically an HTML error page from a proxy or a misrouted request.
type NonJSONError struct {
	Status      int
	ContentType string
	Snippet     string
}

func (e *NonJSONError) Error() string {
	ct := e.ContentType
	if ct == "" {
		ct = "no content type"
	}
	return fmt.Sprintf("server returned non-JSON response (status %d, %s): %s", e.Status, ct, e.Snippet)
}

// APIError is a failure envelope returned by the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %s (status %d): %s", e.Code, e.Status, e.Message)
}

func snippet(body []byte, n int) string {
	s := string(body)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
