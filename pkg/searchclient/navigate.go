package searchclient

import "net/url"

// Navigator opens a location such as "/search?q=dragon".
type Navigator interface {
	Navigate(location string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(location string)

func (f NavigatorFunc) Navigate(location string) { f(location) }

// SearchLocation returns the results page location for q.
func SearchLocation(q string) string {
	return "/search?" + url.Values{"q": {q}}.Encode()
}
