package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/novelreader-backend/pkg/searchclient"
)

func renderResults(w io.Writer, v searchclient.ResultsView) {
	switch v.State {
	case searchclient.StatePrompt:
		fmt.Fprintln(w, "Enter a search keyword.")
	case searchclient.StateLoading:
		fmt.Fprintf(w, "Searching for %q...\n", v.Query)
	case searchclient.StateError:
		fmt.Fprintf(w, "Search for %q failed: %s\n", v.Query, v.Message)
		if len(v.Hints) > 0 {
			fmt.Fprintln(w, "Try:")
			for _, h := range v.Hints {
				fmt.Fprintf(w, "  - %s\n", h)
			}
		}
	case searchclient.StateResults:
		if len(v.Results) == 0 {
			fmt.Fprintf(w, "No novels found for %q.\n", v.Query)
			return
		}
		fmt.Fprintf(w, "%d result(s) for %q (method %s, %s)\n", v.Meta.Count, v.Query, v.Meta.Method, v.Meta.Time)
		for i, r := range v.Results {
			author := "unknown author"
			if r.AuthorName != nil {
				author = *r.AuthorName
			}
			fmt.Fprintf(w, "%3d. %s by %s [%s]\n", i+1, r.Title, author, r.Status)
			if d := strings.TrimSpace(r.ShortDescription); d != "" {
				fmt.Fprintf(w, "     %s\n", d)
			}
		}
		if v.Meta.HasMore {
			fmt.Fprintf(w, "More results on page %d.\n", v.Meta.Page+1)
		}
	}
}

func renderSuggestions(st searchclient.SuggestionState) string {
	var b strings.Builder
	if st.LastError != nil {
		fmt.Fprintf(&b, "suggestions unavailable: %v\n", st.LastError)
		return b.String()
	}
	if len(st.Suggestions) == 0 {
		return ""
	}
	fmt.Fprintf(&b, "suggestions for %q:\n", st.Text)
	for i, r := range st.Suggestions {
		fmt.Fprintf(&b, "  [%d] %s\n", i+1, r.Title)
	}
	return b.String()
}
