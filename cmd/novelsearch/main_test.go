package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "broken" {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>Bad Gateway</html>")) //nolint:errcheck
			return
		}
		w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Dragon Road","short_description":"A long road.","status":"ongoing","author_name":"anon"}],"meta":{"query":"dragon","count":1,"hasMore":false,"page":1,"limit":20,"method":"fulltext","time":"2ms"}}`)) //nolint:errcheck
	})
	mux.HandleFunc("GET /api/search/suggestions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Dragon Road"},{"id":2,"title":"Dragon King"}]}`)) //nolint:errcheck
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestSearchCommand(t *testing.T) {
	srv := newAPI(t)

	out := run(t, "", "search", "--url", srv.URL, "dragon")

	assert.Contains(t, out, `1 result(s) for "dragon" (method fulltext, 2ms)`)
	assert.Contains(t, out, "Dragon Road by anon [ongoing]")
	assert.Contains(t, out, "A long road.")
}

func TestSearchCommand_ErrorView(t *testing.T) {
	srv := newAPI(t)

	out := run(t, "", "search", "--url", srv.URL, "broken")

	assert.Contains(t, out, `Search for "broken" failed`)
	assert.Contains(t, out, "<html>Bad Gateway</html>")
	assert.Contains(t, out, "Try:")
}

func TestSuggestCommand_PrintsDebouncedSuggestions(t *testing.T) {
	srv := newAPI(t)

	out := run(t, "dr\ndra\n", "suggest", "--url", srv.URL)
	assert.Contains(t, out, `suggestions for "dra":`)
	assert.Contains(t, out, "[2] Dragon King")
}

func TestSuggestCommand_Submit(t *testing.T) {
	srv := newAPI(t)

	out := run(t, "dragon\n:submit\n", "suggest", "--url", srv.URL)
	assert.Contains(t, out, "-> /search?q=dragon")
	assert.Contains(t, out, "Dragon Road by anon")
}

func TestSuggestCommand_SubmitBlank(t *testing.T) {
	srv := newAPI(t)

	out := run(t, ":submit\n", "suggest", "--url", srv.URL)
	assert.Contains(t, out, "nothing to search")
}
