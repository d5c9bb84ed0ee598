package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/novelreader-backend/pkg/searchclient"
)

// settleTimeout bounds the wait for the last suggestion fetch at end of input.
const settleTimeout = 10 * time.Second

func newSuggestCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Read keystrokes from stdin and print live suggestions",
		Long: `Each input line replaces the text of the search box. Special lines:
  :select N   open the N-th suggestion (1-based)
  :submit     search for the current text
  :dismiss    hide the suggestion panel`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}
			return runSuggest(cmd.Context(), client, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runSuggest(ctx context.Context, client *searchclient.Client, in io.Reader, out io.Writer) error {
	var mu sync.Mutex
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, format, args...)
	}

	results := searchclient.NewResultsPage(client)
	nav := searchclient.NavigatorFunc(func(location string) {
		printf("-> %s\n", location)
		view := results.Visit(ctx, location)
		mu.Lock()
		renderResults(out, view)
		mu.Unlock()
	})

	var last string
	box := searchclient.NewSuggestionBox(client, nav,
		searchclient.OnSuggestionChange(func(st searchclient.SuggestionState) {
			if st.Loading || !st.Open {
				return
			}
			rendered := renderSuggestions(st)
			mu.Lock()
			defer mu.Unlock()
			if rendered == last {
				return
			}
			last = rendered
			io.WriteString(out, rendered) //nolint:errcheck
		}),
	)
	defer box.Close()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, ":select "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ":select ")))
			if err != nil || !box.Select(n-1) {
				printf("no suggestion %q\n", strings.TrimPrefix(line, ":select "))
			}
		case line == ":submit":
			if !box.Submit() {
				printf("nothing to search\n")
			}
		case line == ":dismiss":
			box.Dismiss()
		default:
			box.Input(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	waitSettled(ctx, box)
	return nil
}

// waitSettled gives a pending debounced fetch time to fire and complete.
func waitSettled(ctx context.Context, box *searchclient.SuggestionBox) {
	deadline := time.Now().Add(settleTimeout)
	select {
	case <-ctx.Done():
		return
	case <-time.After(searchclient.DebounceDelay + 50*time.Millisecond):
	}
	for box.State().Loading && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}
