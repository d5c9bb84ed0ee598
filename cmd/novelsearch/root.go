package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/novelreader-backend/pkg/searchclient"
)

const defaultURL = "http://localhost:3001"

type globalFlags struct {
	url     string
	token   string
	verbose bool
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "novelsearch",
		Short:         "Search novels through the novel reader API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	envURL := os.Getenv("NOVELSEARCH_URL")
	if envURL == "" {
		envURL = defaultURL
	}
	root.PersistentFlags().StringVar(&flags.url, "url", envURL, "API base URL (env NOVELSEARCH_URL)")
	root.PersistentFlags().StringVar(&flags.token, "token", "", "bearer token sent with every request")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log API calls to stderr")

	root.AddCommand(newSearchCmd(&flags), newSuggestCmd(&flags))
	return root
}

func (f *globalFlags) client() (*searchclient.Client, error) {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []searchclient.Option{searchclient.WithLogger(logger)}
	if f.token != "" {
		opts = append(opts, searchclient.WithSession(searchclient.NewSession(f.token)))
	}
	return searchclient.New(f.url, opts...)
}
