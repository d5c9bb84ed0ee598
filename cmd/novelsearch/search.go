package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/novelreader-backend/pkg/searchclient"
)

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a full search and print one page of results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.client()
			if err != nil {
				return err
			}

			results := searchclient.NewResultsPage(client, searchclient.WithPaging(page, limit))
			view := results.Visit(cmd.Context(), searchclient.SearchLocation(strings.Join(args, " ")))
			renderResults(cmd.OutOrStdout(), view)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "results per page")
	return cmd
}
