package main

import (
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var (
		configPath string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the movie catalog by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.client.SearchMovies(cmd.Context(), args[0], page)
			if err != nil {
				return describeError(err)
			}
			return printMoviePage(res)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "result page")
	cmd.Flags().StringVarP(&configPath, "config", "c", "cinepick.yaml", "path to config file")
	return cmd
}
