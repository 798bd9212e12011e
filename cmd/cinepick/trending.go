package main

import (
	"github.com/spf13/cobra"
)

func newTrendingCmd() *cobra.Command {
	var (
		configPath string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show this week's trending movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.client.Trending(cmd.Context(), page)
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
