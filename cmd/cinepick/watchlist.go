package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cinepick/cinepick/pkg/watchlist"
	"github.com/spf13/cobra"
)

func newWatchlistCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage the watchlist",
	}

	var sortBy string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items := watchlist.Sort(a.watchlist.Items(), watchlist.SortOrder(sortBy))
			if len(items) == 0 {
				fmt.Println("Watchlist is empty. Save movies with `cinepick watchlist add <movie-id>`.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tRATING\tRELEASE\tADDED")
			for _, m := range items {
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\t%s\n", m.ID, m.Title, m.Rating, m.ReleaseDate, m.AddedAt)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&sortBy, "sort", string(watchlist.SortByAdded), "sort order: added, rating or title")

	addCmd := &cobra.Command{
		Use:   "add <movie-id>",
		Short: "Save a movie to the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.watchlist.IsSaved(id) {
				fmt.Println("Already in the watchlist.")
				return nil
			}

			d, err := a.client.GetMovieDetail(cmd.Context(), id)
			if err != nil {
				return describeError(err)
			}
			a.watchlist.Add(d.MovieSummary)
			fmt.Printf("Added %s.\n", d.Title)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <movie-id>",
		Short: "Remove a movie from the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			a.watchlist.Remove(id)
			fmt.Println("Removed.")
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "cinepick.yaml", "path to config file")
	cmd.AddCommand(listCmd, addCmd, removeCmd)
	return cmd
}
