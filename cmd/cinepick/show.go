package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cinepick/cinepick/pkg/tmdb"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <movie-id>",
		Short: "Show movie details, cast, reviews and trailer",
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

			d, err := a.client.GetMovieDetail(cmd.Context(), id)
			if err != nil {
				return describeError(err)
			}

			fmt.Printf("%s (%s)\n", d.Title, d.ReleaseDate)
			fmt.Printf("评分: %.1f", d.Rating)
			if d.Runtime > 0 {
				fmt.Printf(" · %d分钟", d.Runtime)
			}
			if len(d.Genres) > 0 {
				fmt.Printf(" · %s", strings.Join(d.Genres, "/"))
			}
			fmt.Println()
			if len(d.Directors) > 0 {
				fmt.Printf("导演: %s\n", strings.Join(d.Directors, ", "))
			}
			if a.watchlist.IsSaved(d.ID) {
				fmt.Println("已在待看清单中")
			}
			if d.Overview != "" {
				fmt.Printf("\n%s\n", d.Overview)
			}

			if len(d.Cast) > 0 {
				fmt.Println("\n主演:")
				max := len(d.Cast)
				if max > 10 {
					max = 10
				}
				for _, c := range d.Cast[:max] {
					fmt.Printf("  %s", c.Name)
					if c.Character != "" {
						fmt.Printf(" 饰 %s", c.Character)
					}
					fmt.Println()
				}
			}

			if trailer := tmdb.PickTrailer(d.Videos); trailer != nil {
				fmt.Printf("\n预告片: https://www.youtube.com/watch?v=%s\n", trailer.Key)
			}

			if len(d.Reviews) > 0 {
				fmt.Printf("\n评论 (%d):\n", len(d.Reviews))
				for _, r := range d.Reviews {
					fmt.Printf("  %s: %s\n", r.Author, truncate(r.Content, 200))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "cinepick.yaml", "path to config file")
	return cmd
}
