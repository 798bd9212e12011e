package main

import (
	"fmt"

	"github.com/cinepick/cinepick/pkg/picker"
	"github.com/spf13/cobra"
)

func newPickCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Randomly pick one movie from the watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			items := a.watchlist.Items()
			if len(items) == 0 {
				fmt.Println("Watchlist is empty; nothing to pick from.")
				return nil
			}

			p := picker.New(picker.DefaultDuration)
			defer p.Stop()
			if !p.Start(items) {
				fmt.Println("Picker is busy; try again.")
				return nil
			}

			for ev := range p.Events() {
				if !ev.Final {
					// Flicker in place: rewrite the candidate line.
					fmt.Printf("\r\033[K抽选中... %s", ev.Item.Title)
					continue
				}
				fmt.Printf("\r\033[K今晚就看: %s\n", ev.Item.Title)
				if ev.Item.ReleaseDate != "" || ev.Item.Rating > 0 {
					fmt.Printf("%s · ⭐ %.1f\n", ev.Item.ReleaseDate, ev.Item.Rating)
				}
				break
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "cinepick.yaml", "path to config file")
	return cmd
}
