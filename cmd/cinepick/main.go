package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// A missing .env is fine; credentials can come from the environment or
	// the config file.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:     "cinepick",
		Short:   "Search the movie catalog, keep a watchlist, pick what to watch",
		Version: version,
	}

	root.AddCommand(
		newSearchCmd(),
		newTrendingCmd(),
		newShowCmd(),
		newWatchlistCmd(),
		newPickCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
