package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	cachepkg "github.com/cinepick/cinepick/pkg/cache"
	"github.com/cinepick/cinepick/pkg/config"
	"github.com/cinepick/cinepick/pkg/models"
	kvstore "github.com/cinepick/cinepick/pkg/storage/sqlite"
	"github.com/cinepick/cinepick/pkg/tmdb"
	"github.com/cinepick/cinepick/pkg/watchlist"
)

// app bundles the wiring every command needs: config, the shared durable
// store, and the components built on it.
type app struct {
	cfg       *config.Config
	kv        *kvstore.Store
	client    *tmdb.Client
	watchlist *watchlist.Store
}

func openApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	kv, err := kvstore.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	c := cachepkg.New(kv, cfg.Cache.TTL)
	return &app{
		cfg:       cfg,
		kv:        kv,
		client:    tmdb.New(cfg.TMDB, c),
		watchlist: watchlist.New(kv),
	}, nil
}

func (a *app) Close() {
	_ = a.kv.Close()
}

// describeError turns client failures into user-facing messages. Network
// failures get a retry hint; remote errors carry the upstream message.
func describeError(err error) error {
	if tmdb.IsNetworkError(err) {
		return fmt.Errorf("网络异常，请检查连接后重试")
	}
	return err
}

// truncate shortens s to at most max runes. Cutting on rune boundaries
// keeps multi-byte review text intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func printMoviePage(res *models.SearchResult) error {
	if len(res.Results) == 0 {
		fmt.Println("No movies found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tRATING\tRELEASE")
	for _, m := range res.Results {
		fmt.Fprintf(w, "%d\t%s\t%.1f\t%s\n", m.ID, m.Title, m.Rating, m.ReleaseDate)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d/%d\n", res.Page, res.TotalPages)
	return nil
}
