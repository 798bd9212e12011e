package models

// MovieSummary is the normalized shape of a catalog entry. Every field is
// always populated by the normalizer; PosterURL is empty when the upstream
// payload carries no poster path.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Rating      float64 `json:"rating"`
	ReleaseDate string  `json:"releaseDate"`
	PosterURL   string  `json:"posterUrl,omitempty"`
}

// CastMember is a normalized credits entry.
type CastMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// Video is a normalized video entry. Site and Type are upstream enums
// treated as opaque strings.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Site string `json:"site"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Review is a normalized user review.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// MovieDetail extends MovieSummary with appended credits, videos and
// reviews. Runtime is 0 when the upstream payload omits it.
type MovieDetail struct {
	MovieSummary
	Runtime   int          `json:"runtime"`
	Genres    []string     `json:"genres"`
	Directors []string     `json:"directors"`
	Cast      []CastMember `json:"cast"`
	Videos    []Video      `json:"videos"`
	Reviews   []Review     `json:"reviews"`
}

// SearchResult is one page of search or trending results.
type SearchResult struct {
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Results    []MovieSummary `json:"results"`
}

// WatchlistItem is a saved movie stamped with the RFC 3339 time it was
// added. No two items in the watchlist share an ID.
type WatchlistItem struct {
	MovieSummary
	AddedAt string `json:"addedAt"`
}
