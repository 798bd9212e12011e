package tmdb

import (
	"strconv"

	"github.com/cinepick/cinepick/pkg/models"
)

// Localized placeholders used when the upstream payload omits a display
// name.
const (
	placeholderTitle    = "未知片名"
	placeholderActor    = "未知演员"
	placeholderDirector = "未知导演"
)

// The normalizers below are total: whatever shape the upstream JSON takes,
// they return a fully populated record and never fail. All "untrusted
// shape" handling lives here.

func asString(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func asNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return fallback
		}
		return f
	default:
		return fallback
	}
}

func asInt(v any, fallback int) int {
	return int(asNumber(v, float64(fallback)))
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// buildImageURL prefixes base onto a non-empty path. Anything else yields
// the empty string, never a partial URL.
func buildImageURL(base string, path any) string {
	p := asString(path, "")
	if p == "" {
		return ""
	}
	return base + p
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 10 {
		return 10
	}
	return r
}

func normalizeMovieSummary(raw map[string]any, imageBase string) models.MovieSummary {
	title := asString(raw["title"], "")
	if title == "" {
		title = asString(raw["name"], placeholderTitle)
	}
	releaseDate := asString(raw["release_date"], "")
	if releaseDate == "" {
		releaseDate = asString(raw["first_air_date"], "")
	}
	id := asInt(raw["id"], 0)
	if id < 0 {
		id = 0
	}
	return models.MovieSummary{
		ID:          id,
		Title:       title,
		Overview:    asString(raw["overview"], ""),
		Rating:      clampRating(asNumber(raw["vote_average"], 0)),
		ReleaseDate: releaseDate,
		PosterURL:   buildImageURL(imageBase, raw["poster_path"]),
	}
}

func normalizeCast(raw map[string]any, imageBase string) models.CastMember {
	id := asInt(raw["id"], 0)
	if id < 0 {
		id = 0
	}
	return models.CastMember{
		ID:         id,
		Name:       asString(raw["name"], placeholderActor),
		Character:  asString(raw["character"], ""),
		ProfileURL: buildImageURL(imageBase, raw["profile_path"]),
	}
}

func normalizeVideo(raw map[string]any) models.Video {
	return models.Video{
		ID:   asString(raw["id"], ""),
		Key:  asString(raw["key"], ""),
		Site: asString(raw["site"], ""),
		Name: asString(raw["name"], ""),
		Type: asString(raw["type"], ""),
	}
}

func normalizeReview(raw map[string]any) models.Review {
	return models.Review{
		ID:      asString(raw["id"], ""),
		Author:  asString(raw["author"], ""),
		Content: asString(raw["content"], ""),
		URL:     asString(raw["url"], ""),
	}
}

// normalizeSearchResult shapes one result page. Page counters fall back to
// the requested page when the payload omits them.
func normalizeSearchResult(raw map[string]any, page int, imageBase string) *models.SearchResult {
	rawResults := asSlice(raw["results"])
	results := make([]models.MovieSummary, 0, len(rawResults))
	for _, r := range rawResults {
		results = append(results, normalizeMovieSummary(asMap(r), imageBase))
	}
	return &models.SearchResult{
		Page:       asInt(raw["page"], page),
		TotalPages: asInt(raw["total_pages"], page),
		Results:    results,
	}
}

// normalizeMovieDetail shapes a detail payload with appended credits,
// videos and reviews. Absent nested collections are treated as empty.
func normalizeMovieDetail(raw map[string]any, imageBase string) *models.MovieDetail {
	credits := asMap(raw["credits"])

	genres := make([]string, 0)
	for _, g := range asSlice(raw["genres"]) {
		genres = append(genres, asString(asMap(g)["name"], ""))
	}

	directors := make([]string, 0)
	for _, c := range asSlice(credits["crew"]) {
		member := asMap(c)
		if asString(member["job"], "") != "Director" {
			continue
		}
		directors = append(directors, asString(member["name"], placeholderDirector))
	}

	cast := make([]models.CastMember, 0)
	for _, c := range asSlice(credits["cast"]) {
		cast = append(cast, normalizeCast(asMap(c), imageBase))
	}

	videos := make([]models.Video, 0)
	for _, v := range asSlice(asMap(raw["videos"])["results"]) {
		videos = append(videos, normalizeVideo(asMap(v)))
	}

	reviews := make([]models.Review, 0)
	for _, r := range asSlice(asMap(raw["reviews"])["results"]) {
		reviews = append(reviews, normalizeReview(asMap(r)))
	}

	runtime := asInt(raw["runtime"], 0)
	if runtime < 0 {
		runtime = 0
	}

	return &models.MovieDetail{
		MovieSummary: normalizeMovieSummary(raw, imageBase),
		Runtime:      runtime,
		Genres:       genres,
		Directors:    directors,
		Cast:         cast,
		Videos:       videos,
		Reviews:      reviews,
	}
}
