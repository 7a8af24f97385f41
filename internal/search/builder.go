package search

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultMedia    = "all"
	defaultLimit    = 50
	defaultCountry  = "US"
	defaultExplicit = "Yes"
)

// entitiesByMedia maps each media type to the entity values the upstream
// accepts for it. An entity outside the effective media type's set is
// dropped, not rejected.
var entitiesByMedia = map[string][]string{
	"all":        {"movie", "album", "allArtist", "podcast", "musicVideo", "mix", "audiobook", "tvSeason", "allTrack"},
	"music":      {"musicArtist", "musicTrack", "album", "musicVideo", "mix", "song"},
	"movie":      {"movieArtist", "movie"},
	"podcast":    {"podcastAuthor", "podcast"},
	"musicVideo": {"musicArtist", "musicVideo"},
	"audiobook":  {"audiobookAuthor", "audiobook"},
	"shortFilm":  {"shortFilmArtist", "shortFilm"},
	"tvShow":     {"tvEpisode", "tvSeason"},
	"software":   {"software", "iPadSoftware", "macSoftware"},
	"ebook":      {"ebook"},
}

// QueryFromRaw builds the effective SearchQuery from already-validated raw
// parameters, applying defaults. limit is guaranteed parseable here.
func QueryFromRaw(raw RawQuery) SearchQuery {
	q := SearchQuery{
		Term:     strings.TrimSpace(raw.Term),
		Media:    raw.Media,
		Country:  raw.Country,
		Entity:   raw.Entity,
		Explicit: raw.Explicit,
	}
	if q.Media == "" {
		q.Media = defaultMedia
	}
	if q.Country == "" {
		q.Country = defaultCountry
	}
	if q.Explicit == "" {
		q.Explicit = defaultExplicit
	}
	q.Limit = defaultLimit
	if raw.Limit != "" {
		if v, err := strconv.Atoi(raw.Limit); err == nil {
			q.Limit = v
		}
	}
	return q
}

// BuildSearchURL produces the full upstream URL for a query. Parameter order
// is fixed (term, media, limit, country, explicit, entity) so the same query
// always yields the same URL. No network access happens here.
func BuildSearchURL(base string, q SearchQuery) string {
	media := q.Media
	if media == "" {
		media = defaultMedia
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	country := q.Country
	if country == "" {
		country = defaultCountry
	}
	explicit := q.Explicit
	if explicit == "" {
		explicit = defaultExplicit
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("?term=")
	sb.WriteString(url.QueryEscape(strings.TrimSpace(q.Term)))
	sb.WriteString("&media=")
	sb.WriteString(url.QueryEscape(media))
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(limit))
	sb.WriteString("&country=")
	sb.WriteString(url.QueryEscape(country))
	sb.WriteString("&explicit=")
	sb.WriteString(url.QueryEscape(explicit))
	if q.Entity != "" && entityValidFor(media, q.Entity) {
		sb.WriteString("&entity=")
		sb.WriteString(url.QueryEscape(q.Entity))
	}
	return sb.String()
}

func entityValidFor(media, entity string) bool {
	for _, e := range entitiesByMedia[media] {
		if e == entity {
			return true
		}
	}
	return false
}
