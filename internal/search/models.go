package search

import "time"

// RawQuery holds the raw query-string values as the client sent them,
// before any validation or defaulting.
type RawQuery struct {
	Term     string
	Media    string
	Limit    string
	Country  string
	Entity   string
	Explicit string
}

// SearchQuery is a validated query with defaults applied.
type SearchQuery struct {
	Term     string
	Media    string
	Limit    int
	Country  string
	Entity   string
	Explicit string
}

// MediaItem is the normalized, client-ready shape of one upstream result.
type MediaItem struct {
	UniqueID       int64   `json:"uniqueId"`
	Title          string  `json:"title"`
	ArtistName     string  `json:"artistName"`
	MediaType      string  `json:"mediaType"`
	ArtworkURL     *string `json:"artworkUrl"`
	ReleaseDate    *string `json:"releaseDate"`
	FormattedPrice string  `json:"formattedPrice"`
	PrimaryGenre   string  `json:"primaryGenre"`
}

type SearchInfo struct {
	TotalResults int       `json:"totalResults"`
	HasResults   bool      `json:"hasResults"`
	SearchedAt   time.Time `json:"searchedAt"`
}

type SearchResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []MediaItem `json:"results"`
	SearchInfo  SearchInfo  `json:"searchInfo"`
}

type searchParams struct {
	Term    string `json:"term"`
	Media   string `json:"media"`
	Limit   int    `json:"limit"`
	Country string `json:"country"`
}

type responseMetadata struct {
	ResponseTime string    `json:"responseTime"`
	SearchedAt   time.Time `json:"searchedAt"`
	APIVersion   string    `json:"apiVersion"`
}

type searchEnvelope struct {
	Success      bool             `json:"success"`
	Data         SearchResponse   `json:"data"`
	SearchParams searchParams     `json:"searchParams"`
	Metadata     responseMetadata `json:"metadata"`
}

type lookupEnvelope struct {
	Success  bool             `json:"success"`
	Data     SearchResponse   `json:"data"`
	Metadata responseMetadata `json:"metadata"`
}
