package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Searcher is the upstream the orchestrator talks to.
type Searcher interface {
	Search(ctx context.Context, q SearchQuery) (*UpstreamResponse, error)
	Lookup(ctx context.Context, id string) (*UpstreamResponse, error)
}

// UpstreamRecord is the permissive shape of one upstream result. Records vary
// by media type, so every field is optional; numeric ids and prices are
// pointers to keep absence distinct from zero.
type UpstreamRecord struct {
	WrapperType      string          `json:"wrapperType"`
	Kind             string          `json:"kind"`
	TrackID          *int64          `json:"trackId"`
	CollectionID     *int64          `json:"collectionId"`
	ArtistID         *int64          `json:"artistId"`
	TrackName        string          `json:"trackName"`
	CollectionName   string          `json:"collectionName"`
	ArtistName       string          `json:"artistName"`
	ArtworkURL30     string          `json:"artworkUrl30"`
	ArtworkURL60     string          `json:"artworkUrl60"`
	ArtworkURL100    string          `json:"artworkUrl100"`
	TrackPrice       *float64        `json:"trackPrice"`
	CollectionPrice  *float64        `json:"collectionPrice"`
	Currency         string          `json:"currency"`
	ReleaseDate      string          `json:"releaseDate"`
	PrimaryGenreName string          `json:"primaryGenreName"`
	Genres           json.RawMessage `json:"genres"`
}

type UpstreamResponse struct {
	ResultCount int              `json:"resultCount"`
	Results     []UpstreamRecord `json:"results"`
}

type ITunesClient struct {
	searchURL string
	lookupURL string
	http      *http.Client
}

func NewITunesClient(searchURL, lookupURL string) *ITunesClient {
	return &ITunesClient{
		searchURL: searchURL,
		lookupURL: lookupURL,
		// the per-request context carries the deadline
		http: &http.Client{},
	}
}

func (c *ITunesClient) Search(ctx context.Context, q SearchQuery) (*UpstreamResponse, error) {
	return c.fetch(ctx, BuildSearchURL(c.searchURL, q))
}

func (c *ITunesClient) Lookup(ctx context.Context, id string) (*UpstreamResponse, error) {
	return c.fetch(ctx, c.lookupURL+"?id="+url.QueryEscape(id))
}

func (c *ITunesClient) fetch(ctx context.Context, reqURL string) (*UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var body UpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	return &body, nil
}
