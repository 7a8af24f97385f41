package search

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const upgradedArtworkSize = "300x300"

// Normalize reshapes the raw upstream payload into a SearchResponse. Upstream
// order is preserved and each field degrades to its own fallback on missing
// or malformed data; a single bad record never aborts the response.
func Normalize(raw *UpstreamResponse) SearchResponse {
	items := make([]MediaItem, 0, len(raw.Results))
	for _, rec := range raw.Results {
		items = append(items, normalizeRecord(rec))
	}
	return SearchResponse{
		ResultCount: raw.ResultCount,
		Results:     items,
		SearchInfo: SearchInfo{
			TotalResults: raw.ResultCount,
			HasResults:   raw.ResultCount > 0,
			SearchedAt:   time.Now().UTC(),
		},
	}
}

func normalizeRecord(rec UpstreamRecord) MediaItem {
	return MediaItem{
		UniqueID:       uniqueID(rec),
		Title:          title(rec),
		ArtistName:     rec.ArtistName,
		MediaType:      mediaType(rec),
		ArtworkURL:     artworkURL(rec),
		ReleaseDate:    displayReleaseDate(rec.ReleaseDate),
		FormattedPrice: formattedPrice(rec),
		PrimaryGenre:   primaryGenre(rec),
	}
}

// artworkURL upgrades whichever size variant is present to 300x300 by
// replacing the size token. Nothing is fabricated when no variant exists.
func artworkURL(rec UpstreamRecord) *string {
	switch {
	case rec.ArtworkURL100 != "":
		s := strings.Replace(rec.ArtworkURL100, "100x100", upgradedArtworkSize, 1)
		return &s
	case rec.ArtworkURL60 != "":
		s := strings.Replace(rec.ArtworkURL60, "60x60", upgradedArtworkSize, 1)
		return &s
	case rec.ArtworkURL30 != "":
		s := strings.Replace(rec.ArtworkURL30, "30x30", upgradedArtworkSize, 1)
		return &s
	}
	return nil
}

func displayReleaseDate(raw string) *string {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	s := t.Format("January 2, 2006")
	return &s
}

// formattedPrice prefers the track price over the collection price and
// formats with the record's currency. The dollar sign is only used for USD.
func formattedPrice(rec UpstreamRecord) string {
	price := rec.TrackPrice
	if price == nil {
		price = rec.CollectionPrice
	}
	if price == nil {
		return "N/A"
	}
	if rec.Currency == "" || rec.Currency == "USD" {
		return fmt.Sprintf("$%.2f", *price)
	}
	return fmt.Sprintf("%.2f %s", *price, rec.Currency)
}

func mediaType(rec UpstreamRecord) string {
	if rec.WrapperType != "" {
		return rec.WrapperType
	}
	if rec.Kind != "" {
		return rec.Kind
	}
	return "unknown"
}

func primaryGenre(rec UpstreamRecord) string {
	if rec.PrimaryGenreName != "" {
		return rec.PrimaryGenreName
	}
	if g := firstGenre(rec.Genres); g != "" {
		return g
	}
	return "Unknown"
}

// firstGenre reads the first entry of the genres field, which upstream
// serializes as a string array for most records but as an object array for
// podcast episodes.
func firstGenre(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err == nil && len(names) > 0 {
		return names[0]
	}
	var objs []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &objs); err == nil && len(objs) > 0 {
		return objs[0].Name
	}
	return ""
}

func title(rec UpstreamRecord) string {
	if rec.TrackName != "" {
		return rec.TrackName
	}
	if rec.CollectionName != "" {
		return rec.CollectionName
	}
	return rec.ArtistName
}

// uniqueID falls back through the id fields upstream may set. The time-based
// last resort is only unique enough for transient session state.
func uniqueID(rec UpstreamRecord) int64 {
	switch {
	case rec.TrackID != nil:
		return *rec.TrackID
	case rec.CollectionID != nil:
		return *rec.CollectionID
	case rec.ArtistID != nil:
		return *rec.ArtistID
	}
	return time.Now().UnixNano()
}
