package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func f64(v float64) *float64 { return &v }

func TestNormalizeRecord(t *testing.T) {
	t.Run("sparse track record", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:       i64(42),
			TrackName:     "X",
			ArtworkURL100: "https://img.example/abc/100x100bb.jpg",
		})

		assert.Equal(t, int64(42), item.UniqueID)
		assert.Equal(t, "X", item.Title)
		require.NotNil(t, item.ArtworkURL)
		assert.Equal(t, "https://img.example/abc/300x300bb.jpg", *item.ArtworkURL)
		assert.Equal(t, "N/A", item.FormattedPrice)
		assert.Equal(t, "Unknown", item.PrimaryGenre)
		assert.Equal(t, "unknown", item.MediaType)
		assert.Nil(t, item.ReleaseDate)
	})

	t.Run("60x60 artwork upgraded, nothing fabricated", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:      i64(1),
			ArtworkURL60: "https://img.example/abc/60x60bb.jpg",
		})
		require.NotNil(t, item.ArtworkURL)
		assert.Equal(t, "https://img.example/abc/300x300bb.jpg", *item.ArtworkURL)
	})

	t.Run("30x30 artwork is the last variant tried", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:      i64(1),
			ArtworkURL30: "https://img.example/abc/30x30bb.jpg",
		})
		require.NotNil(t, item.ArtworkURL)
		assert.Equal(t, "https://img.example/abc/300x300bb.jpg", *item.ArtworkURL)
	})

	t.Run("no artwork stays null", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{TrackID: i64(1)})
		assert.Nil(t, item.ArtworkURL)
	})

	t.Run("release date formatting", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:     i64(1),
			ReleaseDate: "2011-01-25T08:00:00Z",
		})
		require.NotNil(t, item.ReleaseDate)
		assert.Equal(t, "January 25, 2011", *item.ReleaseDate)
	})

	t.Run("unparseable release date is null, not an error", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:     i64(1),
			ReleaseDate: "not-a-date",
		})
		assert.Nil(t, item.ReleaseDate)
	})

	t.Run("price precedence and currency", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:         i64(1),
			TrackPrice:      f64(1.29),
			CollectionPrice: f64(9.99),
			Currency:        "USD",
		})
		assert.Equal(t, "$1.29", item.FormattedPrice)

		item = normalizeRecord(UpstreamRecord{
			TrackID:         i64(1),
			CollectionPrice: f64(9.99),
			Currency:        "EUR",
		})
		assert.Equal(t, "9.99 EUR", item.FormattedPrice)
	})

	t.Run("media type precedence", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:     i64(1),
			WrapperType: "track",
			Kind:        "song",
		})
		assert.Equal(t, "track", item.MediaType)

		item = normalizeRecord(UpstreamRecord{TrackID: i64(1), Kind: "feature-movie"})
		assert.Equal(t, "feature-movie", item.MediaType)
	})

	t.Run("genre fallback chain", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{
			TrackID:          i64(1),
			PrimaryGenreName: "Pop",
			Genres:           json.RawMessage(`["Rock"]`),
		})
		assert.Equal(t, "Pop", item.PrimaryGenre)

		item = normalizeRecord(UpstreamRecord{
			TrackID: i64(1),
			Genres:  json.RawMessage(`["Rock","Pop"]`),
		})
		assert.Equal(t, "Rock", item.PrimaryGenre)

		// podcast episodes carry genres as objects
		item = normalizeRecord(UpstreamRecord{
			TrackID: i64(1),
			Genres:  json.RawMessage(`[{"name":"True Crime","id":"1488"}]`),
		})
		assert.Equal(t, "True Crime", item.PrimaryGenre)
	})

	t.Run("unique id fallback chain", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{CollectionID: i64(7), ArtistID: i64(8)})
		assert.Equal(t, int64(7), item.UniqueID)

		item = normalizeRecord(UpstreamRecord{ArtistID: i64(8)})
		assert.Equal(t, int64(8), item.UniqueID)

		item = normalizeRecord(UpstreamRecord{})
		assert.Greater(t, item.UniqueID, int64(0))
	})

	t.Run("title fallback chain", func(t *testing.T) {
		item := normalizeRecord(UpstreamRecord{TrackID: i64(1), CollectionName: "21", ArtistName: "Adele"})
		assert.Equal(t, "21", item.Title)

		item = normalizeRecord(UpstreamRecord{TrackID: i64(1), ArtistName: "Adele"})
		assert.Equal(t, "Adele", item.Title)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("order preserved and counts carried through", func(t *testing.T) {
		raw := &UpstreamResponse{
			ResultCount: 2,
			Results: []UpstreamRecord{
				{TrackID: i64(1), TrackName: "first"},
				{TrackID: i64(2), TrackName: "second"},
			},
		}
		resp := Normalize(raw)

		assert.Equal(t, 2, resp.ResultCount)
		assert.Equal(t, 2, resp.SearchInfo.TotalResults)
		assert.True(t, resp.SearchInfo.HasResults)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "first", resp.Results[0].Title)
		assert.Equal(t, "second", resp.Results[1].Title)
	})

	t.Run("empty results", func(t *testing.T) {
		resp := Normalize(&UpstreamResponse{ResultCount: 0})
		assert.False(t, resp.SearchInfo.HasResults)
		assert.NotNil(t, resp.Results)
		assert.Len(t, resp.Results, 0)
	})
}
