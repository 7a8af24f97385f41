package search

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// mediaTypes is the closed set of values accepted for the media parameter,
// in the order they are reported back to the client.
var mediaTypes = []string{
	"all", "music", "movie", "podcast", "musicVideo",
	"audiobook", "shortFilm", "tvShow", "software", "ebook",
}

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks every rule and reports all violations together. It is a
// pure function of its input and never panics, whatever the client sent.
func Validate(raw RawQuery) ValidationResult {
	var errs []string

	term := strings.TrimSpace(raw.Term)
	if term == "" {
		errs = append(errs, "Search term is required")
	} else if utf8.RuneCountInString(term) > 100 {
		errs = append(errs, "Search term must be 100 characters or fewer")
	}

	if raw.Media != "" && !isValidMediaType(raw.Media) {
		errs = append(errs, "media must be one of: "+strings.Join(mediaTypes, ", "))
	}

	if raw.Limit != "" {
		v, err := strconv.Atoi(raw.Limit)
		if err != nil || v < 1 || v > 200 {
			errs = append(errs, "limit must be an integer between 1 and 200")
		}
	}

	if raw.Country != "" && !countryCodeRe.MatchString(raw.Country) {
		errs = append(errs, "country must be a two-letter uppercase country code (e.g. US)")
	}

	if raw.Explicit != "" && raw.Explicit != "Yes" && raw.Explicit != "No" {
		errs = append(errs, `explicit must be "Yes" or "No"`)
	}

	if len(errs) > 0 {
		return ValidationResult{Valid: false, Errors: errs}
	}
	return ValidationResult{Valid: true}
}

func isValidMediaType(media string) bool {
	for _, m := range mediaTypes {
		if m == media {
			return true
		}
	}
	return false
}
