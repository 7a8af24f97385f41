package search

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var lookupIDRe = regexp.MustCompile(`^[0-9]+$`)

func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw := RawQuery{
		Term:     r.URL.Query().Get("term"),
		Media:    r.URL.Query().Get("media"),
		Limit:    r.URL.Query().Get("limit"),
		Country:  r.URL.Query().Get("country"),
		Entity:   r.URL.Query().Get("entity"),
		Explicit: r.URL.Query().Get("explicit"),
	}

	if res := Validate(raw); !res.Valid {
		writeValidationError(w, res.Errors)
		return
	}

	q := QueryFromRaw(raw)

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	upstream, err := s.searcher.Search(ctx, q)
	if err != nil {
		s.respondUpstreamError(w, "search", err)
		return
	}

	resp := Normalize(upstream)
	s.log.Infow("search completed",
		"term", q.Term,
		"media", q.Media,
		"results", resp.ResultCount,
		"elapsed", time.Since(start).String(),
	)

	writeJSON(w, http.StatusOK, searchEnvelope{
		Success: true,
		Data:    resp,
		SearchParams: searchParams{
			Term:    q.Term,
			Media:   q.Media,
			Limit:   q.Limit,
			Country: q.Country,
		},
		Metadata: responseMetadata{
			ResponseTime: time.Since(start).String(),
			SearchedAt:   resp.SearchInfo.SearchedAt,
			APIVersion:   apiVersion,
		},
	})
}

func (s *Server) HandleLookup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" || !lookupIDRe.MatchString(id) {
		writeError(w, http.StatusBadRequest, "Validation Failed", "id must be a numeric identifier")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	upstream, err := s.searcher.Lookup(ctx, id)
	if err != nil {
		s.respondUpstreamError(w, "lookup", err)
		return
	}

	resp := Normalize(upstream)
	if resp.ResultCount == 0 {
		writeError(w, http.StatusNotFound, "Not Found", "no item matches the requested id")
		return
	}

	writeJSON(w, http.StatusOK, lookupEnvelope{
		Success: true,
		Data:    resp,
		Metadata: responseMetadata{
			ResponseTime: time.Since(start).String(),
			SearchedAt:   resp.SearchInfo.SearchedAt,
			APIVersion:   apiVersion,
		},
	})
}

// respondUpstreamError maps an upstream failure to the client-facing status.
// Raw error detail only leaves the service outside production.
func (s *Server) respondUpstreamError(w http.ResponseWriter, op string, err error) {
	if isTimeout(err) {
		s.log.Warnw("upstream timed out", "op", op, "error", err.Error())
		writeError(w, http.StatusRequestTimeout, "Request Timeout", "upstream did not respond in time")
		return
	}

	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusForbidden:
			s.log.Warnw("upstream refused request", "op", op, "status", statusErr.StatusCode)
			writeError(w, http.StatusServiceUnavailable, "Service Unavailable", "upstream is refusing requests, try again later")
			return
		case statusErr.StatusCode >= 400 && statusErr.StatusCode < 500:
			s.log.Warnw("upstream rejected request", "op", op, "status", statusErr.StatusCode)
			writeError(w, http.StatusBadRequest, "Bad Request", "upstream rejected the request")
			return
		}
	}

	s.log.Errorw("upstream call failed", "op", op, "error", err.Error())
	msg := "an unexpected error occurred"
	if !s.production {
		msg = err.Error()
	}
	writeError(w, http.StatusInternalServerError, "Search Failed", msg)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
