package http

import (
	"net/http"
	"strings"

	"github.com/fwojciec/siteforge"
)

type scrapeRequest struct {
	URL string `json:"url"`
}

// handleScrape runs the scrape cascade for one URL.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, siteforge.Errorf(siteforge.EINVALID, "url is required"))
		return
	}

	site, err := s.Scraper.Scrape(r.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, site)
}
