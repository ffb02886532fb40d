package http

import (
	"net/http"

	"github.com/fwojciec/siteforge"
	"github.com/go-chi/chi/v5"
)

type hostRequest struct {
	HTML         string `json:"html"`
	BusinessName string `json:"businessName"`
}

// handleHost publishes an HTML document to a new hosting slot.
func (s *Server) handleHost(w http.ResponseWriter, r *http.Request) {
	var req hostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	meta, err := s.Publisher.Publish(r.Context(), req.HTML, siteforge.Sanitize(req.BusinessName))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, hostedSite{SiteID: meta.SiteID, URL: siteURL(meta.SiteID)})
}

func (s *Server) handleListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := s.Publisher.ListSites(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if sites == nil {
		sites = []*siteforge.SiteMeta{}
	}
	writeJSON(w, http.StatusOK, sites)
}

// handleViewSite serves a published document as HTML and counts the view.
func (s *Server) handleViewSite(w http.ResponseWriter, r *http.Request) {
	html, err := s.Publisher.View(r.Context(), chi.URLParam(r, "siteID"))
	if err != nil {
		switch siteforge.ErrorCode(err) {
		case siteforge.ENOTFOUND, siteforge.EINVALID:
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(siteNotFoundPage))
		default:
			writeError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

const siteNotFoundPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Site Not Found</title>
<style>body{font-family:sans-serif;text-align:center;padding:4rem}h1{color:#333}</style>
</head>
<body>
<h1>Site Not Found</h1>
<p>This site does not exist or is no longer hosted.</p>
</body>
</html>
`
