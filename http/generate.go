package http

import (
	"fmt"
	"net/http"

	"github.com/fwojciec/siteforge"
)

type analyzeRequest struct {
	ScrapedData  *siteforge.ScrapedSite  `json:"scrapedData"`
	BusinessInfo siteforge.BusinessFacts `json:"businessInfo"`
}

// handleAnalyze extracts business facts from scraped content.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ScrapedData == nil {
		writeError(w, siteforge.Errorf(siteforge.EINVALID, "scrapedData is required"))
		return
	}

	facts, err := s.Generator.AnalyzeBusiness(r.Context(), req.ScrapedData, sanitizeFacts(req.BusinessInfo))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, facts)
}

type recreateRequest struct {
	ScrapedData  *siteforge.ScrapedSite  `json:"scrapedData"`
	BusinessInfo siteforge.BusinessFacts `json:"businessInfo"`
	Instructions string                  `json:"instructions"`
	VersionCount int                     `json:"versionCount"`
}

type recreateResponse struct {
	Versions   []*siteforge.GeneratedSite `json:"versions"`
	HostedSite *hostedSite                `json:"hostedSite,omitempty"`
}

type hostedSite struct {
	SiteID string `json:"siteId"`
	URL    string `json:"url"`
}

// handleRecreate generates website versions and auto-publishes the first.
func (s *Server) handleRecreate(w http.ResponseWriter, r *http.Request) {
	var req recreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	facts := sanitizeFacts(req.BusinessInfo)
	if err := facts.Validate(); err != nil {
		writeError(w, err)
		return
	}

	versions, err := s.Generator.GenerateVersions(r.Context(), req.ScrapedData, facts, siteforge.Sanitize(req.Instructions), req.VersionCount)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := recreateResponse{Versions: versions}

	// Hosting is best effort; a publish failure must not lose the
	// generated versions.
	if len(versions) > 0 {
		meta, err := s.Publisher.Publish(r.Context(), versions[0].HTML, facts.Name)
		if err != nil {
			s.Logger.Warn("auto-publish failed", "business", facts.Name, "err", err)
		} else {
			resp.HostedSite = &hostedSite{SiteID: meta.SiteID, URL: siteURL(meta.SiteID)}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type modifyRequest struct {
	HTML        string                 `json:"html"`
	Request     string                 `json:"request"`
	ScrapedData *siteforge.ScrapedSite `json:"scrapedData"`
}

type modifyResponse struct {
	HTML string `json:"html"`
}

// handleModify applies a free-text change to an existing document.
func (s *Server) handleModify(w http.ResponseWriter, r *http.Request) {
	var req modifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	modified, err := s.Generator.ModifyWebsite(r.Context(), req.HTML, req.Request, req.ScrapedData)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, modifyResponse{HTML: modified})
}

type outreachRequest struct {
	BusinessInfo siteforge.BusinessFacts  `json:"businessInfo"`
	Site         *siteforge.GeneratedSite `json:"site"`
	SenderName   string                   `json:"senderName"`
	SenderEmail  string                   `json:"senderEmail"`
	Price        string                   `json:"price"`
}

// handleOutreach produces the cold email and proposal.
func (s *Server) handleOutreach(w http.ResponseWriter, r *http.Request) {
	var req outreachRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	out, err := s.Generator.GenerateOutreach(r.Context(), siteforge.OutreachRequest{
		Facts:       sanitizeFacts(req.BusinessInfo),
		Site:        req.Site,
		SenderName:  siteforge.Sanitize(req.SenderName),
		SenderEmail: siteforge.Sanitize(req.SenderEmail),
		Price:       siteforge.Sanitize(req.Price),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

type exportRequest struct {
	Site         *siteforge.GeneratedSite `json:"site"`
	BusinessInfo siteforge.BusinessFacts  `json:"businessInfo"`
	ScrapedData  *siteforge.ScrapedSite   `json:"scrapedData"`
}

// handleExport streams a ZIP archive of the generated website.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	data, err := s.Exporter.Export(req.Site, sanitizeFacts(req.BusinessInfo), req.ScrapedData)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="website-package.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func siteURL(siteID string) string {
	return fmt.Sprintf("/site/%s", siteID)
}
