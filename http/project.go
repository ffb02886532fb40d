package http

import (
	"net/http"

	"github.com/fwojciec/siteforge"
	"github.com/go-chi/chi/v5"
)

type saveProjectRequest struct {
	Name         string                  `json:"name"`
	BusinessInfo siteforge.BusinessFacts `json:"businessInfo"`
	Data         map[string]any          `json:"data"`
}

// handleSaveProject stores a project snapshot under a fresh ID.
func (s *Server) handleSaveProject(w http.ResponseWriter, r *http.Request) {
	var req saveProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	project := &siteforge.Project{
		Name:         siteforge.Sanitize(req.Name),
		BusinessInfo: sanitizeFacts(req.BusinessInfo),
		Data:         req.Data,
	}
	if err := s.Projects.SaveProject(r.Context(), project); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.Projects.FindProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if projects == nil {
		projects = []*siteforge.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.Projects.FindProjectByID(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.Projects.DeleteProject(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
