package siteforge

import (
	"context"
	"strings"
	"time"
)

// Project is a named, persisted bundle of scrape and generation data.
// Projects are replaced wholesale on re-save; they are never mutated
// field-by-field.
type Project struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	BusinessInfo BusinessFacts  `json:"businessInfo"`
	Data         map[string]any `json:"data,omitempty"`
	SavedAt      time.Time      `json:"savedAt"`
}

// Validate returns an error if the project contains invalid fields.
func (p *Project) Validate() error {
	name := strings.TrimSpace(p.Name)
	if len(name) < 3 || len(name) > 50 {
		return Errorf(EINVALID, "project name must be 3-50 characters")
	}
	if err := p.BusinessInfo.Validate(); err != nil {
		return err
	}
	return nil
}

// ProjectService stores projects. Save always allocates a fresh opaque ID;
// existing entries are never updated implicitly.
type ProjectService interface {
	// SaveProject stores the project verbatim under a fresh ID, which is
	// assigned to project.ID along with SavedAt.
	SaveProject(ctx context.Context, project *Project) error

	// FindProjects returns all projects ordered by SavedAt descending.
	FindProjects(ctx context.Context) ([]*Project, error)

	// FindProjectByID retrieves a project by ID.
	// Returns ENOTFOUND if the project does not exist.
	FindProjectByID(ctx context.Context, id string) (*Project, error)

	// DeleteProject removes a project by ID.
	// Returns ENOTFOUND if the project does not exist.
	DeleteProject(ctx context.Context, id string) error
}
