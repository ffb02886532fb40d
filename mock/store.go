package mock

import (
	"context"

	"github.com/fwojciec/siteforge"
)

var _ siteforge.ProjectService = (*ProjectService)(nil)

// ProjectService is a mock implementation of siteforge.ProjectService.
type ProjectService struct {
	SaveProjectFn     func(ctx context.Context, project *siteforge.Project) error
	FindProjectsFn    func(ctx context.Context) ([]*siteforge.Project, error)
	FindProjectByIDFn func(ctx context.Context, id string) (*siteforge.Project, error)
	DeleteProjectFn   func(ctx context.Context, id string) error
}

func (s *ProjectService) SaveProject(ctx context.Context, project *siteforge.Project) error {
	return s.SaveProjectFn(ctx, project)
}

func (s *ProjectService) FindProjects(ctx context.Context) ([]*siteforge.Project, error) {
	return s.FindProjectsFn(ctx)
}

func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*siteforge.Project, error) {
	return s.FindProjectByIDFn(ctx, id)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.DeleteProjectFn(ctx, id)
}

var _ siteforge.PublishService = (*PublishService)(nil)

// PublishService is a mock implementation of siteforge.PublishService.
type PublishService struct {
	PublishFn   func(ctx context.Context, html string, businessName string) (*siteforge.SiteMeta, error)
	ViewFn      func(ctx context.Context, siteID string) (string, error)
	ListSitesFn func(ctx context.Context) ([]*siteforge.SiteMeta, error)
}

func (s *PublishService) Publish(ctx context.Context, html string, businessName string) (*siteforge.SiteMeta, error) {
	return s.PublishFn(ctx, html, businessName)
}

func (s *PublishService) View(ctx context.Context, siteID string) (string, error) {
	return s.ViewFn(ctx, siteID)
}

func (s *PublishService) ListSites(ctx context.Context) ([]*siteforge.SiteMeta, error) {
	return s.ListSitesFn(ctx)
}

var _ siteforge.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of siteforge.Exporter.
type Exporter struct {
	ExportFn func(site *siteforge.GeneratedSite, facts siteforge.BusinessFacts, scraped *siteforge.ScrapedSite) ([]byte, error)
}

func (e *Exporter) Export(site *siteforge.GeneratedSite, facts siteforge.BusinessFacts, scraped *siteforge.ScrapedSite) ([]byte, error) {
	return e.ExportFn(site, facts, scraped)
}
